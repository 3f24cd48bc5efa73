package onboard

import (
	"sync"
	"time"

	"github.com/CodedInternet/gotarget/game"
)

const (
	SENSOR_NOISE  = 20  // resting readings fall in [0, SENSOR_NOISE)
	SENSOR_IMPACT = 400 // reading produced by a simulated hit

	// chance in a thousand that any one read is a stray hit
	SIM_HIT_PERMILLE = 5

	// an impact not read within this long has faded
	SIM_IMPACT_WINDOW = 2 * game.Interval
)

type SimulatedServo struct {
	Pin      uint8
	Attached bool
	Angle    float64
	Writes   int
}

func (s *SimulatedServo) Attach() error {
	s.Attached = true
	return nil
}

func (s *SimulatedServo) Write(angle float64) error {
	s.Angle = angle
	s.Writes++
	return nil
}

func (s *SimulatedServo) Detach() error {
	s.Attached = false
	return nil
}

type impact struct {
	value uint16
	at    time.Time
}

// SimulatedSensor returns noise, the occasional random impact and any impact
// queued through Trigger. Queued impacts fade after SIM_IMPACT_WINDOW, so a
// shot at a target that is not being read is lost.
type SimulatedSensor struct {
	Pin     uint8
	Permill int

	clock   game.Clock
	rand    game.Rand
	lock    sync.Mutex
	pending []impact
}

func NewSimulatedSensor(pin uint8, clock game.Clock, rand game.Rand) *SimulatedSensor {
	return &SimulatedSensor{
		Pin:     pin,
		Permill: SIM_HIT_PERMILLE,
		clock:   clock,
		rand:    rand,
	}
}

// Trigger queues a reading for the next Read.
func (s *SimulatedSensor) Trigger(value uint16) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.pending = append(s.pending, impact{value: value, at: s.clock.Now()})
}

func (s *SimulatedSensor) Read() (uint16, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	now := s.clock.Now()
	for len(s.pending) > 0 {
		next := s.pending[0]
		s.pending = s.pending[1:]
		if now.Sub(next.at) <= SIM_IMPACT_WINDOW {
			return next.value, nil
		}
	}

	if s.rand == nil {
		return 0, nil
	}
	if s.rand.Intn(1000) < s.Permill {
		return SENSOR_IMPACT, nil
	}
	return uint16(s.rand.Intn(SENSOR_NOISE)), nil
}
