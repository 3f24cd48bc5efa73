package game

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/CodedInternet/gotarget/onboard/hardware"
)

const (
	// Moving can trigger the sensor, wait this long per state step before listening
	MoveDelay = 500 * time.Millisecond

	// Analog must be over this. 20 works for a light tap, 100 for actual play.
	HitThreshold = 80
	HitScore     = 1
)

// Servo angles for each resting state
const (
	AngleSideA float64 = 5
	AngleIdle  float64 = 90
	AngleSideB float64 = 170
)

type State uint8

// Target states. The ordinal distance between two states approximates servo travel.
const (
	SideA State = iota
	Idle
	SideB
	Random // transient, resolves to SideA or SideB
)

func (s State) String() string {
	switch s {
	case SideA:
		return "A"
	case Idle:
		return "IDLE"
	case SideB:
		return "B"
	case Random:
		return "RANDOM"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

func ParseState(name string) (State, error) {
	switch strings.ToUpper(name) {
	case "A":
		return SideA, nil
	case "IDLE":
		return Idle, nil
	case "B":
		return SideB, nil
	case "RANDOM":
		return Random, nil
	}
	return Idle, fmt.Errorf("unknown target state %q", name)
}

// Target is a single flip panel with a servo and an impact sensor.
type Target struct {
	// Auto-revert from side B after this long. Zero disables it.
	BSideDelay time.Duration

	sensorPin uint8
	servoPin  uint8
	servo     hardware.Servo
	sensor    hardware.Sensor

	// Score (+ or -) for the "B" side
	otherSideScore int

	state      State
	moving     bool
	moveTimer  time.Time
	bSideTimer time.Time

	rack *Rack
}

func NewTarget(sensorPin, servoPin uint8, bScore int, servo hardware.Servo, sensor hardware.Sensor) *Target {
	return &Target{
		sensorPin:      sensorPin,
		servoPin:       servoPin,
		servo:          servo,
		sensor:         sensor,
		otherSideScore: bScore,
	}
}

// Attach binds the servo, registers the target with the rack and parks it in Idle.
func (t *Target) Attach(rack *Rack) {
	t.rack = rack
	rack.register(t)
	if err := t.servo.Attach(); err != nil {
		log.Printf("target %d: attach servo %d: %v", t.sensorPin, t.servoPin, err)
	}
	t.SetState(Idle)
}

// Hit polls the target once and returns the score change for this cycle.
func (t *Target) Hit() int {
	now := t.rack.clock.Now()

	if t.moving {
		if now.Before(t.moveTimer) {
			return 0
		}
		t.moving = false
		if err := t.servo.Detach(); err != nil {
			log.Printf("target %d: detach servo %d: %v", t.sensorPin, t.servoPin, err)
		}
	}

	if t.state == Idle || t.rack.latched() {
		return 0
	}

	// B side has timed out
	if t.state == SideB && t.BSideDelay > 0 && !now.Before(t.bSideTimer) {
		t.SetState(Random)
		return 0
	}

	reading, err := t.sensor.Read()
	if err != nil {
		log.Printf("target %d: read sensor: %v", t.sensorPin, err)
		return 0
	}
	if reading <= HitThreshold {
		return 0
	}

	score := t.otherSideScore
	if t.state == SideA {
		score = HitScore
	}
	log.Printf("%d Hit %d", t.sensorPin, reading)
	t.rack.latch()
	t.SetState(Idle)
	return score
}

// SetState moves the target and returns the state it resolved to.
func (t *Target) SetState(state State) State {
	if state == t.state {
		return state
	}

	var angle float64
	switch state {
	case Idle:
		angle = AngleIdle
	case SideA:
		angle = AngleSideA
	case SideB:
		angle = AngleSideB
	case Random:
		if t.rack.rand.Intn(2) == 0 {
			return t.SetState(SideB)
		}
		return t.SetState(SideA)
	default:
		return t.SetState(Idle)
	}

	if err := t.servo.Attach(); err != nil {
		log.Printf("target %d: attach servo %d: %v", t.sensorPin, t.servoPin, err)
	}
	if err := t.servo.Write(angle); err != nil {
		log.Printf("target %d: write servo %d: %v", t.sensorPin, t.servoPin, err)
	}

	now := t.rack.clock.Now()
	t.moving = true
	// B side is temporary
	if state == SideB && t.BSideDelay > 0 {
		t.bSideTimer = now.Add(t.BSideDelay)
	}

	t.moveTimer = now.Add(time.Duration(distance(state, t.state)) * MoveDelay)
	t.state = state
	return state
}

func (t *Target) State() State {
	return t.state
}

func (t *Target) Moving() bool {
	return t.moving
}

func (t *Target) SensorPin() uint8 {
	return t.sensorPin
}

func distance(a, b State) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
