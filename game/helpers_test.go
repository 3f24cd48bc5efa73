package game

import (
	"errors"
	"time"
)

var t0 = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type testServo struct {
	attached bool
	angle    float64
	writes   int
	detaches int
}

func (s *testServo) Attach() error {
	s.attached = true
	return nil
}

func (s *testServo) Write(angle float64) error {
	s.angle = angle
	s.writes++
	return nil
}

func (s *testServo) Detach() error {
	s.attached = false
	s.detaches++
	return nil
}

type testSensor struct {
	value uint16
	fail  bool
	reads int
}

func (s *testSensor) Read() (uint16, error) {
	s.reads++
	if s.fail {
		return 0, errors.New("this is a simulated read error")
	}
	return s.value, nil
}

type recordSink struct {
	lines []string
}

func (r *recordSink) Emit(msg Message) {
	r.lines = append(r.lines, msg.String())
}

func (r *recordSink) reset() {
	r.lines = nil
}

type testRig struct {
	clock   *MockClock
	rand    *ScriptedRand
	rack    *Rack
	servos  []*testServo
	sensors []*testSensor
}

// newTestRig attaches count targets, each with a B side score of -1, and lets
// them settle into Idle.
func newTestRig(count int) *testRig {
	rig := &testRig{
		clock: NewMockClock(t0),
		rand:  &ScriptedRand{},
	}
	rig.rack = NewRack(rig.clock, rig.rand)

	for i := 0; i < count; i++ {
		servo := &testServo{}
		sensor := &testSensor{}
		rig.servos = append(rig.servos, servo)
		rig.sensors = append(rig.sensors, sensor)
		NewTarget(uint8(i), uint8(i+8), -1, servo, sensor).Attach(rig.rack)
	}

	rig.settle()
	return rig
}

// settle waits out any movement and clears the moving flags.
func (rig *testRig) settle() {
	rig.clock.Advance(3 * MoveDelay)
	rig.poll()
}

// poll runs one latch-reset and hit pass and returns the total score.
func (rig *testRig) poll() (score int) {
	rig.rack.ResetLatch()
	for _, t := range rig.rack.Targets() {
		score += t.Hit()
	}
	return
}

func (rig *testRig) target(i int) *Target {
	return rig.rack.Targets()[i]
}
