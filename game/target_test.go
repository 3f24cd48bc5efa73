package game

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTargetAttach(t *testing.T) {
	Convey("attaching registers the target and parks it", t, func() {
		clock := NewMockClock(t0)
		rack := NewRack(clock, &ScriptedRand{})
		servo := &testServo{}
		target := NewTarget(3, 9, -1, servo, &testSensor{})
		target.Attach(rack)

		So(rack.Len(), ShouldEqual, 1)
		So(rack.Targets()[0], ShouldEqual, target)
		So(target.State(), ShouldEqual, Idle)
		So(target.SensorPin(), ShouldEqual, 3)
		So(servo.attached, ShouldBeTrue)
		So(servo.angle, ShouldEqual, AngleIdle)

		Convey("and it settles before reading", func() {
			So(target.Moving(), ShouldBeTrue)
			So(target.moveTimer, ShouldResemble, t0.Add(MoveDelay))
		})
	})
}

func TestTargetSetState(t *testing.T) {
	Convey("Given a settled target", t, func() {
		rig := newTestRig(1)
		target := rig.target(0)
		servo := rig.servos[0]

		Convey("setting the current state is a no-op", func() {
			writes := servo.writes
			timer := target.moveTimer
			rig.clock.Advance(time.Second)

			So(target.SetState(Idle), ShouldEqual, Idle)
			So(servo.writes, ShouldEqual, writes)
			So(target.moveTimer, ShouldResemble, timer)
			So(target.Moving(), ShouldBeFalse)
		})

		Convey("each state drives its servo angle", func() {
			So(target.SetState(SideA), ShouldEqual, SideA)
			So(servo.angle, ShouldEqual, AngleSideA)
			So(servo.attached, ShouldBeTrue)
			So(target.Moving(), ShouldBeTrue)

			So(target.SetState(SideB), ShouldEqual, SideB)
			So(servo.angle, ShouldEqual, AngleSideB)
		})

		Convey("settle time scales with the distance travelled", func() {
			now := rig.clock.Now()
			target.SetState(SideA)
			So(target.moveTimer, ShouldResemble, now.Add(MoveDelay))

			target.SetState(SideB)
			So(target.moveTimer, ShouldResemble, now.Add(2*MoveDelay))
		})

		Convey("random resolves to a concrete side", func() {
			rig.rand.Push(0, 1)
			So(target.SetState(Random), ShouldEqual, SideB)
			So(target.State(), ShouldEqual, SideB)

			So(target.SetState(Random), ShouldEqual, SideA)
			So(target.State(), ShouldEqual, SideA)
			So(rig.rand.Calls, ShouldResemble, []int{2, 2})
		})

		Convey("unknown states fall back to Idle", func() {
			target.SetState(SideA)
			So(target.SetState(State(9)), ShouldEqual, Idle)
			So(target.State(), ShouldEqual, Idle)
		})

		Convey("entering side B arms the revert timer only when enabled", func() {
			target.SetState(SideB)
			So(target.bSideTimer.IsZero(), ShouldBeTrue)

			target.SetState(Idle)
			target.BSideDelay = 3 * time.Second
			target.SetState(SideB)
			So(target.bSideTimer, ShouldResemble, rig.clock.Now().Add(3*time.Second))
		})
	})
}

func TestTargetHit(t *testing.T) {
	Convey("Given a settled target", t, func() {
		rig := newTestRig(1)
		target := rig.target(0)
		sensor := rig.sensors[0]
		servo := rig.servos[0]

		Convey("idle targets never score", func() {
			sensor.value = 500
			So(rig.poll(), ShouldEqual, 0)
			So(sensor.reads, ShouldEqual, 0)
		})

		Convey("readings are suppressed while settling", func() {
			target.SetState(SideA)
			sensor.value = 1000
			rig.clock.Advance(MoveDelay - time.Millisecond)

			So(rig.poll(), ShouldEqual, 0)
			So(target.Moving(), ShouldBeTrue)
			So(sensor.reads, ShouldEqual, 0)

			Convey("and read on the same cycle settling ends", func() {
				rig.clock.Advance(time.Millisecond)
				So(rig.poll(), ShouldEqual, HitScore)
				So(servo.detaches, ShouldBeGreaterThan, 0)
				So(target.State(), ShouldEqual, Idle)
			})
		})

		Convey("settling releases the servo", func() {
			target.SetState(SideA)
			rig.clock.Advance(MoveDelay)
			rig.poll()
			So(target.Moving(), ShouldBeFalse)
			So(servo.attached, ShouldBeFalse)
		})

		Convey("side A scores the fixed hit score", func() {
			target.SetState(SideA)
			rig.clock.Advance(MoveDelay)
			sensor.value = HitThreshold + 1

			So(rig.poll(), ShouldEqual, HitScore)
			So(target.State(), ShouldEqual, Idle)
		})

		Convey("side B scores the other side score", func() {
			target.SetState(SideB)
			rig.clock.Advance(MoveDelay)
			sensor.value = HitThreshold + 1

			So(rig.poll(), ShouldEqual, -1)
			So(target.State(), ShouldEqual, Idle)
		})

		Convey("readings at the threshold are not hits", func() {
			target.SetState(SideA)
			rig.clock.Advance(MoveDelay)
			sensor.value = HitThreshold

			So(rig.poll(), ShouldEqual, 0)
			So(target.State(), ShouldEqual, SideA)
		})

		Convey("a failed read is not a hit", func() {
			target.SetState(SideA)
			rig.clock.Advance(MoveDelay)
			sensor.fail = true

			So(rig.poll(), ShouldEqual, 0)
			So(target.State(), ShouldEqual, SideA)
		})

		Convey("side B reverts once its delay elapses", func() {
			target.BSideDelay = 3 * time.Second
			target.SetState(SideB)
			rig.clock.Advance(time.Second)

			So(rig.poll(), ShouldEqual, 0)
			So(target.State(), ShouldEqual, SideB)

			rig.clock.Advance(2 * time.Second)
			sensor.value = 500
			reads := sensor.reads
			rig.rand.Push(1)

			So(rig.poll(), ShouldEqual, 0)
			So(target.State(), ShouldEqual, SideA)
			So(sensor.reads, ShouldEqual, reads)

			Convey("and may land on side B again", func() {
				target.SetState(SideB)
				rig.clock.Advance(3 * time.Second)
				rig.rand.Push(0)

				So(rig.poll(), ShouldEqual, 0)
				So(target.State(), ShouldEqual, SideB)
			})
		})
	})

	Convey("Given two exposed targets", t, func() {
		rig := newTestRig(2)
		for i := range rig.sensors {
			rig.target(i).SetState(SideA)
			rig.sensors[i].value = 500
		}
		rig.clock.Advance(MoveDelay)

		Convey("only one hit scores per cycle", func() {
			So(rig.poll(), ShouldEqual, HitScore)
			So(rig.target(0).State(), ShouldEqual, Idle)
			So(rig.target(1).State(), ShouldEqual, SideA)

			Convey("and the latch re-arms on the next cycle", func() {
				So(rig.poll(), ShouldEqual, HitScore)
				So(rig.target(1).State(), ShouldEqual, Idle)
			})
		})
	})
}

func TestParseState(t *testing.T) {
	Convey("state names round trip", t, func() {
		for _, s := range []State{SideA, Idle, SideB, Random} {
			parsed, err := ParseState(s.String())
			So(err, ShouldBeNil)
			So(parsed, ShouldEqual, s)
		}

		_, err := ParseState("sideways")
		So(err, ShouldNotBeNil)
		So(State(7).String(), ShouldEqual, "State(7)")
	})
}
