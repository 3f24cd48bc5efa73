package onboard

import (
	"testing"
	"time"

	"github.com/CodedInternet/gotarget/game"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewSimulatedRange(t *testing.T) {
	config, err := ParseConfig([]byte(testYaml))
	if err != nil {
		panic(err)
	}

	Convey("Range gets created successfully", t, func() {
		clock := game.NewMockClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
		rnd := &game.ScriptedRand{}
		rng := NewSimulatedRange(config, clock, rnd)

		So(rng.Simulated(), ShouldBeTrue)
		So(rng.Rack.Len(), ShouldEqual, 2)
		So(rng.Sensors, ShouldHaveLength, 2)
		So(rng.Rack.States(), ShouldResemble, []game.State{game.Idle, game.Idle})
		So(rng.Rack.Targets()[1].SensorPin(), ShouldEqual, 1)
		So(rng.Close(), ShouldBeNil)

		Convey("shooting an exposed target scores", func() {
			session := game.NewSession(rng.Rack, game.DiscardSink{})
			So(session.SetTarget(1, game.SideA), ShouldBeNil)
			session.Step()
			clock.Advance(game.MoveDelay)

			So(rng.Shoot(1), ShouldBeNil)
			session.Step()
			So(rng.Rack.States(), ShouldResemble, []game.State{game.Idle, game.Idle})
		})

		Convey("shooting a lowered target is lost", func() {
			rng.Sensors[1].Permill = 0
			session := game.NewSession(rng.Rack, game.DiscardSink{})
			So(rng.Shoot(1), ShouldBeNil)
			session.Step()
			clock.Advance(time.Minute)

			So(session.SetTarget(1, game.SideA), ShouldBeNil)
			session.Step()
			clock.Advance(game.MoveDelay)
			session.Step()
			So(rng.Rack.States(), ShouldResemble, []game.State{game.Idle, game.SideA})
		})

		Convey("shooting a missing target fails", func() {
			So(rng.Shoot(2), ShouldEqual, game.ErrNoSuchTarget)
		})
	})

	Convey("Hardware ranges need a bridge device", t, func() {
		config.Bridge = ""
		_, err := NewRange(config, game.SystemClock{}, &game.ScriptedRand{})
		So(err, ShouldNotBeNil)
	})
}
