package game

import (
	"log"
	"time"
)

const (
	timedBSideDelay = 2000 * time.Millisecond

	// How long a popped target stays up
	PopupWindow = 5000 * time.Millisecond

	// Each tick draws an index from [0, PopupDraw). Indices past the rack never
	// match, which slows the pop-up rate on small racks.
	PopupDraw = 20
)

var popupStates = [...]State{SideA, SideB, Random}

// Timed pops targets up one at a time for a fixed duration.
type Timed struct {
	Game

	// deadline per target at which it is forced back to Idle; zero when down
	onTargets []time.Time
}

func NewTimed(sink Sink) *Timed {
	return &Timed{Game: Game{sink: sink}}
}

func (t *Timed) Name() string {
	return "timed"
}

func (t *Timed) Start(rack *Rack, limit int) {
	log.Println("Timed")
	t.Game.Start(limit)

	t.onTargets = make([]time.Time, rack.Len())
	for _, target := range rack.Targets() {
		target.SetState(Idle)
		target.BSideDelay = timedBSideDelay
	}
}

func (t *Timed) Tick(rack *Rack) bool {
	pick := rack.rand.Intn(PopupDraw)
	now := rack.clock.Now()

	for i, target := range rack.Targets() {
		if i >= len(t.onTargets) {
			break
		}

		deadline := t.onTargets[i]
		if !deadline.IsZero() && !now.Before(deadline) {
			t.onTargets[i] = time.Time{}
			target.SetState(Idle)
		} else if deadline.IsZero() && i == pick && !target.Moving() {
			target.SetState(popupStates[rack.rand.Intn(len(popupStates))])
			t.onTargets[i] = now.Add(PopupWindow)
		}
	}

	return t.Game.Tick()
}

func (t *Timed) mode() {}
