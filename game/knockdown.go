package game

import (
	"log"
	"time"
)

const (
	knockdownMinBSide = 4000 // ms
	knockdownMaxBSide = 10000

	// Pause between steps of the bonus countdown so the display can animate it
	BonusPacing = 200 * time.Millisecond
)

// Knockdown starts with every target up; knock them all down to end early.
// Time left over at the end is traded for bonus points.
type Knockdown struct {
	Game
}

func NewKnockdown(sink Sink) *Knockdown {
	return &Knockdown{Game{sink: sink}}
}

func (k *Knockdown) Name() string {
	return "knockdown"
}

func (k *Knockdown) Start(rack *Rack, limit int) {
	k.Game.Start(limit)
	log.Println("Knockdown")
	for _, t := range rack.Targets() {
		span := rack.rand.Intn(knockdownMaxBSide - knockdownMinBSide)
		t.BSideDelay = time.Duration(knockdownMinBSide+span) * time.Millisecond
		t.SetState(Random)
	}
}

func (k *Knockdown) Tick(rack *Rack) bool {
	if !k.Game.Tick() {
		return false
	}
	return !rack.AllIdle()
}

func (k *Knockdown) Stop(rack *Rack) {
	log.Println("Knockdown stop")
	k.Game.Stop(rack)
	for k.time > 2 {
		k.AddScore(1)
		k.time -= 2
		k.emit(MsgTime, k.time)
		rack.clock.Sleep(BonusPacing)
	}
	k.time = 0
	k.emit(MsgTime, 0)
}

func (k *Knockdown) mode() {}
