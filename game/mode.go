package game

import "fmt"

// Mode is one of the built-in game modes, Knockdown or Timed.
type Mode interface {
	Name() string
	Start(rack *Rack, limit int)
	// Tick returns false once the mode has finished.
	Tick(rack *Rack) bool
	AddScore(change int)
	Stop(rack *Rack)
	Score() int
	Time() int

	// abandon ends the game without any end-of-game rewards.
	abandon(rack *Rack)
	mode()
}

var modeNames = []string{"knockdown", "timed"}

func ModeNames() []string {
	return modeNames
}

func NewMode(name string, sink Sink) (Mode, error) {
	switch name {
	case "knockdown":
		return NewKnockdown(sink), nil
	case "timed":
		return NewTimed(sink), nil
	}
	return nil, fmt.Errorf("no such game mode %s", name)
}
