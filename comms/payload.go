package comms

import (
	"fmt"

	"github.com/CodedInternet/gotarget/game"
)

// Cmd is a control request sent by a host over the display socket.
type Cmd struct {
	Cmd   string  `json:"cmd"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Controller is the part of the game session a host may drive.
type Controller interface {
	Start(name string, limit int) error
	Stop() error
	SetTarget(index int, state game.State) error
}

type Conductor struct {
	Session Controller
}

func (c *Conductor) ProcessCommand(cmd Cmd) error {
	switch cmd.Cmd {
	case "start":
		return c.Session.Start(cmd.Name, int(cmd.Value))

	case "stop":
		return c.Session.Stop()

	case "set":
		state, err := game.ParseState(cmd.Name)
		if err != nil {
			return err
		}
		return c.Session.SetTarget(int(cmd.Value), state)

	default:
		return fmt.Errorf("unable to process command %q", cmd.Cmd)
	}
}
