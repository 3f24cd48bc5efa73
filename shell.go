package main

import (
	"strconv"
	"strings"

	"github.com/CodedInternet/gotarget/game"
	. "github.com/CodedInternet/gotarget/onboard"
	"github.com/abiosoft/ishell"
)

func newShell(session *game.Session, rng *Range) *ishell.Shell {
	stateNames := func(args []string) []string {
		if len(args) == 1 {
			return []string{"A", "B", "IDLE", "RANDOM"}
		}
		return nil
	}

	shell := ishell.New()
	shell.Println("Target range shell")

	for _, name := range game.ModeNames() {
		name := name
		shell.AddCmd(&ishell.Cmd{
			Name: name,
			Help: name + " <time limit>",
			Func: func(c *ishell.Context) {
				if len(c.Args) != 1 {
					c.Println("Usage:", name, "<time limit>")
					return
				}
				limit, err := strconv.Atoi(c.Args[0])
				if err != nil {
					c.Err(err)
					return
				}
				if err := session.Start(name, limit); err != nil {
					c.Err(err)
					return
				}
				c.Printf("Starting %s for %d\n", name, limit)
			},
		})
	}

	shell.AddCmd(&ishell.Cmd{
		Name: "stop",
		Help: "stop the running game",
		Func: func(c *ishell.Context) {
			if err := session.Stop(); err != nil {
				c.Println(err)
				return
			}
			c.Println("Stopping")
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "state",
		Help: "show the current game and targets",
		Func: func(c *ishell.Context) {
			snap := session.State()
			c.Printf("Mode: %s running: %v score: %d time: %d\n", snap.Mode, snap.Running, snap.Score, snap.Time)
			c.Println("Targets:", strings.Join(snap.Targets, " "))
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name:      "set",
		Completer: stateNames,
		Help:      "set <index> <A|B|IDLE|RANDOM>",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 2 {
				c.Println("Usage: set <index> <A|B|IDLE|RANDOM>")
				return
			}
			index, err := strconv.Atoi(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			state, err := game.ParseState(c.Args[1])
			if err != nil {
				c.Err(err)
				return
			}
			if err := session.SetTarget(index, state); err != nil {
				c.Err(err)
			}
		},
	})

	if rng.Simulated() {
		shell.AddCmd(&ishell.Cmd{
			Name: "shoot",
			Help: "shoot <index> - hit a simulated target",
			Func: func(c *ishell.Context) {
				if len(c.Args) != 1 {
					c.Println("Usage: shoot <index>")
					return
				}
				index, err := strconv.Atoi(c.Args[0])
				if err != nil {
					c.Err(err)
					return
				}
				if err := rng.Shoot(index); err != nil {
					c.Err(err)
				}
			},
		})
	}

	return shell
}
