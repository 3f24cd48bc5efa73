package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// Interval is the drive cadence the game timer assumes.
const Interval = 100 * time.Millisecond

var (
	ErrNoSuchTarget = errors.New("no such target")
	ErrBusy         = errors.New("session is not accepting commands")
)

// Snapshot is a copy of the session state that is safe to hand to other goroutines.
type Snapshot struct {
	Mode    string   `json:"mode"`
	Running bool     `json:"running"`
	Score   int      `json:"score"`
	Time    int      `json:"time"`
	Targets []string `json:"targets"`
}

// Session drives the rack and the active mode. All game state is touched only
// from the goroutine calling Step (normally Run); other goroutines queue
// commands and read snapshots.
type Session struct {
	Interval time.Duration

	rack *Rack
	sink Sink
	mode Mode
	last Mode // most recent mode, kept for its final score

	cmds     chan func() // drained by Step
	lock     sync.RWMutex
	snapshot Snapshot
}

func NewSession(rack *Rack, sink Sink) *Session {
	s := &Session{
		Interval: Interval,
		rack:     rack,
		sink:     sink,
		cmds:     make(chan func(), 16),
	}
	s.publish()
	return s
}

// Start queues a fresh game of the named mode. A running game is stopped first.
func (s *Session) Start(name string, limit int) error {
	mode, err := NewMode(name, s.sink)
	if err != nil {
		return err
	}
	if limit <= 0 {
		return fmt.Errorf("time limit must be positive, got %d", limit)
	}

	return s.queue(func() {
		if s.mode != nil {
			// a replaced game earns no bonus
			s.mode.abandon(s.rack)
		}
		s.mode = mode
		s.last = mode
		mode.Start(s.rack, limit)
	})
}

// Stop queues a stop of the running game, if any.
func (s *Session) Stop() error {
	return s.queue(func() {
		if s.mode != nil {
			s.mode.Stop(s.rack)
			s.mode = nil
		}
	})
}

// SetTarget queues a manual state change for one target.
func (s *Session) SetTarget(index int, state State) error {
	if index < 0 || index >= s.rack.Len() {
		return ErrNoSuchTarget
	}
	return s.queue(func() {
		s.rack.Targets()[index].SetState(state)
	})
}

// queue hands cmd to the driver without blocking. ErrBusy means the driver is
// not draining, either stopped or still paying out a bonus.
func (s *Session) queue(cmd func()) error {
	select {
	case s.cmds <- cmd:
		return nil
	default:
		return ErrBusy
	}
}

// Step runs one driver pass: pending commands, one Hit per target, then Tick.
func (s *Session) Step() {
	s.drain()

	s.rack.ResetLatch()
	for _, t := range s.rack.Targets() {
		score := t.Hit()
		if s.mode != nil {
			s.mode.AddScore(score)
		}
	}

	if s.mode != nil && !s.mode.Tick(s.rack) {
		s.mode.Stop(s.rack)
		s.mode = nil
	}

	s.publish()
}

// Run steps the session every Interval until the context is cancelled.
func (s *Session) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("session stopped")
			return ctx.Err()
		case <-ticker.C:
			s.Step()
		}
	}
}

func (s *Session) State() Snapshot {
	s.lock.RLock()
	defer s.lock.RUnlock()

	snap := s.snapshot
	snap.Targets = append([]string(nil), s.snapshot.Targets...)
	return snap
}

func (s *Session) drain() {
	for {
		select {
		case cmd := <-s.cmds:
			cmd()
		default:
			return
		}
	}
}

func (s *Session) publish() {
	snap := Snapshot{Running: s.mode != nil}
	if s.last != nil {
		snap.Mode = s.last.Name()
		snap.Score = s.last.Score()
		snap.Time = s.last.Time()
	}
	for _, state := range s.rack.States() {
		snap.Targets = append(snap.Targets, state.String())
	}

	s.lock.Lock()
	s.snapshot = snap
	s.lock.Unlock()
}
