package game

import (
	"sync"
	"time"
)

// MockClock is a controllable Clock for tests and replays. Sleep advances it.
type MockClock struct {
	mu      sync.RWMutex
	current time.Time
	Slept   []time.Duration
}

func NewMockClock(start time.Time) *MockClock {
	return &MockClock{current: start}
}

func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *MockClock) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Slept = append(m.Slept, d)
	m.current = m.current.Add(d)
}

func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

// ScriptedRand replays a fixed sequence of draws, each reduced modulo n.
// Once the script runs out every draw is 0.
type ScriptedRand struct {
	Draws []int
	next  int
	Calls []int // the n passed to each Intn call
}

func (r *ScriptedRand) Intn(n int) int {
	r.Calls = append(r.Calls, n)
	if r.next >= len(r.Draws) {
		return 0
	}
	v := r.Draws[r.next]
	r.next++
	return v % n
}

// Push appends draws to the end of the script.
func (r *ScriptedRand) Push(draws ...int) {
	r.Draws = append(r.Draws, draws...)
}
