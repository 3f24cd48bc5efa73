package game

// Rack owns the attached targets along with the clock and random source they share.
type Rack struct {
	clock   Clock
	rand    Rand
	targets []*Target

	// scoring hits recognised since the last ResetLatch
	hits int
}

func NewRack(clock Clock, rand Rand) *Rack {
	return &Rack{
		clock: clock,
		rand:  rand,
	}
}

func (r *Rack) register(t *Target) {
	r.targets = append(r.targets, t)
}

func (r *Rack) Targets() []*Target {
	return r.targets
}

func (r *Rack) Len() int {
	return len(r.targets)
}

func (r *Rack) Clock() Clock {
	return r.clock
}

// ResetLatch re-arms scoring. The driver calls it once per pass so at most one
// hit is recognised per polling cycle across the whole rack.
func (r *Rack) ResetLatch() {
	r.hits = 0
}

func (r *Rack) latch() {
	r.hits++
}

func (r *Rack) latched() bool {
	return r.hits != 0
}

// AllIdle reports whether every target is parked.
func (r *Rack) AllIdle() bool {
	for _, t := range r.targets {
		if t.State() != Idle {
			return false
		}
	}
	return true
}

// Park forces every target to Idle.
func (r *Rack) Park() {
	for _, t := range r.targets {
		t.SetState(Idle)
	}
}

// States returns the current state of every target in rack order.
func (r *Rack) States() []State {
	states := make([]State, len(r.targets))
	for i, t := range r.targets {
		states[i] = t.State()
	}
	return states
}
