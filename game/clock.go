package game

import "time"

// Clock is the time source for every deadline in the game core.
type Clock interface {
	Now() time.Time
	// Sleep blocks the driver. Only the knockdown bonus countdown uses it.
	Sleep(d time.Duration)
}

// Rand is satisfied by *math/rand.Rand.
type Rand interface {
	Intn(n int) int
}

// SystemClock reads the monotonic wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
