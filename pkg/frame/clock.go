package frame

import "time"

// Clock provides frame time. Tests inject a fake clock through SetClock or
// Loop.Clock to step frames deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// clock is the package-level time source used by loops without their own.
var clock Clock = SystemClock{}

// SetClock replaces the package clock and returns the previous one so
// callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	if c == nil {
		c = SystemClock{}
	}
	clock = c
	return prev
}

// Now returns the current time from the package clock.
func Now() time.Time { return clock.Now() }
