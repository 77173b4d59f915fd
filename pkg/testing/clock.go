package testing

import (
	"sync"
	"time"

	"github.com/go-drift/trellis/pkg/frame"
)

// Epoch is the time every FakeClock starts at.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

var _ frame.Clock = (*FakeClock)(nil)

// FakeClock is a frame.Clock that only moves when told to. It is safe for
// concurrent use.
type FakeClock struct {
	mu      sync.Mutex
	now     time.Time
	history []time.Duration
}

// NewFakeClock returns a clock reading Epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: Epoch}
}

// Now returns the clock's time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d. Negative durations move it back,
// which frame loops report as a zero-length frame.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	c.history = append(c.history, d)
}

// Set jumps to t.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = append(c.history, t.Sub(c.now))
	c.now = t
}

// Elapsed returns the total movement since Epoch.
func (c *FakeClock) Elapsed() time.Duration {
	return c.Now().Sub(Epoch)
}

// Steps returns every movement applied so far, in order.
func (c *FakeClock) Steps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.history...)
}
