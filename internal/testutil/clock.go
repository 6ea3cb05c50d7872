package testutil

import (
	"sync"
	"time"
)

// Clock is a hand-driven wall clock for tests.
//
// It satisfies date.Clock. Time only moves when Set or Advance is called, so
// "now" is identical for every read in between.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Clock struct {
	mu    sync.Mutex
	start time.Time
	now   time.Time
}

// NewClock creates a clock reading t.
func NewClock(t time.Time) *Clock {
	return &Clock{start: t, now: t}
}

// NewUnixClock creates a clock reading the given Unix seconds, UTC.
func NewUnixClock(sec int64) *Clock {
	return NewClock(time.Unix(sec, 0).UTC())
}

// Now returns the current reading.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t. Going backwards is allowed.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d and returns the new reading.
func (c *Clock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Reset returns the clock to the reading it was created with.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.start
}
