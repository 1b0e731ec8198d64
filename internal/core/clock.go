package core

import "time"

// Clock is a monotonic millisecond time source.
type Clock interface {
	Now() int64
}

// SystemClock reads the process monotonic clock.
// Readings are relative to the moment the clock was created.
type SystemClock struct {
	origin time.Time
}

// NewSystemClock creates a clock anchored at the current instant.
func NewSystemClock() *SystemClock {
	return &SystemClock{origin: time.Now()}
}

// Now returns milliseconds elapsed since the clock was created.
func (c *SystemClock) Now() int64 {
	return time.Since(c.origin).Milliseconds()
}

// ManualClock is advanced explicitly. Used by tests and replays.
type ManualClock struct {
	ms int64
}

// NewManualClock creates a manual clock starting at the given time.
func NewManualClock(start int64) *ManualClock {
	return &ManualClock{ms: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() int64 {
	return c.ms
}

// Advance moves the clock forward by d milliseconds.
// Negative values are ignored so the clock stays monotonic.
func (c *ManualClock) Advance(d int64) {
	if d > 0 {
		c.ms += d
	}
}

// Set jumps the clock to t if t is not in the past.
func (c *ManualClock) Set(t int64) {
	if t > c.ms {
		c.ms = t
	}
}
