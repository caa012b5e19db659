package core

import "time"

// Clock measures monotonic milliseconds since its origin.
// Hosts reset it on restart so the first tick of a run starts at zero.
type Clock struct {
	origin time.Time
	now    func() time.Time
}

// NewClock creates a clock starting now.
func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource creates a clock reading time from now.
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{origin: now(), now: now}
}

// Millis returns elapsed milliseconds since the origin.
func (c *Clock) Millis() float64 {
	return float64(c.now().Sub(c.origin)) / float64(time.Millisecond)
}

// Reset moves the origin to the current instant.
func (c *Clock) Reset() {
	c.origin = c.now()
}
