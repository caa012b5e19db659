package tui

import (
	"time"

	"github.com/vovakirdan/shadow-runner/internal/runner"
)

// HoldTracker emulates key releases for terminals, which only report
// presses and auto-repeats. A key counts as held until no press for it
// has arrived within the timeout.
type HoldTracker struct {
	timeout time.Duration
	pressed map[runner.Key]time.Time
}

// NewHoldTracker creates a tracker releasing keys after timeout.
func NewHoldTracker(timeout time.Duration) *HoldTracker {
	return &HoldTracker{
		timeout: timeout,
		pressed: make(map[runner.Key]time.Time),
	}
}

// Press records a press of k at now. Enter is a one-shot key and is
// released straight away; other keys stay down until they expire.
func (h *HoldTracker) Press(c *runner.Controls, k runner.Key, now time.Time) {
	if k == runner.KeyUnknown {
		return
	}
	if k == runner.KeyEnter {
		c.KeyDown(k)
		c.KeyUp(k)
		return
	}
	if _, held := h.pressed[k]; !held {
		c.KeyDown(k)
	}
	h.pressed[k] = now
}

// Expire releases every key whose last press is older than the timeout.
func (h *HoldTracker) Expire(c *runner.Controls, now time.Time) {
	for k, at := range h.pressed {
		if now.Sub(at) > h.timeout {
			delete(h.pressed, k)
			c.KeyUp(k)
		}
	}
}

// ReleaseAll releases every held key.
func (h *HoldTracker) ReleaseAll(c *runner.Controls) {
	for k := range h.pressed {
		delete(h.pressed, k)
		c.KeyUp(k)
	}
}

// Held reports whether k is currently held.
func (h *HoldTracker) Held(k runner.Key) bool {
	_, ok := h.pressed[k]
	return ok
}
