package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/shadow-runner/internal/core"
	"github.com/vovakirdan/shadow-runner/internal/runner"
)

type stubRestarter struct {
	over     bool
	restarts int
}

func (s *stubRestarter) GameOver() bool { return s.over }
func (s *stubRestarter) Restart()       { s.restarts++; s.over = false }

func TestHoldTrackerExpiresKeys(t *testing.T) {
	in := core.NewInputState()
	c := runner.NewControls(in, &stubRestarter{}, 30)
	h := NewHoldTracker(300 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(c, runner.KeyRight, t0)
	if !in.Has(core.IntentMoveRight) {
		t.Fatal("press should hold the intent")
	}

	h.Expire(c, t0.Add(200*time.Millisecond))
	if !in.Has(core.IntentMoveRight) {
		t.Fatal("released before the timeout")
	}

	// Auto-repeat keeps the key down.
	h.Press(c, runner.KeyRight, t0.Add(250*time.Millisecond))
	h.Expire(c, t0.Add(500*time.Millisecond))
	if !h.Held(runner.KeyRight) || !in.Has(core.IntentMoveRight) {
		t.Fatal("repeat should extend the hold")
	}

	h.Expire(c, t0.Add(600*time.Millisecond))
	if h.Held(runner.KeyRight) || in.Has(core.IntentMoveRight) {
		t.Error("key should be released after the timeout")
	}
}

func TestHoldTrackerEnterIsOneShot(t *testing.T) {
	in := core.NewInputState()
	r := &stubRestarter{over: true}
	c := runner.NewControls(in, r, 30)
	h := NewHoldTracker(300 * time.Millisecond)

	h.Press(c, runner.KeyEnter, time.Now())
	if r.restarts != 1 {
		t.Errorf("restarts = %d, want 1", r.restarts)
	}
	if h.Held(runner.KeyEnter) {
		t.Error("Enter should not be held")
	}
}

func TestHoldTrackerReleaseAll(t *testing.T) {
	in := core.NewInputState()
	c := runner.NewControls(in, &stubRestarter{}, 30)
	h := NewHoldTracker(time.Second)
	now := time.Now()

	h.Press(c, runner.KeyLeft, now)
	h.Press(c, runner.KeyUp, now)
	h.Press(c, runner.KeyUnknown, now)
	if in.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", in.Len())
	}

	h.ReleaseAll(c)
	if in.Len() != 0 {
		t.Errorf("Len() = %d after ReleaseAll, want 0", in.Len())
	}
}
