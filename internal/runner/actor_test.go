package runner

import (
	"testing"

	"github.com/vovakirdan/shadow-runner/internal/core"
)

func TestAnimationAdvanceWaitsForInterval(t *testing.T) {
	a := NewAnimation(20, 8, 0)
	if a.Interval != 50 {
		t.Fatalf("Interval = %v, want 50", a.Interval)
	}

	for i := 0; i < 4; i++ {
		a.Advance(16)
	}
	if a.Frame != 0 {
		t.Fatalf("Frame = %d before the interval elapsed, want 0", a.Frame)
	}
	if a.Timer != 64 {
		t.Fatalf("Timer = %v, want 64", a.Timer)
	}

	// The tick after the timer passed the interval advances and resets.
	a.Advance(16)
	if a.Frame != 1 {
		t.Errorf("Frame = %d, want 1", a.Frame)
	}
	if a.Timer != 0 {
		t.Errorf("Timer = %v, want 0", a.Timer)
	}
}

func TestAnimationWrapsAfterLastFrame(t *testing.T) {
	a := NewAnimation(20, 2, 0)

	var seen []int
	for i := 0; i < 4; i++ {
		a.Timer = a.Interval
		a.Advance(0)
		seen = append(seen, a.Frame)
	}

	want := []int{1, 2, 0, 1}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("frames = %v, want %v", seen, want)
		}
	}
}

func TestAnimationUseKeepsFrame(t *testing.T) {
	a := NewAnimation(20, 8, 0)
	a.Frame = 6
	a.Use(5, 1)

	if a.Frame != 6 || a.Frames != 5 || a.Row != 1 {
		t.Errorf("after Use: frame=%d frames=%d row=%d", a.Frame, a.Frames, a.Row)
	}

	// Out of range frames wrap on the next advance.
	a.Timer = a.Interval
	a.Advance(0)
	if a.Frame != 0 {
		t.Errorf("Frame = %d, want wrap to 0", a.Frame)
	}
}

func TestActorSourceAndBounds(t *testing.T) {
	a := Actor{X: 10, Y: 20, Width: 200, Height: 150, Sheet: SheetPlayer}
	a.Anim.Frame = 3
	a.Anim.Row = 1

	if got, want := a.Source(), core.NewRectF(600, 150, 200, 150); got != want {
		t.Errorf("Source() = %+v, want %+v", got, want)
	}
	if got, want := a.Bounds(), core.NewRectF(10, 20, 200, 150); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}

	var list DrawList
	a.Draw(&list)
	ops := list.Ops()
	if len(ops) != 1 || !ops[0].IsSprite() || ops[0].Sheet != SheetPlayer {
		t.Fatalf("Draw recorded %+v", ops)
	}
	if ops[0].Dst != a.Bounds() {
		t.Errorf("Draw dst = %+v, want %+v", ops[0].Dst, a.Bounds())
	}
}
