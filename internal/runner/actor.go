// Package runner implements the endless runner: a player auto-runs over a
// scrolling backdrop, jumps over spawned obstacles, and the run ends on
// the first collision.
//
// The package is pure game logic. Hosts feed it raw input through Controls,
// call Game.Tick once per frame and hand it a Surface to draw on.
package runner

import "github.com/vovakirdan/shadow-runner/internal/core"

// Animation tracks sprite-sheet frame state for one actor.
type Animation struct {
	Frame    int     // Current column in the sheet
	Row      int     // Current row in the sheet
	Frames   int     // Highest column before wrapping to 0
	Timer    float64 // ms accumulated since the last advance
	Interval float64 // ms between advances
}

// NewAnimation creates an animation running at fps.
func NewAnimation(fps float64, frames, row int) Animation {
	return Animation{
		Frames:   frames,
		Row:      row,
		Interval: 1000 / fps,
	}
}

// Advance moves the timer by deltaMs. When the timer has reached the
// interval, the frame advances instead and the timer restarts.
func (a *Animation) Advance(deltaMs float64) {
	if a.Timer >= a.Interval {
		if a.Frame >= a.Frames {
			a.Frame = 0
		} else {
			a.Frame++
		}
		a.Timer = 0
		return
	}
	a.Timer += deltaMs
}

// Use switches to another strip of the sheet without touching the frame.
func (a *Animation) Use(frames, row int) {
	a.Frames = frames
	a.Row = row
}

// Reset rewinds to the first frame.
func (a *Animation) Reset() {
	a.Frame = 0
	a.Timer = 0
}

// Actor is the shared shape of every sprite in the world.
type Actor struct {
	X, Y          float64
	Width, Height float64
	Sheet         SheetID
	Anim          Animation
}

// Bounds returns the actor's rectangle on the surface.
func (a *Actor) Bounds() core.RectF {
	return core.NewRectF(a.X, a.Y, a.Width, a.Height)
}

// Source returns the current frame's rectangle in the sprite sheet.
func (a *Actor) Source() core.RectF {
	return core.NewRectF(
		float64(a.Anim.Frame)*a.Width,
		float64(a.Anim.Row)*a.Height,
		a.Width,
		a.Height,
	)
}

// Draw blits the current frame.
func (a *Actor) Draw(dst Surface) {
	dst.DrawSprite(a.Sheet, a.Source(), a.Bounds())
}
