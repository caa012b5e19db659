package runner

import (
	"github.com/vovakirdan/shadow-runner/internal/config"
	"github.com/vovakirdan/shadow-runner/internal/core"
)

// Background is a two-tile horizontally scrolling backdrop.
type Background struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // px per tick
}

// NewBackground creates a backdrop at its origin.
func NewBackground(cfg config.BackgroundConfig) *Background {
	return &Background{
		Width:  cfg.Width,
		Height: cfg.Height,
		Speed:  cfg.Speed,
	}
}

// Draw blits the tile twice, the second copy overlapping the first by one
// step of scroll to hide the seam.
func (b *Background) Draw(dst Surface) {
	src := core.NewRectF(0, 0, b.Width, b.Height)
	dst.DrawSprite(SheetBackground, src, core.NewRectF(b.X, b.Y, b.Width, b.Height))
	dst.DrawSprite(SheetBackground, src, core.NewRectF(b.X+b.Width-b.Speed, b.Y, b.Width, b.Height))
}

// Update scrolls left and jumps back to the origin once a full tile has passed.
func (b *Background) Update() {
	b.X -= b.Speed
	if b.X < -b.Width {
		b.X = 0
	}
}

// Restart returns the backdrop to its origin.
func (b *Background) Restart() {
	b.X = 0
}
