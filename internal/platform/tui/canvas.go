package tui

import (
	"math"

	"github.com/vovakirdan/shadow-runner/internal/core"
	"github.com/vovakirdan/shadow-runner/internal/runner"
)

// Scenery period along the backdrop tile, in logical px.
const (
	hillPeriod = 600.0
	starPeriod = 70.0
	dashPeriod = 40.0
)

// Canvas rasterises the logical world onto a character Screen.
// Sprites are drawn procedurally from the sheet, frame and row they name.
type Canvas struct {
	screen *core.Screen
	worldW float64
	worldH float64
}

// NewCanvas creates a canvas drawing a worldW x worldH world onto screen.
func NewCanvas(screen *core.Screen, worldW, worldH float64) *Canvas {
	return &Canvas{
		screen: screen,
		worldW: worldW,
		worldH: worldH,
	}
}

// Screen returns the underlying character buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// scaleX returns cells per logical px horizontally.
func (c *Canvas) scaleX() float64 {
	return float64(c.screen.Width()) / c.worldW
}

// scaleY returns cells per logical px vertically.
func (c *Canvas) scaleY() float64 {
	return float64(c.screen.Height()) / c.worldH
}

// ToWorldY converts a screen row to the logical y of its centre.
func (c *Canvas) ToWorldY(row int) float64 {
	return (float64(row) + 0.5) * c.worldH / float64(c.screen.Height())
}

// cellRect maps a logical rectangle to the cells it covers.
// Non-empty rectangles always cover at least one cell.
func (c *Canvas) cellRect(r core.RectF) core.Rect {
	sx, sy := c.scaleX(), c.scaleY()
	x0 := int(math.Round(r.X * sx))
	y0 := int(math.Round(r.Y * sy))
	x1 := int(math.Round(r.Right() * sx))
	y1 := int(math.Round(r.Bottom() * sy))
	if x1 <= x0 && r.W > 0 {
		x1 = x0 + 1
	}
	if y1 <= y0 && r.H > 0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Clear erases the screen.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// DrawSprite paints the src frame of a sheet into dst.
func (c *Canvas) DrawSprite(sheet runner.SheetID, src, dst core.RectF) {
	cells := c.cellRect(dst)
	if cells.W <= 0 || cells.H <= 0 {
		return
	}

	frame, row := 0, 0
	if src.W > 0 {
		frame = int(src.X / src.W)
	}
	if src.H > 0 {
		row = int(src.Y / src.H)
	}

	switch sheet {
	case runner.SheetBackground:
		c.drawBackground(cells, src, dst)
	case runner.SheetPlayer:
		c.drawPlayer(cells, frame, row)
	case runner.SheetObstacle:
		c.drawObstacle(cells, frame)
	}
}

// DrawText writes one line of text with its baseline on the row holding t.Y.
func (c *Canvas) DrawText(t runner.Text) {
	col := int(math.Round(t.X * c.scaleX()))
	row := int(t.Y*c.scaleY()) - 1
	if row < 0 {
		row = 0
	}

	switch t.Align {
	case runner.AlignCenter:
		c.screen.DrawTextCentered(col, row, t.Value, t.Color)
	default:
		c.screen.DrawText(col, row, t.Value, t.Color)
	}
}

// drawBackground paints the scenery of the visible part of one tile.
// The pattern is a function of the position inside the tile, so it moves
// with the tile as it scrolls.
func (c *Canvas) drawBackground(cells core.Rect, src, dst core.RectF) {
	sx := c.scaleX()
	top := core.Max(cells.Y, 0)
	bottom := core.Min(cells.Bottom(), c.screen.Height())
	if bottom <= top {
		return
	}
	span := bottom - top
	ground := bottom - 1

	for x := core.Max(cells.X, 0); x < core.Min(cells.Right(), c.screen.Width()); x++ {
		u := src.X + (float64(x)+0.5)/sx - dst.X

		// Ground strip
		dash := '═'
		if int(u/dashPeriod)%2 == 1 {
			dash = '─'
		}
		c.screen.SetColored(x, ground, dash, core.ColorGray)

		// Hills up to a third of the height
		hill := (1 - math.Cos(2*math.Pi*u/hillPeriod)) / 2
		h := int(hill * float64(span) / 3)
		for y := ground - h; y < ground; y++ {
			c.screen.SetColored(x, y, '░', core.ColorGreen)
		}

		// Stars in the upper third
		slot := int(u / starPeriod)
		if int(u)%int(starPeriod) < int(1/sx)+1 && slot%3 != 1 {
			y := top + (slot*7)%core.Max(span/3, 1)
			c.screen.SetColored(x, y, '·', core.ColorYellow)
		}
	}
}

// drawPlayer paints the runner: a head row, a body and a leg row that
// alternates with the animation frame. Row 1 of the sheet is the airborne
// strip with tucked legs.
func (c *Canvas) drawPlayer(cells core.Rect, frame, row int) {
	body := cells
	if cells.H > 2 {
		c.screen.DrawRect(core.NewRect(cells.X+cells.W/4, cells.Y, cells.W/2, 1), '▄', core.ColorBrightGreen)
		body = core.NewRect(cells.X, cells.Y+1, cells.W, cells.H-1)
	}
	if body.H > 1 {
		c.screen.DrawRect(core.NewRect(body.X, body.Y, body.W, body.H-1), '█', core.ColorBrightGreen)
	}
	legs := body.Bottom() - 1

	if row == 1 {
		c.screen.DrawHLine(body.X, legs, body.W, '▀', core.ColorBrightGreen)
		return
	}
	for i := 0; i < body.W; i++ {
		glyph := ' '
		switch {
		case frame%2 == 0 && (i == 1 || i == body.W-2):
			glyph = '╱'
		case frame%2 == 1 && (i == body.W/3 || i == 2*body.W/3):
			glyph = '│'
		}
		if glyph != ' ' {
			c.screen.SetColored(body.X+i, legs, glyph, core.ColorBrightGreen)
		}
	}
}

// drawObstacle paints an enemy with feet that shuffle with the frame.
func (c *Canvas) drawObstacle(cells core.Rect, frame int) {
	if cells.H > 1 {
		c.screen.DrawRect(core.NewRect(cells.X, cells.Y, cells.W, cells.H-1), '▓', core.ColorRed)
		if cells.W > 2 {
			c.screen.SetColored(cells.X+1, cells.Y, '◉', core.ColorBrightRed)
		}
	}
	feet := cells.Bottom() - 1
	for i := frame % 2; i < cells.W; i += 2 {
		c.screen.SetColored(cells.X+i, feet, '▘', core.ColorOrange)
	}
}
