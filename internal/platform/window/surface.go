package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/shadow-runner/internal/core"
	"github.com/vovakirdan/shadow-runner/internal/runner"
)

// palette maps core colors to RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:     {0xff, 0xff, 0xff, 0xff},
	core.ColorBlack:       {0x00, 0x00, 0x00, 0xff},
	core.ColorWhite:       {0xff, 0xff, 0xff, 0xff},
	core.ColorRed:         {0xd9, 0x4a, 0x4a, 0xff},
	core.ColorGreen:       {0x2e, 0x8b, 0x57, 0xff},
	core.ColorYellow:      {0xff, 0xd7, 0x00, 0xff},
	core.ColorBlue:        {0x41, 0x69, 0xe1, 0xff},
	core.ColorCyan:        {0x00, 0xce, 0xd1, 0xff},
	core.ColorGray:        {0x80, 0x80, 0x80, 0xff},
	core.ColorBrightGreen: {0x5c, 0xe0, 0x8a, 0xff},
	core.ColorBrightRed:   {0xff, 0x55, 0x55, 0xff},
	core.ColorOrange:      {0xf0, 0x8a, 0x3c, 0xff},
}

// fontFace is the bitmap font every line of text is scaled from.
var fontFace = text.NewGoXFace(basicfont.Face7x13)

// imageSurface draws the runner onto an ebiten image.
type imageSurface struct {
	dst    *ebiten.Image
	sheets *sheets
}

// Clear fills the image black.
func (s imageSurface) Clear() {
	s.dst.Fill(color.Black)
}

// DrawSprite blits the src region of a sheet, scaled to dst.
func (s imageSurface) DrawSprite(id runner.SheetID, src, dst core.RectF) {
	sheet := s.sheets.get(id)
	if sheet == nil || src.W <= 0 || src.H <= 0 {
		return
	}

	r := image.Rect(int(src.X), int(src.Y), int(src.Right()), int(src.Bottom()))
	frame, ok := sheet.SubImage(r).(*ebiten.Image)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/src.W, dst.H/src.H)
	op.GeoM.Translate(dst.X, dst.Y)
	s.dst.DrawImage(frame, op)
}

// DrawText draws one line with its baseline at t.Y.
func (s imageSurface) DrawText(t runner.Text) {
	drawLine(s.dst, t)
}

// drawLine renders t with the bitmap font scaled to t.Size.
func drawLine(dst *ebiten.Image, t runner.Text) {
	scale := t.Size / float64(basicfont.Face7x13.Height)
	if scale <= 0 {
		scale = 1
	}
	ascent := fontFace.Metrics().HAscent * scale

	op := &text.DrawOptions{}
	if t.Align == runner.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(t.X, t.Y-ascent)
	op.ColorScale.ScaleWithColor(palette[t.Color])
	text.Draw(dst, t.Value, fontFace, op)
}
