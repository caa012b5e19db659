package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/shadow-runner/internal/config"
	"github.com/vovakirdan/shadow-runner/internal/runner"
)

// Sheet palette.
var (
	skyTop     = color.RGBA{0x1b, 0x1f, 0x3a, 0xff}
	skyBottom  = color.RGBA{0x4a, 0x3f, 0x6b, 0xff}
	hillColor  = color.RGBA{0x2e, 0x4d, 0x3a, 0xff}
	groundTone = color.RGBA{0x3b, 0x32, 0x28, 0xff}
	starColor  = color.RGBA{0xff, 0xf1, 0xb0, 0xff}
	runnerBody = color.RGBA{0x5c, 0xe0, 0x8a, 0xff}
	runnerDark = color.RGBA{0x2f, 0x8f, 0x55, 0xff}
	enemyBody  = color.RGBA{0xd9, 0x4a, 0x4a, 0xff}
	enemyEye   = color.RGBA{0xff, 0xe0, 0x66, 0xff}
	enemyFeet  = color.RGBA{0xf0, 0x8a, 0x3c, 0xff}
)

// sheets holds the sprite sheets, drawn procedurally on first use.
// Frames are laid out left to right and animation rows top to bottom,
// the layout Actor.Source addresses.
type sheets struct {
	cfg    config.RunnerConfig
	images map[runner.SheetID]*ebiten.Image
}

func newSheets(cfg config.RunnerConfig) *sheets {
	return &sheets{
		cfg:    cfg,
		images: make(map[runner.SheetID]*ebiten.Image),
	}
}

// get returns the sheet image, drawing it on first use.
func (s *sheets) get(id runner.SheetID) *ebiten.Image {
	if img, ok := s.images[id]; ok {
		return img
	}

	var img *ebiten.Image
	switch id {
	case runner.SheetBackground:
		img = s.drawBackground()
	case runner.SheetPlayer:
		img = s.drawPlayer()
	case runner.SheetObstacle:
		img = s.drawObstacle()
	default:
		return nil
	}
	s.images[id] = img
	return img
}

func (s *sheets) drawBackground() *ebiten.Image {
	w, h := float32(s.cfg.Background.Width), float32(s.cfg.Background.Height)
	img := ebiten.NewImage(int(w), int(h))

	const bands = 8
	for i := 0; i < bands; i++ {
		vector.DrawFilledRect(img, 0, h*float32(i)/bands, w, h/bands+1, lerp(skyTop, skyBottom, float64(i)/bands), false)
	}

	for x := float32(35); x < w; x += 140 {
		y := 30 + float32(math.Mod(float64(x)*7, 220))
		vector.DrawFilledCircle(img, x, y, 2, starColor, true)
	}

	// Hills repeat with a period dividing the tile width so the seam matches.
	period := w / 4
	for x := float32(0); x <= w; x += period {
		vector.DrawFilledCircle(img, x, h, period*0.45, hillColor, true)
		vector.DrawFilledCircle(img, x+period/2, h, period*0.3, hillColor, true)
	}

	vector.DrawFilledRect(img, 0, h-24, w, 24, groundTone, false)
	return img
}

func (s *sheets) drawPlayer() *ebiten.Image {
	p := s.cfg.Player
	w, h := float32(p.Width), float32(p.Height)
	cols := max(p.GroundFrames, p.AirFrames) + 1
	img := ebiten.NewImage(int(w)*cols, int(h)*2)

	for row := 0; row < 2; row++ {
		frames := p.GroundFrames + 1
		if row == 1 {
			frames = p.AirFrames + 1
		}
		for f := 0; f < frames; f++ {
			ox, oy := w*float32(f), h*float32(row)
			cx := ox + w/2

			vector.DrawFilledCircle(img, cx, oy+h*0.2, h*0.12, runnerBody, true)
			vector.DrawFilledRect(img, cx-w*0.12, oy+h*0.32, w*0.24, h*0.36, runnerBody, false)

			if row == 1 {
				// Tucked legs
				vector.DrawFilledRect(img, cx-w*0.2, oy+h*0.68, w*0.4, h*0.1, runnerDark, false)
				continue
			}
			swing := float32(math.Sin(2*math.Pi*float64(f)/float64(frames))) * w * 0.12
			vector.DrawFilledRect(img, cx-w*0.1+swing, oy+h*0.68, w*0.08, h*0.32, runnerDark, false)
			vector.DrawFilledRect(img, cx+w*0.02-swing, oy+h*0.68, w*0.08, h*0.32, runnerDark, false)
		}
	}
	return img
}

func (s *sheets) drawObstacle() *ebiten.Image {
	o := s.cfg.Obstacles
	w, h := float32(o.Width), float32(o.Height)
	frames := o.Frames + 1
	img := ebiten.NewImage(int(w)*frames, int(h))

	for f := 0; f < frames; f++ {
		ox := w * float32(f)
		bob := float32(f%2) * h * 0.04

		vector.DrawFilledCircle(img, ox+w/2, h*0.5+bob, h*0.38, enemyBody, true)
		vector.DrawFilledRect(img, ox+w*0.18, h*0.5+bob, w*0.64, h*0.3, enemyBody, false)
		vector.DrawFilledCircle(img, ox+w*0.35, h*0.4+bob, h*0.07, enemyEye, true)

		step := float32(f%2) * w * 0.08
		for i := 0; i < 3; i++ {
			x := ox + w*0.22 + float32(i)*w*0.22 + step
			vector.DrawFilledRect(img, x, h*0.82, w*0.08, h*0.18, enemyFeet, false)
		}
	}
	return img
}

// lerp blends two colors, t in [0, 1].
func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 0xff}
}
