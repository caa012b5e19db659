// Package window hosts the runner in a desktop or mobile window through
// Ebitengine. Keys, touches and mouse drags feed the game's controls; the
// sprite sheets are drawn procedurally at startup.
package window

import (
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/shadow-runner/internal/config"
	"github.com/vovakirdan/shadow-runner/internal/core"
	"github.com/vovakirdan/shadow-runner/internal/runner"
)

// WindowTitle is shown in the title bar.
const WindowTitle = "Shadow Runner"

// Fullscreen button, top right corner, in logical px.
const (
	buttonSize   = 48
	buttonMargin = 12
)

// Game adapts runner.Game to ebiten's Update/Draw/Layout loop.
// Update ticks the runner into a draw list that Draw replays.
type Game struct {
	game    *runner.Game
	frame   *runner.DrawList
	sheets  *sheets
	clock   *core.Clock
	fs      runner.Fullscreen
	pointer pointer
	events  inputEvents
	button  core.Rect // Fullscreen toggle hit area
	width   int
	height  int
	alert   string // Modal message, pauses the game until dismissed
	running bool
	logger  *log.Logger
}

// NewGame creates a window host. A nil logger discards output.
func NewGame(cfg config.RunnerConfig, rt core.RuntimeConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := int(cfg.World.Width), int(cfg.World.Height)
	return &Game{
		game:   runner.New(cfg, rt, runner.WithLogger(logger)),
		frame:  &runner.DrawList{},
		sheets: newSheets(cfg),
		clock:  core.NewClock(),
		fs:     newWindowFullscreen(),
		button: core.NewRect(w-buttonSize-buttonMargin, buttonMargin, buttonSize, buttonSize),
		width:  w,
		height: h,
		logger: logger,
	}
}

// Update handles input and advances the runner one tick.
func (g *Game) Update() error {
	controls := g.game.Controls()
	g.pointer.poll(controls, g.button, &g.events)

	if g.alert != "" {
		if len(g.events.pressed) > 0 || g.events.clicked {
			g.alert = ""
		}
		return nil
	}

	for _, k := range g.events.pressed {
		if k == ebiten.KeyF {
			g.toggleFullscreen()
			continue
		}
		controls.KeyDown(keyFor(k))
	}
	for _, k := range g.events.released {
		controls.KeyUp(keyFor(k))
	}
	if g.events.clicked && g.button.Contains(g.events.clickX, g.events.clickY) {
		g.toggleFullscreen()
	}

	if !g.running {
		if g.game.GameOver() {
			return nil
		}
		// First frame, or the run was restarted by input.
		g.clock.Reset()
		g.game.Tick(0, g.frame)
		g.running = true
		return nil
	}

	if g.game.Tick(g.clock.Millis(), g.frame) == core.Halt {
		g.running = false
	}
	return nil
}

func (g *Game) toggleFullscreen() {
	runner.ToggleFullscreen(g.fs, func(msg string) {
		g.alert = msg
		g.logger.Warn("fullscreen unavailable", "reason", msg)
	})
}

// Draw replays the last tick's frame, then the chrome on top.
func (g *Game) Draw(screen *ebiten.Image) {
	g.frame.Replay(imageSurface{dst: screen, sheets: g.sheets})
	g.drawButton(screen)
	if g.alert != "" {
		g.drawAlert(screen)
	}
}

// drawButton draws the fullscreen toggle as four corner brackets.
func (g *Game) drawButton(screen *ebiten.Image) {
	b := g.button
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)
	const arm, stroke = 14, 4
	clr := color.RGBA{0xff, 0xff, 0xff, 0xc0}

	vector.DrawFilledRect(screen, x, y, arm, stroke, clr, false)
	vector.DrawFilledRect(screen, x, y, stroke, arm, clr, false)
	vector.DrawFilledRect(screen, x+w-arm, y, arm, stroke, clr, false)
	vector.DrawFilledRect(screen, x+w-stroke, y, stroke, arm, clr, false)
	vector.DrawFilledRect(screen, x, y+h-stroke, arm, stroke, clr, false)
	vector.DrawFilledRect(screen, x, y+h-arm, stroke, arm, clr, false)
	vector.DrawFilledRect(screen, x+w-arm, y+h-stroke, arm, stroke, clr, false)
	vector.DrawFilledRect(screen, x+w-stroke, y+h-arm, stroke, arm, clr, false)
}

// drawAlert dims the game and shows the alert message in a box.
func (g *Game) drawAlert(screen *ebiten.Image) {
	w, h := float32(g.width), float32(g.height)
	vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{0, 0, 0, 0xa0}, false)

	lines := strings.Split(g.alert, "\n")
	lines = append(lines, "", "press any key")
	const size, lead = 20, 28
	boxH := float32(len(lines)*lead + 40)
	top := (h - boxH) / 2
	vector.DrawFilledRect(screen, 60, top, w-120, boxH, color.RGBA{0x30, 0x30, 0x40, 0xff}, false)
	vector.StrokeRect(screen, 60, top, w-120, boxH, 2, color.RGBA{0xff, 0x55, 0x55, 0xff}, false)

	for i, line := range lines {
		drawLine(screen, runner.Text{
			Value: line,
			X:     float64(w / 2),
			Y:     float64(top) + 20 + float64((i+1)*lead),
			Size:  size,
			Align: runner.AlignCenter,
			Color: core.ColorWhite,
		})
	}
}

// Layout keeps the logical world size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Runner returns the hosted game.
func (g *Game) Runner() *runner.Game {
	return g.game
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.RunnerConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	if rt.TickRate > 0 {
		ebiten.SetTPS(rt.TickRate)
	}
	ebiten.SetWindowSize(int(cfg.World.Width), int(cfg.World.Height))
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(NewGame(cfg, rt, logger))
}
