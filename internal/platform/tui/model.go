package tui

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shadow-runner/internal/config"
	"github.com/vovakirdan/shadow-runner/internal/core"
	"github.com/vovakirdan/shadow-runner/internal/runner"
)

// Model is the Bubble Tea model hosting one runner game.
type Model struct {
	game     *runner.Game
	frame    *runner.DrawList // Last drawn frame, replayed on every view
	canvas   *Canvas
	keys     KeyMap
	help     help.Model
	hold     *HoldTracker
	clock    *core.Clock
	fs       *termFullscreen
	logger   *log.Logger
	now      func() time.Time
	tickRate int
	alert    string // Modal message, dismissed by any key
	running  bool   // Tick pump active
	touching bool   // Left button down
	quitting bool
}

// NewModel creates a model for a terminal of rt.ScreenW x rt.ScreenH cells.
// A nil logger discards output.
func NewModel(cfg config.RunnerConfig, rt core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	fs := &termFullscreen{}
	fs.Resize(rt.ScreenW, rt.ScreenH)
	w, h := fs.canvasSize()

	hm := help.New()
	hm.Width = rt.ScreenW

	return Model{
		game:     runner.New(cfg, rt, runner.WithLogger(logger)),
		frame:    &runner.DrawList{},
		canvas:   NewCanvas(core.NewScreen(w, h), cfg.World.Width, cfg.World.Height),
		keys:     DefaultKeyMap(),
		help:     hm,
		hold:     NewHoldTracker(time.Duration(cfg.Input.HoldTimeoutMs) * time.Millisecond),
		clock:    core.NewClock(),
		fs:       fs,
		logger:   logger,
		now:      time.Now,
		tickRate: rt.TickRate,
		running:  true,
	}
}

// Init draws the first frame at time zero and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.clock.Reset()
	m.game.Tick(0, m.frame)
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.alert != "" {
		m.alert = ""
		return m, nil
	}

	if key.Matches(msg, m.keys.Fullscreen) {
		runner.ToggleFullscreen(m.fs, func(text string) {
			m.alert = text
			m.logger.Warn("fullscreen unavailable", "reason", text)
		})
		m.resizeCanvas()
		return m, nil
	}

	m.hold.Press(m.game.Controls(), m.keys.GameKey(msg), m.now())
	return m.rearm()
}

// handleMouse treats a left-button drag as a touch gesture.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	y := m.canvas.ToWorldY(msg.Y - m.canvasTop())
	controls := m.game.Controls()

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.touching = true
		controls.TouchStart(y)
	case msg.Action == tea.MouseActionMotion && m.touching:
		controls.TouchMove(y)
	case msg.Action == tea.MouseActionRelease && m.touching:
		m.touching = false
		controls.TouchEnd()
	}

	return m.rearm()
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.fs.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	m.resizeCanvas()
	return m, nil
}

// handleTick advances the game one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.running {
		return m, nil
	}
	if m.alert != "" {
		return m, tickCmd(m.tickRate)
	}

	m.hold.Expire(m.game.Controls(), now)
	if m.game.Tick(m.clock.Millis(), m.frame) == core.Halt {
		m.running = false
		m.hold.ReleaseAll(m.game.Controls())
		return m, nil
	}

	return m, tickCmd(m.tickRate)
}

// rearm restarts the tick loop after input restarted a finished run.
// The clock restarts with it, so the new run's first tick is at zero.
func (m Model) rearm() (tea.Model, tea.Cmd) {
	if m.running || m.game.GameOver() {
		return m, nil
	}

	m.clock.Reset()
	m.game.Tick(0, m.frame)
	m.running = true
	return m, tickCmd(m.tickRate)
}

// resizeCanvas fits the canvas to the current mode and terminal size.
func (m Model) resizeCanvas() {
	w, h := m.fs.canvasSize()
	m.canvas.Screen().Resize(w, h)
}

// canvasTop returns the terminal row of the canvas's first row.
func (m Model) canvasTop() int {
	if m.fs.Active() || m.fs.height == 0 {
		return 0
	}

	// Framed window: border, canvas, border, help line.
	content := m.canvas.Screen().Height() + 3
	gap := m.fs.height - content
	if gap <= 0 {
		return 1
	}
	return gap - int(math.Round(float64(gap)*0.5)) + 1
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.alert != "" {
		w, h := m.fs.width, m.fs.height
		if w == 0 || h == 0 {
			w, h = windowCols, windowRows
		}
		return renderAlert(m.alert, w, h)
	}

	m.frame.Replay(m.canvas)
	frame := RenderScreen(m.canvas.Screen())
	if m.fs.Active() {
		return frame
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		windowStyle.Render(frame),
		m.help.View(m.keys),
	)
	if m.fs.width == 0 || m.fs.height == 0 {
		return body
	}
	return lipgloss.Place(m.fs.width, m.fs.height, lipgloss.Center, lipgloss.Center, body)
}

// Game returns the hosted game.
func (m Model) Game() *runner.Game {
	return m.game
}

// Run starts the Bubble Tea program for a local terminal.
func Run(cfg config.RunnerConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
