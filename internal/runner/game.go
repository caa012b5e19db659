package runner

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shadow-runner/internal/config"
	"github.com/vovakirdan/shadow-runner/internal/core"
)

// Game orchestrates one runner world: backdrop, obstacles, player and the
// status overlay, advanced in a fixed order once per tick.
type Game struct {
	cfg      config.RunnerConfig
	input    *core.InputState
	controls *Controls
	state    State
	player   *Player
	spawner  *Spawner
	bg       *Background
	lastTime float64 // Timestamp of the previous tick in ms
	rng      RandomSource
	logger   *log.Logger
}

// Option customizes a Game.
type Option func(*Game)

// WithLogger sets the logger for game events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithRandom replaces the seeded random source used for spawn intervals.
func WithRandom(r RandomSource) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// New creates a running game.
func New(cfg config.RunnerConfig, runtime core.RuntimeConfig, opts ...Option) *Game {
	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:    cfg,
		input:  core.NewInputState(),
		rng:    rand.New(rand.NewSource(seed)),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.player = NewPlayer(cfg)
	g.spawner = NewSpawner(cfg, g.rng, g.logger)
	g.bg = NewBackground(cfg.Background)
	g.controls = NewControls(g.input, g, cfg.Input.SwipeThreshold)
	return g
}

// Tick advances the world to timestamp now (ms on the host's clock) and
// draws the frame into dst. It returns Halt once the run is over; ticks
// requested after that change nothing until Restart.
func (g *Game) Tick(now float64, dst Surface) core.Signal {
	if g.state.GameOver {
		return core.Halt
	}

	delta := now - g.lastTime
	g.lastTime = now

	dst.Clear()

	g.bg.Draw(dst)
	g.bg.Update()

	g.spawner.Tick(delta, &g.state, dst)

	g.player.Draw(dst)
	g.player.Update(g.input, delta, &g.state)

	DrawStatus(dst, g.state.Snapshot(), g.cfg.World.Width)

	if g.state.GameOver {
		g.logger.Info("game over", "score", g.state.Score)
		return core.Halt
	}
	return core.Continue
}

// Restart begins a new run. The time baseline goes back to zero, so the
// host should restart its clock and tick at 0.
func (g *Game) Restart() {
	g.player.Restart()
	g.bg.Restart()
	g.state.Reset()
	g.spawner.Reset()
	g.lastTime = 0
	g.logger.Info("restart")
}

// GameOver reports whether the run has ended.
func (g *Game) GameOver() bool {
	return g.state.GameOver
}

// State returns score and game-over status.
func (g *Game) State() core.GameState {
	return g.state.Snapshot()
}

// Controls returns the raw input adapter hosts feed events into.
func (g *Game) Controls() *Controls {
	return g.controls
}

// Input returns the held intents.
func (g *Game) Input() *core.InputState {
	return g.input
}

// Player returns the player.
func (g *Game) Player() *Player {
	return g.player
}

// Background returns the backdrop.
func (g *Game) Background() *Background {
	return g.bg
}

// Obstacles returns the live obstacles.
func (g *Game) Obstacles() []*Obstacle {
	return g.state.Obstacles
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}
