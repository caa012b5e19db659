package runner

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shadow-runner/internal/config"
)

// Obstacle is an enemy running in from the right edge.
type Obstacle struct {
	Actor
	Speed   float64 // px per tick
	Retired bool    // Fully off-screen; removed at end of tick
}

// Update animates and moves the obstacle. It returns true on the tick the
// obstacle leaves the screen.
func (o *Obstacle) Update(deltaMs float64) bool {
	o.Anim.Advance(deltaMs)
	o.X -= o.Speed

	if !o.Retired && o.X < -o.Width {
		o.Retired = true
		return true
	}
	return false
}

// RandomSource provides uniform samples in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Spawner creates obstacles at randomized intervals and retires them once
// they scroll off the left edge.
type Spawner struct {
	cfg    config.ObstacleConfig
	gameW  float64
	gameH  float64
	timer  float64 // ms since the last spawn
	rng    RandomSource
	logger *log.Logger
}

// NewSpawner creates a spawner for a world of the given config.
// A nil logger discards output.
func NewSpawner(cfg config.RunnerConfig, rng RandomSource, logger *log.Logger) *Spawner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Spawner{
		cfg:    cfg.Obstacles,
		gameW:  cfg.World.Width,
		gameH:  cfg.World.Height,
		rng:    rng,
		logger: logger,
	}
}

// Reset restarts the spawn timer.
func (s *Spawner) Reset() {
	s.timer = 0
}

// Timer returns the ms accumulated toward the next spawn.
func (s *Spawner) Timer() float64 {
	return s.timer
}

// Tick spawns if due, then draws and updates every obstacle, retiring the
// ones that left the screen. Retired obstacles are gone when Tick returns.
func (s *Spawner) Tick(deltaMs float64, st *State, dst Surface) {
	s.spawnDue(deltaMs, st)

	for _, o := range st.Obstacles {
		o.Draw(dst)
		if o.Update(deltaMs) {
			st.Score++
			s.logger.Debug("obstacle retired", "score", st.Score)
		}
	}

	st.sweep()
}

// spawnDue checks the timer against an interval drawn fresh on every call,
// so the threshold moves from tick to tick until a spawn happens.
func (s *Spawner) spawnDue(deltaMs float64, st *State) bool {
	interval := s.cfg.MinIntervalMs + s.rng.Float64()*s.cfg.IntervalJitterMs
	if s.timer > interval {
		st.Obstacles = append(st.Obstacles, s.newObstacle())
		s.logger.Debug("obstacle spawned", "after_ms", s.timer, "live", len(st.Obstacles))
		s.timer = 0
		return true
	}
	s.timer += deltaMs
	return false
}

// newObstacle places a fresh obstacle on the floor at the right edge.
func (s *Spawner) newObstacle() *Obstacle {
	return &Obstacle{
		Actor: Actor{
			X:      s.gameW - s.cfg.Width,
			Y:      s.gameH - s.cfg.Height,
			Width:  s.cfg.Width,
			Height: s.cfg.Height,
			Sheet:  SheetObstacle,
			Anim:   NewAnimation(s.cfg.FPS, s.cfg.Frames, 0),
		},
		Speed: s.cfg.Speed,
	}
}
