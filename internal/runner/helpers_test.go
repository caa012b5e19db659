package runner

import (
	"github.com/vovakirdan/shadow-runner/internal/config"
	"github.com/vovakirdan/shadow-runner/internal/core"
)

// fixedRandom always returns the same sample.
type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

// sequenceRandom returns its samples in order, repeating the last one.
type sequenceRandom struct {
	samples []float64
	next    int
}

func (s *sequenceRandom) Float64() float64 {
	v := s.samples[s.next]
	if s.next < len(s.samples)-1 {
		s.next++
	}
	return v
}

func testConfig() config.RunnerConfig {
	return config.DefaultRunnerConfig()
}

func testRuntime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return cfg
}

// newObstacleAt builds an obstacle with the default size at x, on the floor.
func newObstacleAt(cfg config.RunnerConfig, x float64) *Obstacle {
	s := NewSpawner(cfg, fixedRandom(0), nil)
	o := s.newObstacle()
	o.X = x
	return o
}
