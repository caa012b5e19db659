package runner

import "github.com/vovakirdan/shadow-runner/internal/core"

// State is the mutable state of one run, shared by the components of a tick.
type State struct {
	Score     int         // Retired obstacles this run
	GameOver  bool        // Set by a collision, cleared only by restart
	Obstacles []*Obstacle // Live obstacles, never retired across ticks
}

// Reset returns the state to the start of a run.
func (s *State) Reset() {
	s.Score = 0
	s.GameOver = false
	clear(s.Obstacles)
	s.Obstacles = s.Obstacles[:0]
}

// Snapshot returns the externally visible part of the state.
func (s *State) Snapshot() core.GameState {
	return core.GameState{
		Score:    s.Score,
		GameOver: s.GameOver,
	}
}

// sweep removes retired obstacles in place.
func (s *State) sweep() {
	live := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		if !o.Retired {
			live = append(live, o)
		}
	}
	clear(s.Obstacles[len(live):])
	s.Obstacles = live
}
