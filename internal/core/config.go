package core

// RuntimeConfig contains configuration passed to the game by its host.
type RuntimeConfig struct {
	ScreenW  int   // Host surface width (terminal cells or window pixels)
	ScreenH  int   // Host surface height
	TickRate int   // Frame pump rate in ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic spawning
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the externally visible state of a run.
type GameState struct {
	Score    int  // Obstacles retired this run
	GameOver bool // Whether the run has ended
}

// Signal tells the host scheduler whether to request another tick.
type Signal int

const (
	Continue Signal = iota // Schedule the next tick
	Halt                   // Stop scheduling until restart
)

// String returns a human-readable name for the signal.
func (s Signal) String() string {
	if s == Halt {
		return "Halt"
	}
	return "Continue"
}
