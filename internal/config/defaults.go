package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:  800,
			Height: 720,
		},
		Player: PlayerConfig{
			Width:        200,
			Height:       200,
			StartX:       100,
			Speed:        5,
			JumpImpulse:  32,
			Gravity:      1,
			FPS:          20,
			GroundFrames: 8,
			AirFrames:    5,
		},
		Obstacles: ObstacleConfig{
			Width:            160,
			Height:           119,
			Speed:            8,
			FPS:              20,
			Frames:           5,
			MinIntervalMs:    1500,
			IntervalJitterMs: 1000,
		},
		Background: BackgroundConfig{
			Width:  2400,
			Height: 720,
			Speed:  20,
		},
		Hitbox: HitboxConfig{
			ObstacleOffsetX: -30,
			PlayerOffsetY:   20,
			RadiusDivisor:   3,
		},
		Input: InputConfig{
			SwipeThreshold: 30,
			HoldTimeoutMs:  300,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
