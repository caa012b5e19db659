// Package config provides YAML-based configuration loading for the runner.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all tunable constants of the runner.
type RunnerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Background BackgroundConfig `yaml:"background"`
	Hitbox     HitboxConfig     `yaml:"hitbox"`
	Input      InputConfig      `yaml:"input"`
}

// WorldConfig defines the logical surface size in pixels.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player sprite and physics.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	StartX       float64 `yaml:"start_x"`      // X after restart
	Speed        float64 `yaml:"speed"`        // Horizontal px per tick while a move key is held
	JumpImpulse  float64 `yaml:"jump_impulse"` // Subtracted from vy on a grounded jump
	Gravity      float64 `yaml:"gravity"`      // Added to vy per airborne tick
	FPS          float64 `yaml:"fps"`          // Sprite animation rate
	GroundFrames int     `yaml:"ground_frames"`
	AirFrames    int     `yaml:"air_frames"`
}

// ObstacleConfig defines obstacle sprites, movement and spawn timing.
type ObstacleConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Speed            float64 `yaml:"speed"` // px per tick, not scaled by delta time
	FPS              float64 `yaml:"fps"`
	Frames           int     `yaml:"frames"`
	MinIntervalMs    float64 `yaml:"min_interval_ms"`
	IntervalJitterMs float64 `yaml:"interval_jitter_ms"`
}

// BackgroundConfig defines the scrolling backdrop tile.
type BackgroundConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // px per tick, not scaled by delta time
}

// HitboxConfig tunes the circle collision test.
type HitboxConfig struct {
	ObstacleOffsetX float64 `yaml:"obstacle_offset_x"`
	PlayerOffsetY   float64 `yaml:"player_offset_y"`
	RadiusDivisor   float64 `yaml:"radius_divisor"` // Radius = width / divisor
}

// InputConfig defines touch and key-hold handling.
type InputConfig struct {
	SwipeThreshold float64 `yaml:"swipe_threshold"` // Logical px
	HoldTimeoutMs  int     `yaml:"hold_timeout_ms"` // Terminal hosts only
}

// Validate checks that the config describes a playable world.
func (c RunnerConfig) Validate() error {
	var errs []error

	positive := []struct {
		name string
		val  float64
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.fps", c.Player.FPS},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.height", c.Obstacles.Height},
		{"obstacles.fps", c.Obstacles.FPS},
		{"background.width", c.Background.Width},
		{"background.height", c.Background.Height},
		{"hitbox.radius_divisor", c.Hitbox.RadiusDivisor},
		{"input.swipe_threshold", c.Input.SwipeThreshold},
	}
	for _, p := range positive {
		if p.val <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", p.name, p.val))
		}
	}

	if c.Player.GroundFrames < 0 || c.Player.AirFrames < 0 || c.Obstacles.Frames < 0 {
		errs = append(errs, errors.New("frame counts must not be negative"))
	}
	if c.Player.Width > c.World.Width || c.Player.Height > c.World.Height {
		errs = append(errs, errors.New("player does not fit in the world"))
	}
	if c.Obstacles.MinIntervalMs < 0 || c.Obstacles.IntervalJitterMs < 0 {
		errs = append(errs, errors.New("spawn interval must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}
