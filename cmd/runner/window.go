package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shadow-runner/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a window and start a run.

Controls:
  ←/→ or A/D          - Move
  ↑/W/Space           - Jump
  Swipe or drag up    - Jump
  Enter/swipe down    - Restart (after game over)
  F or corner button  - Toggle fullscreen

Examples:
  runner window
  runner window --seed 7`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, cleanup, err := newLogger(os.Stderr, "runner")
	if err != nil {
		return err
	}
	defer cleanup()

	cfg := loadConfig(logger)
	rt := runtimeConfig(int(cfg.World.Width), int(cfg.World.Height))
	if err := window.Run(cfg, rt, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
