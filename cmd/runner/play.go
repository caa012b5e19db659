package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shadow-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  ←/→ or A/D        - Move
  ↑/W/Space         - Jump
  Mouse drag up     - Jump (swipe)
  Enter/drag down   - Restart (after game over)
  F                 - Toggle fullscreen
  Q/Ctrl+C          - Quit

Terminals report no key releases, so a key counts as held while it
auto-repeats (see input.hold_timeout_ms in the config).

Examples:
  runner play
  runner play --fps 30
  runner play --config ./runner.yaml --log ./runner.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Logging to the terminal would corrupt the display.
	logger, cleanup, err := newLogger(io.Discard, "runner")
	if err != nil {
		return err
	}
	defer cleanup()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := loadConfig(logger)
	if err := tui.Run(cfg, runtimeConfig(width, height), logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
