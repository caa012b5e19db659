// runner is an endless runner: jump over enemies scrolling in from the
// right, and the run ends on the first hit.
//
// Usage:
//
//	runner play             - Play in this terminal
//	runner window           - Play in a desktop window
//	runner serve            - Start SSH server for remote play
//	runner config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible spawns
//	--config <path>  - Load a custom runner YAML
//	--log <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shadow-runner/internal/config"
	"github.com/vovakirdan/shadow-runner/internal/core"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Shadow Runner - an endless runner for terminals and windows",
	Long: `Shadow Runner is an endless side-scroller. Run, jump over the enemies
coming from the right, and score a point for every one that passes.

Available commands:
  play     - Play in this terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  runner play
  runner play --seed 42
  runner window --config ./runner.yaml
  runner serve --ssh :2222
  runner config --dump > runner.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the host settings from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newLogger writes to the --log file if given, otherwise to fallback.
// The returned func closes the file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	cleanup := func() {}
	if flagLogPath != "" {
		f, openErr := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		cleanup = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, cleanup, nil
}

// loadConfig loads the runner config. An unusable config is reported and
// replaced by the defaults.
func loadConfig(logger *log.Logger) config.RunnerConfig {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
		return config.DefaultRunnerConfig()
	}
	return cfg
}
