package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shadow-runner/internal/config"
)

var flagDump bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the runner configuration as YAML.

Without flags, prints the config that play, window and serve would use,
after the search order: --config, ~/.runner/configs/runner.yaml,
./configs/runner.yaml, built-in defaults.

Examples:
  runner config
  runner config --config ./runner.yaml
  runner config --dump > ~/.runner/configs/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the built-in default config with comments")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDump {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
