package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ya-breaker/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would use as YAML, after the search
order and --assets have been applied. The output is a valid config file.

Search order:
  --config <path>
  ~/.yabreaker/configs/yabreaker.yaml
  ./configs/yabreaker.yaml
  built-in defaults

With --defaults the commented built-in file is printed instead, as a
starting point for a custom configuration.

Examples:
  yabreaker config
  yabreaker config --defaults > ~/.yabreaker/configs/yabreaker.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg = cfg.WithAssetDir(flagAssets)
	logger.Debug("config loaded", "source", source)

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	fmt.Printf("# source: %s\n", source)
	_, err = os.Stdout.Write(data)
	return err
}
