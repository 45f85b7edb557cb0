// yabreaker is a single-screen brick breaker with a roaming enemy, a static
// obstacle and a decorative video sprite.
//
// Usage:
//
//	yabreaker play              - Play in the terminal
//	yabreaker window            - Play in a desktop window
//	yabreaker simulate          - Run the autopilot headless and store a report
//	yabreaker runs              - Browse stored simulation reports
//	yabreaker runs --id <n>     - Show one stored report
//	yabreaker config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--config <path>      - Use a custom YAML configuration
//	--assets <dir>       - Look up sprites, video and sounds in dir
//	--mute               - Start with sound switched off
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ya-breaker/internal/config"
	"github.com/vovakirdan/ya-breaker/internal/core"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagAssets   string
	flagMute     bool
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "yabreaker",
	Short: "Ya Breaker - break bricks in your terminal or a window",
	Long: `Ya Breaker is a brick breaker with a roaming enemy, a static obstacle
and a drifting decorative video. Every few lost balls the game pauses
behind a break screen until you retry.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  simulate  - Run the autopilot headless and store a report
  runs      - Browse stored simulation reports
  config    - Print the effective configuration

Examples:
  yabreaker play
  yabreaker window --assets ./media
  yabreaker simulate --ticks 20000 --runs 5
  yabreaker config --config ./my-breaker.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory holding sprites, video and sounds")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound switched off")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. When no log file is set, fallback
// receives the output; the terminal frontend passes io.Discard there so log
// lines never land on the alternate screen.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		if dir := filepath.Dir(flagLogFile); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "yabreaker",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the game configuration and rebases asset paths.
func loadConfig(logger *log.Logger) (config.BreakerConfig, error) {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	cfg = cfg.WithAssetDir(flagAssets)
	logger.Info("config loaded", "source", source, "assets", flagAssets)
	return cfg, nil
}

// runtimeConfig returns the frontend settings from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Muted:    flagMute,
	}
}
