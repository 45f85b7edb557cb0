package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ya-breaker/internal/games/yabreaker"
	"github.com/vovakirdan/ya-breaker/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 600x500 window and start the game.

Controls:
  Left/Right (or A/D)  - Move paddle
  R/Enter or click     - Retry (on the break screen)
  M                    - Mute
  C                    - Copy a snapshot of the game state
  V                    - Restore a snapshot from the clipboard
  Q/Esc                - Quit

Examples:
  yabreaker window
  yabreaker window --assets ./media --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	sprites := loadSprites(cfg, logger)
	player := openAudio(cfg, logger)
	defer player.Cleanup()

	game := yabreaker.New(cfg)
	if err := window.Run(game, window.Options{
		Config:  runtimeConfig(0, 0),
		Sound:   player,
		Sprites: sprites,
		Logger:  logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
