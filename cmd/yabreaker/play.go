package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ya-breaker/internal/games/yabreaker"
	"github.com/vovakirdan/ya-breaker/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal. The 600x500 play surface is scaled
down to the terminal size.

Controls:
  Left/A/H   - Move paddle left
  Right/D/L  - Move paddle right
  R/Enter    - Retry (on the break screen)
  M          - Mute
  Q/Esc      - Quit

Logs are discarded unless --log-file is set.

Examples:
  yabreaker play
  yabreaker play --fps 30 --mute
  yabreaker play --log-file ./yabreaker.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sprites := loadSprites(cfg, logger)
	player := openAudio(cfg, logger)
	defer player.Cleanup()

	game := yabreaker.New(cfg)
	if err := tui.Run(game, tui.Options{
		Config:  runtimeConfig(width, height),
		Sound:   player,
		Sprites: sprites,
		Logger:  logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
