package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ya-breaker/internal/assets"
	"github.com/vovakirdan/ya-breaker/internal/audio"
	"github.com/vovakirdan/ya-breaker/internal/config"
	"github.com/vovakirdan/ya-breaker/internal/core"
	"github.com/vovakirdan/ya-breaker/internal/games/yabreaker"
)

// spriteSources maps each sprite handle to its configured file.
func spriteSources(cfg config.BreakerConfig) map[core.AssetHandle]assets.Source {
	return map[core.AssetHandle]assets.Source{
		yabreaker.AssetEnemy:    {Path: cfg.Enemy.Sprite},
		yabreaker.AssetObstacle: {Path: cfg.Obstacle.Sprite},
		yabreaker.AssetDecor:    {Path: cfg.Decor.Video, FPS: cfg.Decor.FPS},
	}
}

// loadSprites pre-loads every sprite. Missing files are logged and the game
// runs without them.
func loadSprites(cfg config.BreakerConfig, logger *log.Logger) *assets.Library {
	lib := assets.NewLibrary()
	if err := lib.Load(spriteSources(cfg)); err != nil {
		logger.Warn("some sprites could not be loaded", "error", err)
	}
	logger.Debug("sprites loaded", "handles", lib.Handles())
	return lib
}

// openAudio starts the sound player. The returned player is always usable;
// if the speaker cannot open it simply stays silent.
func openAudio(cfg config.BreakerConfig, logger *log.Logger) *audio.Player {
	player := audio.NewPlayer(logger, flagMute)
	if err := player.Initialize(cfg.SoundPaths()); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	return player
}
