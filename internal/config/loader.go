package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ya-breaker/internal/core"
)

// Source names where a configuration was loaded from.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the breaker configuration.
// Search order: customPath -> ~/.yabreaker/configs/yabreaker.yaml -> ./configs/yabreaker.yaml -> embedded default
func Load(customPath string) (BreakerConfig, error) {
	cfg, _, err := LoadWithSource(customPath)
	return cfg, err
}

// LoadWithSource is like Load but also reports which file was used.
func LoadWithSource(customPath string) (BreakerConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, customPath, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("yabreaker.yaml"), filepath.Join("configs", "yabreaker.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultBreakerConfig()
	if err := yaml.Unmarshal(defaultBreakerYAML, &cfg); err != nil {
		return DefaultBreakerConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads a YAML file over the built-in defaults, so partial files are allowed.
func loadFile(path string) (BreakerConfig, error) {
	cfg := DefaultBreakerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".yabreaker", "configs", filename)
}

// Validate checks that the configuration describes a playable board.
func (c BreakerConfig) Validate() error {
	var errs []error

	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		errs = append(errs, fmt.Errorf("surface size must be positive, got %vx%v", c.Surface.Width, c.Surface.Height))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, errors.New("paddle size must be positive"))
	}
	if c.Paddle.Width > c.Surface.Width {
		errs = append(errs, fmt.Errorf("paddle width %v exceeds surface width %v", c.Paddle.Width, c.Surface.Width))
	}
	if c.Paddle.Speed < 0 {
		errs = append(errs, errors.New("paddle speed must not be negative"))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, errors.New("ball radius must be positive"))
	}
	if c.Ball.Speed <= 0 {
		errs = append(errs, errors.New("ball speed must be positive"))
	}
	if c.Blocks.Rows < 0 || c.Blocks.Cols < 0 {
		errs = append(errs, errors.New("block grid dimensions must not be negative"))
	}
	if c.Blocks.Width <= 0 || c.Blocks.Height <= 0 {
		errs = append(errs, errors.New("block size must be positive"))
	}
	if c.Enemy.Size <= 0 || c.Obstacle.Size <= 0 {
		errs = append(errs, errors.New("enemy and obstacle sizes must be positive"))
	}
	if c.Decor.Width <= 0 || c.Decor.Height <= 0 {
		errs = append(errs, errors.New("decor size must be positive"))
	}
	if c.Session.GateEvery < 1 {
		errs = append(errs, fmt.Errorf("session.gate_every must be at least 1, got %d", c.Session.GateEvery))
	}

	colors := map[string]string{
		"paddle.color": c.Paddle.Color,
		"ball.color":   c.Ball.Color,
		"blocks.color": c.Blocks.Color,
	}
	for field, value := range colors {
		if _, err := core.ParseColor(value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}

	return errors.Join(errs...)
}

// WithAssetDir returns a copy whose sprite, video and sound paths are looked up
// in dir by file name.
func (c BreakerConfig) WithAssetDir(dir string) BreakerConfig {
	if dir == "" {
		return c
	}
	rebase := func(p string) string {
		if p == "" {
			return ""
		}
		return filepath.Join(dir, filepath.Base(p))
	}
	c.Enemy.Sprite = rebase(c.Enemy.Sprite)
	c.Obstacle.Sprite = rebase(c.Obstacle.Sprite)
	c.Decor.Video = rebase(c.Decor.Video)
	c.Sounds.PaddleHit = rebase(c.Sounds.PaddleHit)
	c.Sounds.BallLost = rebase(c.Sounds.BallLost)
	c.Sounds.BrickBreak = rebase(c.Sounds.BrickBreak)
	return c
}

// SoundPaths returns the configured audio file for each sound effect.
func (c BreakerConfig) SoundPaths() map[core.SoundID]string {
	return map[core.SoundID]string{
		core.SoundPaddleHit:  c.Sounds.PaddleHit,
		core.SoundBallLost:   c.Sounds.BallLost,
		core.SoundBrickBreak: c.Sounds.BrickBreak,
	}
}

// Marshal renders the configuration as YAML.
func (c BreakerConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return data, nil
}
