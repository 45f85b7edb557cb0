package config

import (
	_ "embed"
)

//go:embed defaults/yabreaker.yaml
var defaultBreakerYAML []byte

// DefaultBreakerConfig returns the built-in configuration.
// It mirrors defaults/yabreaker.yaml and is used when the embedded file cannot be parsed.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Surface: SurfaceConfig{
			Width:  600,
			Height: 500,
		},
		Paddle: PaddleConfig{
			Width:        80,
			Height:       15,
			Speed:        7,
			BottomOffset: 30,
			Color:        "#ffffff",
		},
		Ball: BallConfig{
			Radius:        10,
			Speed:         4,
			RestartOffset: 50,
			Color:         "#ffffff",
		},
		Blocks: BlocksConfig{
			Rows:    5,
			Cols:    8,
			Width:   60,
			Height:  20,
			Gap:     10,
			OriginX: 20,
			OriginY: 20,
			Color:   "orange",
		},
		Enemy: EnemyConfig{
			X:      100,
			Y:      100,
			Size:   40,
			DX:     3,
			DY:     3,
			Sprite: "assets/Y.png",
		},
		Obstacle: ObstacleConfig{
			X:      350,
			Y:      50,
			Size:   50,
			Sprite: "assets/Jama.png",
		},
		Decor: DecorConfig{
			X:      200,
			Y:      200,
			Width:  250,
			Height: 175,
			DX:     2,
			DY:     2,
			Video:  "assets/Ket.gif",
			FPS:    30,
		},
		Session: SessionConfig{
			GateEvery: 10,
		},
		Sounds: SoundsConfig{
			PaddleHit:  "assets/AA.mp3",
			BallLost:   "assets/Fail.mp3",
			BrickBreak: "assets/Pinpon.mp3",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakerYAML
}
