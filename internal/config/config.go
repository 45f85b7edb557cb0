// Package config provides YAML-based configuration loading for the breaker game.
package config

// BreakerConfig contains all configuration for the breaker game.
type BreakerConfig struct {
	Surface  SurfaceConfig  `yaml:"surface"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Blocks   BlocksConfig   `yaml:"blocks"`
	Enemy    EnemyConfig    `yaml:"enemy"`
	Obstacle ObstacleConfig `yaml:"obstacle"`
	Decor    DecorConfig    `yaml:"decor"`
	Session  SessionConfig  `yaml:"session"`
	Sounds   SoundsConfig   `yaml:"sounds"`
}

// SurfaceConfig defines the drawing surface size in units.
type SurfaceConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the player paddle.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the surface bottom to the paddle top
	Color        string  `yaml:"color"`
}

// BallConfig defines the ball and its restart position.
type BallConfig struct {
	Radius        float64 `yaml:"radius"`
	Speed         float64 `yaml:"speed"`          // Magnitude of each velocity component
	RestartOffset float64 `yaml:"restart_offset"` // Restart y is surface height minus this
	Color         string  `yaml:"color"`
}

// BlocksConfig defines the brick grid layout.
type BlocksConfig struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Gap     float64 `yaml:"gap"`
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
	Color   string  `yaml:"color"`
}

// EnemyConfig defines the roaming enemy sprite.
type EnemyConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Size   float64 `yaml:"size"`
	DX     float64 `yaml:"dx"`
	DY     float64 `yaml:"dy"`
	Sprite string  `yaml:"sprite"` // Image path
}

// ObstacleConfig defines the static obstacle sprite.
type ObstacleConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Size   float64 `yaml:"size"`
	Sprite string  `yaml:"sprite"`
}

// DecorConfig defines the decorative video sprite.
type DecorConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	DX     float64 `yaml:"dx"`
	DY     float64 `yaml:"dy"`
	Video  string  `yaml:"video"` // Animated GIF or a directory of PNG frames
	FPS    int     `yaml:"fps"`   // Frame rate for frame directories
}

// SessionConfig defines the interstitial gate.
type SessionConfig struct {
	GateEvery int `yaml:"gate_every"` // Show the interstitial every N fails
}

// SoundsConfig maps each sound effect to an audio file.
// Missing files fall back to synthesized tones.
type SoundsConfig struct {
	PaddleHit  string `yaml:"paddle_hit"`
	BallLost   string `yaml:"ball_lost"`
	BrickBreak string `yaml:"brick_break"`
}
