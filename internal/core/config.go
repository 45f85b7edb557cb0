package core

// RuntimeConfig contains host settings passed to a frontend at startup.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters (ignored by the window frontend)
	ScreenH  int // Terminal height in characters (ignored by the window frontend)
	TickRate int // Frames per second driving the frame loop (default 60)
	Muted    bool
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
