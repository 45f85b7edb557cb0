package yabreaker

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Snapshot contains the complete simulation state for determinism checks and
// debug dumps. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick    int  `yaml:"tick"`
	Fails   int  `yaml:"fails"`
	Stopped bool `yaml:"stopped"`

	PaddleX float64 `yaml:"paddle_x"`

	BallX  float64 `yaml:"ball_x"`
	BallY  float64 `yaml:"ball_y"`
	BallDX float64 `yaml:"ball_dx"`
	BallDY float64 `yaml:"ball_dy"`

	EnemyX  float64 `yaml:"enemy_x"`
	EnemyY  float64 `yaml:"enemy_y"`
	EnemyDX float64 `yaml:"enemy_dx"`
	EnemyDY float64 `yaml:"enemy_dy"`

	DecorX  float64 `yaml:"decor_x"`
	DecorY  float64 `yaml:"decor_y"`
	DecorDX float64 `yaml:"decor_dx"`
	DecorDY float64 `yaml:"decor_dy"`

	// Block visibility in grid order, 1 = visible
	BlockData []int `yaml:"blocks,flow"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	blockData := make([]int, len(g.blocks))
	for i := range g.blocks {
		if g.blocks[i].Visible {
			blockData[i] = 1
		}
	}

	return Snapshot{
		Tick:    g.tick,
		Fails:   g.session.fails,
		Stopped: g.session.stopped,

		PaddleX: g.paddle.X,

		BallX:  g.ball.X,
		BallY:  g.ball.Y,
		BallDX: g.ball.DX,
		BallDY: g.ball.DY,

		EnemyX:  g.enemy.X,
		EnemyY:  g.enemy.Y,
		EnemyDX: g.enemy.DX,
		EnemyDY: g.enemy.DY,

		DecorX:  g.decor.X,
		DecorY:  g.decor.Y,
		DecorDX: g.decor.DX,
		DecorDY: g.decor.DY,

		BlockData: blockData,
	}
}

// ApplySnapshot restores game state from a snapshot taken on a game with the
// same configuration.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tick = snap.Tick
	g.session.fails = snap.Fails
	g.session.stopped = snap.Stopped

	g.paddle.X = snap.PaddleX

	g.ball.X, g.ball.Y = snap.BallX, snap.BallY
	g.ball.DX, g.ball.DY = snap.BallDX, snap.BallDY

	g.enemy.X, g.enemy.Y = snap.EnemyX, snap.EnemyY
	g.enemy.DX, g.enemy.DY = snap.EnemyDX, snap.EnemyDY

	g.decor.X, g.decor.Y = snap.DecorX, snap.DecorY
	g.decor.DX, g.decor.DY = snap.DecorDX, snap.DecorDY

	// Restore block states
	g.blocks = NewBlockGrid(g.cfg.Blocks)
	if len(snap.BlockData) == len(g.blocks) {
		for i := range g.blocks {
			g.blocks[i].Visible = snap.BlockData[i] == 1
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Fails) //#nosec G115 -- hash computation
	if snap.Stopped {
		h = h*31 + 1
	}

	floats := []float64{
		snap.PaddleX,
		snap.BallX, snap.BallY, snap.BallDX, snap.BallDY,
		snap.EnemyX, snap.EnemyY, snap.EnemyDX, snap.EnemyDY,
		snap.DecorX, snap.DecorY, snap.DecorDX, snap.DecorDY,
	}
	for _, f := range floats {
		h = h*31 + math.Float64bits(f)
	}

	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

// YAML renders the snapshot for a human-readable dump.
func (snap *Snapshot) YAML() (string, error) {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	return string(data), nil
}

// ParseSnapshot reads a snapshot written by YAML.
func ParseSnapshot(data string) (Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal([]byte(data), &snap); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: %w", err)
	}
	return snap, nil
}
