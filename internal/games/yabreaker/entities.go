// Package yabreaker implements a single-screen brick breaker with a roaming
// enemy, a static obstacle, a decorative video sprite and an interstitial gate
// shown after repeated failures.
package yabreaker

import (
	"github.com/vovakirdan/ya-breaker/internal/core"
)

// Paddle is the player-controlled horizontal bar.
type Paddle struct {
	X, Y  float64 // Top-left corner
	W, H  float64
	Speed float64 // Units per tick
	Color core.Color
}

// Rect returns the paddle bounds.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Move shifts the paddle by its speed for each held direction.
// The position never leaves [0, surfaceW-W].
func (p *Paddle) Move(left, right bool, surfaceW float64) {
	limit := surfaceW - p.W
	if left && p.X > 0 {
		p.X = core.ClampF(p.X-p.Speed, 0, limit)
	}
	if right && p.X < limit {
		p.X = core.ClampF(p.X+p.Speed, 0, limit)
	}
}

// Ball is the moving circle. X, Y is the center.
type Ball struct {
	X, Y   float64
	R      float64 // Radius
	DX, DY float64 // Velocity per tick
}

// Bounds returns the ball's bounding box (center ± radius).
func (b *Ball) Bounds() core.Rect {
	return core.Square(b.X-b.R, b.Y-b.R, b.R*2)
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// Block is a destructible brick. Visible means unbroken.
type Block struct {
	X, Y    float64
	W, H    float64
	Visible bool
}

// Rect returns the block bounds.
func (b *Block) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// MoverKind tags a Mover variant.
type MoverKind int

const (
	MoverEnemy    MoverKind = iota // Roams, deflects the ball
	MoverObstacle                  // Static, deflects the ball
	MoverDecor                     // Roams, ball passes through
)

// String returns a human-readable name for the kind.
func (k MoverKind) String() string {
	switch k {
	case MoverEnemy:
		return "enemy"
	case MoverObstacle:
		return "obstacle"
	case MoverDecor:
		return "decor"
	default:
		return "unknown"
	}
}

// Mover is a sprite with a position, a size and an optional velocity.
// All variants share the edge-bounce behavior; they differ only in whether
// they move and whether they deflect the ball.
type Mover struct {
	Kind   MoverKind
	X, Y   float64
	W, H   float64
	DX, DY float64
	Sprite core.AssetHandle
}

// Rect returns the mover bounds.
func (m *Mover) Rect() core.Rect {
	return core.NewRect(m.X, m.Y, m.W, m.H)
}

// Static reports whether the mover never changes position.
func (m *Mover) Static() bool {
	return m.Kind == MoverObstacle
}

// DeflectsBall reports whether the ball bounces off this mover.
func (m *Mover) DeflectsBall() bool {
	return m.Kind == MoverEnemy || m.Kind == MoverObstacle
}

// Advance moves by velocity, then inverts each velocity component whose
// axis crossed a surface edge. The two axes are checked independently.
func (m *Mover) Advance(surfaceW, surfaceH float64) {
	if m.Static() {
		return
	}

	m.X += m.DX
	m.Y += m.DY

	if m.X < 0 || m.X+m.W > surfaceW {
		m.DX = -m.DX
	}
	if m.Y < 0 || m.Y+m.H > surfaceH {
		m.DY = -m.DY
	}
}
