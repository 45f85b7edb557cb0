package core

// AssetHandle is a stable name for a pre-loaded image or video asset.
type AssetHandle string

// SoundID identifies a sound effect for fire-and-forget playback.
type SoundID string

// Sound effects triggered by the simulation.
const (
	SoundPaddleHit  SoundID = "paddle-hit"
	SoundBallLost   SoundID = "ball-lost"
	SoundBrickBreak SoundID = "brick-break"
)

// SoundPlayer starts a sound and returns immediately.
// Implementations must swallow playback failures.
type SoundPlayer interface {
	Play(id SoundID)
}

// NopPlayer is a SoundPlayer that plays nothing.
type NopPlayer struct{}

// Play does nothing.
func (NopPlayer) Play(SoundID) {}

// Surface is the 2D drawing target the render pass issues commands to.
// Coordinates are surface units with the origin at the top-left, y down.
// Drawing a sprite whose asset is unavailable must silently draw nothing.
type Surface interface {
	Clear()
	FillRect(x, y, w, h float64, c Color)
	FillCircle(cx, cy, r float64, c Color)
	DrawSprite(h AssetHandle, x, y, w, hgt float64)
}

// NopSurface discards every draw command. Used for headless runs.
type NopSurface struct{}

func (NopSurface) Clear() {}
func (NopSurface) FillRect(_, _, _, _ float64, _ Color) {}
func (NopSurface) FillCircle(_, _, _ float64, _ Color) {}
func (NopSurface) DrawSprite(_ AssetHandle, _, _, _, _ float64) {}

// DrawOp identifies the kind of a recorded draw command.
type DrawOp int

const (
	OpClear DrawOp = iota
	OpFillRect
	OpFillCircle
	OpSprite
)

// String returns a human-readable name for the op.
func (o DrawOp) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpFillRect:
		return "rect"
	case OpFillCircle:
		return "circle"
	case OpSprite:
		return "sprite"
	default:
		return "unknown"
	}
}

// DrawCommand is one recorded call on a Surface.
// For circles X, Y is the center and W is the radius.
type DrawCommand struct {
	Op     DrawOp
	X, Y   float64
	W, H   float64
	Color  Color
	Handle AssetHandle
}

// Recorder is a Surface that stores commands for later replay.
// The window frontend records during Update and replays during Draw.
type Recorder struct {
	Commands []DrawCommand
}

// Clear drops previously recorded commands and records a clear.
func (r *Recorder) Clear() {
	r.Commands = append(r.Commands[:0], DrawCommand{Op: OpClear})
}

func (r *Recorder) FillRect(x, y, w, h float64, c Color) {
	r.Commands = append(r.Commands, DrawCommand{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c Color) {
	r.Commands = append(r.Commands, DrawCommand{Op: OpFillCircle, X: cx, Y: cy, W: rad, Color: c})
}

func (r *Recorder) DrawSprite(h AssetHandle, x, y, w, hgt float64) {
	r.Commands = append(r.Commands, DrawCommand{Op: OpSprite, X: x, Y: y, W: w, H: hgt, Handle: h})
}

// Replay issues every recorded command on dst in order.
func (r *Recorder) Replay(dst Surface) {
	for _, c := range r.Commands {
		switch c.Op {
		case OpClear:
			dst.Clear()
		case OpFillRect:
			dst.FillRect(c.X, c.Y, c.W, c.H, c.Color)
		case OpFillCircle:
			dst.FillCircle(c.X, c.Y, c.W, c.Color)
		case OpSprite:
			dst.DrawSprite(c.Handle, c.X, c.Y, c.W, c.H)
		}
	}
}
