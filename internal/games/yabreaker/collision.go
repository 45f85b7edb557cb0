package yabreaker

import "github.com/vovakirdan/ya-breaker/internal/core"

// RectOverlap reports whether two rectangles overlap on both axes.
// All four comparisons are strict, so edge contact is not a hit.
func RectOverlap(a, b core.Rect) bool {
	return a.Intersects(b)
}

// PaddleHit reports whether the ball's bounding box overlaps the paddle.
func PaddleHit(ball *Ball, paddle *Paddle) bool {
	return RectOverlap(ball.Bounds(), paddle.Rect())
}

// BlockHit reports whether the ball strikes a block: the ball's center x must
// lie strictly inside the block's horizontal span, and the ball's vertical
// extent must overlap the block's vertical span.
func BlockHit(ball *Ball, block *Block) bool {
	return ball.X > block.X &&
		ball.X < block.X+block.W &&
		ball.Y-ball.R < block.Y+block.H &&
		ball.Y+ball.R > block.Y
}
