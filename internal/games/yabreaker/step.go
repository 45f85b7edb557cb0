package yabreaker

import (
	"math"

	"github.com/vovakirdan/ya-breaker/internal/core"
)

// Step advances the simulation by one tick and returns the events it emitted.
// It does nothing while the session is stopped.
//
// The order below is observable: the paddle moves before the paddle check,
// and a gating fail ends the tick before blocks or movers are touched.
func (g *Game) Step(in core.InputFrame) []Event {
	if g.session.Stopped() {
		return nil
	}

	g.tick++
	var events []Event
	emit := func(kind EventKind) {
		events = append(events, Event{Kind: kind, Tick: g.tick, Fails: g.session.Fails()})
	}

	// Paddle
	g.paddle.Move(in.Has(core.ActionLeft), in.Has(core.ActionRight), g.width)

	// Ball and walls. The bottom edge is handled by the fail check.
	ball := g.ball
	ball.Move()
	if ball.X-ball.R < 0 || ball.X+ball.R > g.width {
		ball.BounceX()
	}
	if ball.Y-ball.R < 0 {
		ball.BounceY()
	}

	if PaddleHit(ball, g.paddle) {
		ball.DY = -math.Abs(ball.DY)
		ball.Y = g.paddle.Y - ball.R
		emit(EventPaddleHit)
	}

	// Fail
	if ball.Y-ball.R > g.height {
		gated := g.session.RecordFail()
		emit(EventBallLost)
		if gated {
			emit(EventInterstitialShown)
			return events
		}
		g.resetBoard()
		emit(EventRoundReset)
	}

	// Every overlapping block flips dy on its own; with two hits the flips cancel.
	for i := range g.blocks {
		b := &g.blocks[i]
		if b.Visible && BlockHit(ball, b) {
			ball.BounceY()
			b.Visible = false
			emit(EventBrickBreak)
		}
	}

	for _, m := range g.movers {
		m.Advance(g.width, g.height)
		if m.DeflectsBall() && RectOverlap(ball.Bounds(), m.Rect()) {
			ball.BounceY()
			if m.Kind == MoverEnemy {
				emit(EventEnemyBounce)
			} else {
				emit(EventObstacleBounce)
			}
		}
	}

	return events
}
