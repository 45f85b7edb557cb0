package yabreaker

import "github.com/vovakirdan/ya-breaker/internal/core"

// Render draws the board back to front: blocks, paddle, ball, enemy,
// obstacle, decor. It does not clear the surface.
func (g *Game) Render(dst core.Surface) {
	for i := range g.blocks {
		b := &g.blocks[i]
		if b.Visible {
			dst.FillRect(b.X, b.Y, b.W, b.H, g.blockColor)
		}
	}

	p := g.paddle
	dst.FillRect(p.X, p.Y, p.W, p.H, p.Color)

	dst.FillCircle(g.ball.X, g.ball.Y, g.ball.R, g.ballColor)

	for _, m := range g.movers {
		dst.DrawSprite(m.Sprite, m.X, m.Y, m.W, m.H)
	}
}
