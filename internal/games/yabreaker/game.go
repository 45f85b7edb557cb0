package yabreaker

import (
	"github.com/vovakirdan/ya-breaker/internal/config"
	"github.com/vovakirdan/ya-breaker/internal/core"
)

// Asset handles used by the render pass.
const (
	AssetEnemy    core.AssetHandle = "enemy"
	AssetObstacle core.AssetHandle = "obstacle"
	AssetDecor    core.AssetHandle = "decor"
)

// State is a summary of the game for frontends and reports.
type State struct {
	Fails        int
	Stopped      bool
	BlocksLeft   int
	Interstitial bool
}

// Game owns the whole simulation state. It is not safe for concurrent use:
// frontends call Frame and Retry from a single goroutine.
type Game struct {
	cfg config.BreakerConfig

	width  float64
	height float64

	paddle *Paddle
	ball   *Ball
	blocks []Block

	enemy    *Mover
	obstacle *Mover
	decor    *Mover
	movers   []*Mover // enemy, obstacle, decor: the order collisions are resolved in

	session *Session
	tick    int

	blockColor core.Color
	ballColor  core.Color
}

// New creates a game with every entity at its initial position.
func New(cfg config.BreakerConfig) *Game {
	g := &Game{
		cfg:        cfg,
		width:      cfg.Surface.Width,
		height:     cfg.Surface.Height,
		session:    NewSession(cfg.Session.GateEvery),
		blockColor: core.ParseColorOr(cfg.Blocks.Color, core.ColorOrange),
		ballColor:  core.ParseColorOr(cfg.Ball.Color, core.ColorWhite),
	}

	g.paddle = &Paddle{
		X:     g.width/2 - cfg.Paddle.Width/2,
		Y:     g.height - cfg.Paddle.BottomOffset,
		W:     cfg.Paddle.Width,
		H:     cfg.Paddle.Height,
		Speed: cfg.Paddle.Speed,
		Color: core.ParseColorOr(cfg.Paddle.Color, core.ColorWhite),
	}

	g.ball = &Ball{
		X:  g.width / 2,
		Y:  g.height - cfg.Ball.RestartOffset,
		R:  cfg.Ball.Radius,
		DX: cfg.Ball.Speed,
		DY: -cfg.Ball.Speed,
	}

	g.enemy = &Mover{
		Kind:   MoverEnemy,
		X:      cfg.Enemy.X,
		Y:      cfg.Enemy.Y,
		W:      cfg.Enemy.Size,
		H:      cfg.Enemy.Size,
		DX:     cfg.Enemy.DX,
		DY:     cfg.Enemy.DY,
		Sprite: AssetEnemy,
	}
	g.obstacle = &Mover{
		Kind:   MoverObstacle,
		X:      cfg.Obstacle.X,
		Y:      cfg.Obstacle.Y,
		W:      cfg.Obstacle.Size,
		H:      cfg.Obstacle.Size,
		Sprite: AssetObstacle,
	}
	g.decor = &Mover{
		Kind:   MoverDecor,
		X:      cfg.Decor.X,
		Y:      cfg.Decor.Y,
		W:      cfg.Decor.Width,
		H:      cfg.Decor.Height,
		DX:     cfg.Decor.DX,
		DY:     cfg.Decor.DY,
		Sprite: AssetDecor,
	}
	g.movers = []*Mover{g.enemy, g.obstacle, g.decor}

	g.blocks = NewBlockGrid(cfg.Blocks)
	return g
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Ya Breaker"
}

// SurfaceSize returns the drawing surface size in units.
func (g *Game) SurfaceSize() (float64, float64) {
	return g.width, g.height
}

// Tick returns the number of simulation steps executed.
func (g *Game) Tick() int {
	return g.tick
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return *g.ball
}

// Paddle returns a copy of the paddle.
func (g *Game) Paddle() Paddle {
	return *g.paddle
}

// InterstitialVisible reports whether the external overlay should be shown.
func (g *Game) InterstitialVisible() bool {
	return g.session.Stopped()
}

// State returns the current game summary.
func (g *Game) State() State {
	return State{
		Fails:        g.session.Fails(),
		Stopped:      g.session.Stopped(),
		BlocksLeft:   CountVisible(g.blocks),
		Interstitial: g.session.Stopped(),
	}
}

// Frame runs one tick of the frame loop: clear the surface, and unless the
// session is stopped, render the board and then advance the simulation.
// The caller schedules the next frame.
func (g *Game) Frame(dst core.Surface, in core.InputFrame) []Event {
	dst.Clear()
	if g.session.Stopped() {
		return nil
	}
	g.Render(dst)
	return g.Step(in)
}

// Retry hides the interstitial, resumes the session, regenerates the block
// grid and puts the ball back at its restart position. The fail counter and
// the movers are left alone. It works whether or not the session is stopped.
func (g *Game) Retry() []Event {
	wasStopped := g.session.Stopped()
	g.session.Resume()
	g.resetBoard()

	if !wasStopped {
		return nil
	}
	return []Event{{Kind: EventInterstitialHidden, Tick: g.tick, Fails: g.session.Fails()}}
}

// resetBoard regenerates the blocks and repositions the ball.
func (g *Game) resetBoard() {
	g.blocks = NewBlockGrid(g.cfg.Blocks)
	g.ball.X = g.width / 2
	g.ball.Y = g.height - g.cfg.Ball.RestartOffset
	g.ball.DY = -g.cfg.Ball.Speed
}
