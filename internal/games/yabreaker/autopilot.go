package yabreaker

import (
	"math/rand/v2"

	"github.com/vovakirdan/ya-breaker/internal/config"
	"github.com/vovakirdan/ya-breaker/internal/core"
)

// Autopilot steers the paddle toward the ball with a random aim offset.
// A spread of zero tracks the ball center exactly. The offset is re-rolled
// after every paddle hit so rallies do not repeat forever.
type Autopilot struct {
	rng    *rand.Rand
	spread float64
	offset float64
}

// NewAutopilot creates a deterministic autopilot for the given seed.
func NewAutopilot(seed uint64, spread float64) *Autopilot {
	a := &Autopilot{
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		spread: spread,
	}
	a.reroll()
	return a
}

func (a *Autopilot) reroll() {
	if a.spread <= 0 {
		a.offset = 0
		return
	}
	a.offset = (a.rng.Float64()*2 - 1) * a.spread
}

// Input returns the input frame for the next tick.
func (a *Autopilot) Input(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	p := g.Paddle()
	target := g.Ball().X + a.offset
	center := p.X + p.W/2

	switch {
	case target < center-p.Speed/2:
		in.Set(core.ActionLeft)
	case target > center+p.Speed/2:
		in.Set(core.ActionRight)
	}
	return in
}

// Observe feeds the events of the last tick back to the autopilot.
func (a *Autopilot) Observe(events []Event) {
	for _, e := range events {
		if e.Kind == EventPaddleHit {
			a.reroll()
		}
	}
}

// HeadlessOptions controls a headless run.
type HeadlessOptions struct {
	Ticks      int     // Frames to execute, stopped frames included
	RetryDelay int     // Stopped frames before the autopilot presses retry
	Seed       uint64  // Autopilot seed
	Spread     float64 // Autopilot aim spread in units
}

// RunStats summarizes a headless run.
type RunStats struct {
	Seed         uint64
	Frames       int // Frames executed
	Ticks        int // Simulation steps executed
	Fails        int
	Gates        int // Times the interstitial was shown
	Retries      int
	BricksBroken int
	PaddleHits   int
	Bounces      int // Enemy and obstacle deflections
	BlocksLeft   int
}

// RunHeadless plays the game with an autopilot and no frontend.
// Runs with equal options and configuration produce equal stats.
func RunHeadless(cfg config.BreakerConfig, opts HeadlessOptions) RunStats {
	r := newHeadlessRun(cfg, opts)
	for range opts.Ticks {
		r.frame()
	}
	return r.result()
}

// headlessRun is the state of one RunHeadless call.
type headlessRun struct {
	game   *Game
	pilot  *Autopilot
	opts   HeadlessOptions
	stats  RunStats
	waited int // Stopped frames since the interstitial appeared
}

func newHeadlessRun(cfg config.BreakerConfig, opts HeadlessOptions) *headlessRun {
	return &headlessRun{
		game:  New(cfg),
		pilot: NewAutopilot(opts.Seed, opts.Spread),
		opts:  opts,
		stats: RunStats{Seed: opts.Seed},
	}
}

// frame runs one frame. While the interstitial is up the frame only clears;
// once RetryDelay frames have passed the pilot retries and plays that same
// frame with its own input.
func (r *headlessRun) frame() {
	g := r.game
	r.stats.Frames++

	if g.InterstitialVisible() {
		r.waited++
		if r.waited <= r.opts.RetryDelay {
			r.stats.record(g.Frame(core.NopSurface{}, core.NewInputFrame()))
			return
		}
		g.Retry()
		r.stats.Retries++
		r.waited = 0
	}

	events := g.Frame(core.NopSurface{}, r.pilot.Input(g))
	r.pilot.Observe(events)
	r.stats.record(events)
}

func (r *headlessRun) result() RunStats {
	stats := r.stats
	st := r.game.State()
	stats.Ticks = r.game.Tick()
	stats.Fails = st.Fails
	stats.BlocksLeft = st.BlocksLeft
	return stats
}

func (s *RunStats) record(events []Event) {
	for _, e := range events {
		switch e.Kind {
		case EventBrickBreak:
			s.BricksBroken++
		case EventPaddleHit:
			s.PaddleHits++
		case EventEnemyBounce, EventObstacleBounce:
			s.Bounces++
		case EventInterstitialShown:
			s.Gates++
		}
	}
}
