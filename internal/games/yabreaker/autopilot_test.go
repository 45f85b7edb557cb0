package yabreaker

import (
	"testing"

	"github.com/vovakirdan/ya-breaker/internal/config"
	"github.com/vovakirdan/ya-breaker/internal/core"
)

func TestAutopilotTracksBall(t *testing.T) {
	tests := []struct {
		name  string
		ballX float64
		want  core.Action
	}{
		{"ball left of paddle", 100, core.ActionLeft},
		{"ball right of paddle", 500, core.ActionRight},
		{"ball over paddle", 300, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame()
			g.ball.X = tc.ballX
			in := NewAutopilot(1, 0).Input(g)

			left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
			switch tc.want {
			case core.ActionLeft:
				if !left || right {
					t.Errorf("left = %v right = %v, want left", left, right)
				}
			case core.ActionRight:
				if left || !right {
					t.Errorf("left = %v right = %v, want right", left, right)
				}
			default:
				if left || right {
					t.Errorf("left = %v right = %v, want idle", left, right)
				}
			}
		})
	}
}

func TestAutopilotRerollsOnPaddleHit(t *testing.T) {
	a := NewAutopilot(7, 30)
	first := a.offset
	if first < -30 || first > 30 {
		t.Fatalf("offset %v outside spread", first)
	}

	a.Observe([]Event{{Kind: EventBrickBreak}})
	if a.offset != first {
		t.Error("offset changed without a paddle hit")
	}

	a.Observe([]Event{{Kind: EventPaddleHit}})
	if a.offset == first {
		t.Error("offset not re-rolled after paddle hit")
	}
}

func TestRunHeadlessDeterministic(t *testing.T) {
	cfg := config.DefaultBreakerConfig()
	opts := HeadlessOptions{Ticks: 5000, RetryDelay: 30, Seed: 42, Spread: 45}

	a := RunHeadless(cfg, opts)
	b := RunHeadless(cfg, opts)
	if a != b {
		t.Errorf("runs differ:\n%+v\n%+v", a, b)
	}
}

func TestRunHeadlessStats(t *testing.T) {
	cfg := config.DefaultBreakerConfig()
	stats := RunHeadless(cfg, HeadlessOptions{Ticks: 8000, RetryDelay: 10, Seed: 3, Spread: 60})

	if stats.Frames != 8000 {
		t.Errorf("Frames = %d, want 8000", stats.Frames)
	}
	if stats.Ticks > stats.Frames {
		t.Errorf("Ticks = %d exceeds Frames = %d", stats.Ticks, stats.Frames)
	}
	if stats.Gates != stats.Fails/10 {
		t.Errorf("Gates = %d, want Fails/10 = %d", stats.Gates, stats.Fails/10)
	}
	if stats.Retries != stats.Gates && stats.Retries != stats.Gates-1 {
		t.Errorf("Retries = %d with %d gates", stats.Retries, stats.Gates)
	}
	if stats.BlocksLeft < 0 || stats.BlocksLeft > 40 {
		t.Errorf("BlocksLeft = %d", stats.BlocksLeft)
	}
}

func TestHeadlessRetryFrameUsesPilotInput(t *testing.T) {
	r := newHeadlessRun(config.DefaultBreakerConfig(), HeadlessOptions{RetryDelay: 2, Seed: 1})
	g := r.game
	g.session.stopped = true
	g.paddle.X = 0 // Retry leaves the paddle where it is

	// Two waiting frames: nothing moves
	r.frame()
	r.frame()
	if g.Tick() != 0 || g.paddle.X != 0 {
		t.Fatalf("waiting frames advanced the game: tick %d, paddle %v", g.Tick(), g.paddle.X)
	}

	// Third frame retries and steers toward the ball at x=300
	r.frame()
	if g.InterstitialVisible() {
		t.Fatal("session still stopped after the retry delay")
	}
	if g.Tick() != 1 {
		t.Errorf("tick = %d, want 1", g.Tick())
	}
	if g.paddle.X != g.paddle.Speed {
		t.Errorf("paddle x = %v, want %v after one step right", g.paddle.X, g.paddle.Speed)
	}

	stats := r.result()
	if stats.Frames != 3 || stats.Retries != 1 || stats.Ticks != 1 {
		t.Errorf("stats = %+v", stats)
	}
}
