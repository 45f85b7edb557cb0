package window

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/ya-breaker/internal/config"
	"github.com/vovakirdan/ya-breaker/internal/core"
	"github.com/vovakirdan/ya-breaker/internal/games/yabreaker"
)

type fakePlayer struct {
	played []core.SoundID
	muted  bool
}

func (p *fakePlayer) Play(id core.SoundID) { p.played = append(p.played, id) }

func (p *fakePlayer) ToggleMute() bool {
	p.muted = !p.muted
	return p.muted
}

func newTestWindow(cfg config.BreakerConfig, sound core.SoundPlayer, copyText func(string) error) (*Window, *yabreaker.Game) {
	game := yabreaker.New(cfg)
	w := New(game, Options{
		Config:    core.RuntimeConfig{TickRate: 60},
		Sound:     sound,
		Logger:    log.New(io.Discard),
		Clipboard: copyText,
	})
	return w, game
}

func drawOps(rec *core.Recorder) []core.DrawOp {
	ops := make([]core.DrawOp, len(rec.Commands))
	for i, c := range rec.Commands {
		ops[i] = c.Op
	}
	return ops
}

func TestHeldInput(t *testing.T) {
	tests := []struct {
		name        string
		down        []ebiten.Key
		left, right bool
	}{
		{"none", nil, false, false},
		{"arrow left", []ebiten.Key{ebiten.KeyArrowLeft}, true, false},
		{"d", []ebiten.Key{ebiten.KeyD}, false, true},
		{"both", []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowRight}, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pressed := func(k ebiten.Key) bool {
				for _, d := range tc.down {
					if d == k {
						return true
					}
				}
				return false
			}
			in := heldInput(pressed)
			if in.Has(core.ActionLeft) != tc.left || in.Has(core.ActionRight) != tc.right {
				t.Errorf("left = %v right = %v", in.Has(core.ActionLeft), in.Has(core.ActionRight))
			}
		})
	}
}

func TestStepRecordsFrame(t *testing.T) {
	w, game := newTestWindow(config.DefaultBreakerConfig(), nil, nil)

	w.Step(core.NewInputFrame(), Controls{})

	if game.Tick() != 1 {
		t.Errorf("tick = %d, want 1", game.Tick())
	}
	ops := drawOps(&w.rec)
	if len(ops) != 46 || ops[0] != core.OpClear {
		t.Errorf("recorded ops = %v", ops)
	}
}

func TestStepRetryOnlyWhenStopped(t *testing.T) {
	cfg := config.DefaultBreakerConfig()
	cfg.Session.GateEvery = 1
	cfg.Ball.RestartOffset = -20

	sound := &fakePlayer{}
	w, game := newTestWindow(cfg, sound, nil)

	// Retry while running does nothing; this frame loses the ball.
	w.Step(core.NewInputFrame(), Controls{Retry: true})
	if !game.InterstitialVisible() {
		t.Fatal("expected interstitial after the first frame")
	}
	if len(sound.played) != 1 || sound.played[0] != core.SoundBallLost {
		t.Errorf("played = %v", sound.played)
	}

	w.Step(core.NewInputFrame(), Controls{})
	if ops := drawOps(&w.rec); len(ops) != 1 || ops[0] != core.OpClear {
		t.Errorf("stopped frame recorded %v, want only a clear", ops)
	}

	// Retry resumes and the same frame runs again.
	w.Step(core.NewInputFrame(), Controls{Retry: true})
	if game.State().Fails != 2 {
		t.Errorf("fails = %d, want 2 after retrying into another drop", game.State().Fails)
	}
}

func TestStepMuteToggles(t *testing.T) {
	sound := &fakePlayer{}
	w, _ := newTestWindow(config.DefaultBreakerConfig(), sound, nil)

	w.Step(core.NewInputFrame(), Controls{Mute: true})
	if !sound.muted || !w.muted || w.Status() != "sound off" {
		t.Errorf("muted = %v/%v status = %q", sound.muted, w.muted, w.Status())
	}

	for range statusFrames {
		w.Step(core.NewInputFrame(), Controls{})
	}
	if w.Status() != "" {
		t.Errorf("status %q should have expired", w.Status())
	}
}

func TestStepCopySnapshot(t *testing.T) {
	var copied string
	w, _ := newTestWindow(config.DefaultBreakerConfig(), nil, func(s string) error {
		copied = s
		return nil
	})

	w.Step(core.NewInputFrame(), Controls{Copy: true})
	if !strings.Contains(copied, "ball_x: 300") || w.Status() != "snapshot copied" {
		t.Errorf("copied = %q status = %q", copied, w.Status())
	}

	failing, _ := newTestWindow(config.DefaultBreakerConfig(), nil, func(string) error {
		return errors.New("no clipboard")
	})
	failing.Step(core.NewInputFrame(), Controls{Copy: true})
	if failing.Status() != "copy failed" {
		t.Errorf("status = %q", failing.Status())
	}
}

func TestStepPasteSnapshot(t *testing.T) {
	source := yabreaker.New(config.DefaultBreakerConfig())
	for range 90 {
		in := core.NewInputFrame()
		in.Set(core.ActionLeft)
		source.Step(in)
	}
	snap := source.Snapshot()
	dump, err := snap.YAML()
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}

	tests := []struct {
		name       string
		paste      func() (string, error)
		wantStatus string
		wantTick   int
	}{
		{"restores", func() (string, error) { return dump, nil }, "snapshot restored", 91},
		{"malformed", func() (string, error) { return "fails: [", nil }, "paste failed", 1},
		{"clipboard error", func() (string, error) { return "", errors.New("no clipboard") }, "paste failed", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			game := yabreaker.New(config.DefaultBreakerConfig())
			w := New(game, Options{
				Config: core.RuntimeConfig{TickRate: 60},
				Logger: log.New(io.Discard),
				Paste:  tc.paste,
			})

			w.Step(core.NewInputFrame(), Controls{Paste: true})
			if w.Status() != tc.wantStatus {
				t.Errorf("status = %q, want %q", w.Status(), tc.wantStatus)
			}
			if game.Tick() != tc.wantTick {
				t.Errorf("tick = %d, want %d", game.Tick(), tc.wantTick)
			}
		})
	}
}

func TestLayoutAndButton(t *testing.T) {
	w, _ := newTestWindow(config.DefaultBreakerConfig(), nil, nil)

	if sw, sh := w.Layout(1920, 1080); sw != 600 || sh != 500 {
		t.Errorf("Layout() = %dx%d, want 600x500", sw, sh)
	}

	p, b := w.panel(), w.retryButton()
	if b.X < p.X || b.Right() > p.Right() || b.Y < p.Y || b.Bottom() > p.Bottom() {
		t.Errorf("retry button %+v outside panel %+v", b, p)
	}
}
