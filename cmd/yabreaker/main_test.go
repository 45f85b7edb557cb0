package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ya-breaker/internal/config"
	"github.com/vovakirdan/ya-breaker/internal/games/yabreaker"
	"github.com/vovakirdan/ya-breaker/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSpriteSources(t *testing.T) {
	cfg := config.DefaultBreakerConfig().WithAssetDir("/media")
	sources := spriteSources(cfg)

	if len(sources) != 3 {
		t.Fatalf("expected 3 sources, got %d", len(sources))
	}
	if got := sources[yabreaker.AssetDecor]; got.Path != cfg.Decor.Video || got.FPS != cfg.Decor.FPS {
		t.Errorf("decor source = %+v", got)
	}
	if got := sources[yabreaker.AssetEnemy].Path; got != cfg.Enemy.Sprite {
		t.Errorf("enemy path = %q, want %q", got, cfg.Enemy.Sprite)
	}
	if got := sources[yabreaker.AssetObstacle].Path; got != cfg.Obstacle.Sprite {
		t.Errorf("obstacle path = %q, want %q", got, cfg.Obstacle.Sprite)
	}
}

func TestRecordFromStats(t *testing.T) {
	stats := yabreaker.RunHeadless(config.DefaultBreakerConfig(), yabreaker.HeadlessOptions{
		Ticks:      500,
		RetryDelay: 10,
		Seed:       7,
		Spread:     15,
	})
	rec := recordFromStats(stats, 15)

	if rec.Seed != 7 || rec.Spread != 15 {
		t.Errorf("seed/spread = %d/%v", rec.Seed, rec.Spread)
	}
	if rec.Frames != 500 || rec.Ticks != stats.Ticks || rec.Fails != stats.Fails {
		t.Errorf("record %+v does not match stats %+v", rec, stats)
	}
	if rec.BlocksLeft != stats.BlocksLeft || rec.BricksBroken != stats.BricksBroken {
		t.Errorf("block counts differ: %+v vs %+v", rec, stats)
	}
}

func TestRuntimeConfig(t *testing.T) {
	flagFPS, flagMute = 30, true
	defer func() { flagFPS, flagMute = 60, false }()

	rc := runtimeConfig(100, 40)
	if rc.ScreenW != 100 || rc.ScreenH != 40 || rc.TickRate != 30 || !rc.Muted {
		t.Errorf("runtimeConfig = %+v", rc)
	}
}

func TestSimulateSavesEveryRun(t *testing.T) {
	store := openTestStore(t)
	opts := yabreaker.HeadlessOptions{Ticks: 300, RetryDelay: 5, Seed: 10, Spread: 5}

	var out bytes.Buffer
	saved, err := simulate(&out, config.DefaultBreakerConfig(), opts, 3, store, log.New(io.Discard))
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	if saved != 3 {
		t.Errorf("saved = %d, want 3", saved)
	}

	// Header plus one row per run
	if lines := strings.Split(strings.TrimSpace(out.String()), "\n"); len(lines) != 4 {
		t.Errorf("output has %d lines, want 4:\n%s", len(lines), out.String())
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	seeds := map[uint64]bool{}
	for _, r := range runs {
		seeds[r.Seed] = true
		if r.Frames != 300 {
			t.Errorf("run %d frames = %d, want 300", r.ID, r.Frames)
		}
	}
	for _, want := range []uint64{10, 11, 12} {
		if !seeds[want] {
			t.Errorf("no run stored with seed %d", want)
		}
	}
}

func TestSimulateWithoutStore(t *testing.T) {
	opts := yabreaker.HeadlessOptions{Ticks: 50, Seed: 1}
	saved, err := simulate(io.Discard, config.DefaultBreakerConfig(), opts, 2, nil, log.New(io.Discard))
	if err != nil || saved != 0 {
		t.Errorf("simulate() = %d, %v; want 0, nil", saved, err)
	}
}

func TestShowRun(t *testing.T) {
	store := openTestStore(t)
	id, err := store.SaveRun(storage.RunRecord{Seed: 99, Ticks: 1234, Fails: 4})
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := showRun(&out, store, id); err != nil {
		t.Fatalf("showRun() failed: %v", err)
	}
	for _, want := range []string{"99", "1234"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("detail missing %q:\n%s", want, out.String())
		}
	}

	if err := showRun(io.Discard, store, id+50); err == nil {
		t.Error("showRun() should fail for a missing id")
	}
}
