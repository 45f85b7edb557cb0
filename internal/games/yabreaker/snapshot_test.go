package yabreaker

import (
	"strings"
	"testing"

	"github.com/vovakirdan/ya-breaker/internal/core"
)

func scriptedInputs(n int) []core.InputFrame {
	inputs := make([]core.InputFrame, n)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%7 < 3:
			inputs[i].Set(core.ActionLeft)
		case i%7 < 5:
			inputs[i].Set(core.ActionRight)
		}
	}
	return inputs
}

func TestGameDeterminism(t *testing.T) {
	inputs := scriptedInputs(3000)

	run := func() Snapshot {
		g := newTestGame()
		for _, in := range inputs {
			if g.InterstitialVisible() {
				g.Retry()
			}
			g.Frame(core.NopSurface{}, in)
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Fails != snap2.Fails || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: fails %d/%d ticks %d/%d", snap1.Fails, snap2.Fails, snap1.Tick, snap2.Tick)
	}
}

func TestSnapshotApplyResumesIdentically(t *testing.T) {
	inputs := scriptedInputs(400)

	g1 := newTestGame()
	for _, in := range inputs[:200] {
		g1.Step(in)
	}

	g2 := newTestGame()
	g2.ApplySnapshot(g1.Snapshot())

	snap1, snap2 := g1.Snapshot(), g2.Snapshot()
	if snap1.Hash() != snap2.Hash() {
		t.Fatal("applied snapshot differs from source")
	}

	for _, in := range inputs[200:] {
		g1.Step(in)
		g2.Step(in)
	}
	snap1, snap2 = g1.Snapshot(), g2.Snapshot()
	if snap1.Hash() != snap2.Hash() {
		t.Error("games diverged after applying a snapshot")
	}
}

func TestSnapshotHashSensitivity(t *testing.T) {
	g := newTestGame()
	base := g.Snapshot()

	changed := g.Snapshot()
	changed.BlockData[7] = 0
	if base.Hash() == changed.Hash() {
		t.Error("hash ignores block state")
	}

	changed = g.Snapshot()
	changed.BallDY = -changed.BallDY
	if base.Hash() == changed.Hash() {
		t.Error("hash ignores ball velocity")
	}

	changed = g.Snapshot()
	changed.Stopped = true
	if base.Hash() == changed.Hash() {
		t.Error("hash ignores stopped flag")
	}
}

func TestSnapshotYAML(t *testing.T) {
	g := newTestGame()
	snap := g.Snapshot()

	out, err := snap.YAML()
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}
	for _, want := range []string{"tick: 0", "fails: 0", "ball_x: 300", "paddle_x: 260", "blocks: ["} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML() missing %q:\n%s", want, out)
		}
	}
}

func TestParseSnapshot(t *testing.T) {
	g := newTestGame()
	for _, in := range scriptedInputs(150) {
		g.Step(in)
	}
	snap := g.Snapshot()
	dump, err := snap.YAML()
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}

	restored := newTestGame()
	parsed, err := ParseSnapshot(dump)
	if err != nil {
		t.Fatalf("ParseSnapshot() error = %v", err)
	}
	restored.ApplySnapshot(parsed)
	if got := restored.Snapshot(); got.Hash() != snap.Hash() {
		t.Errorf("restored game differs: tick %d/%d", got.Tick, snap.Tick)
	}

	if _, err := ParseSnapshot("tick: [not a number"); err == nil {
		t.Error("ParseSnapshot() accepted malformed YAML")
	}
}
