package storage

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	want := RunRecord{
		Seed:         math.MaxUint64, // Survives the signed column
		Spread:       45.5,
		Frames:       5000,
		Ticks:        4800,
		Fails:        12,
		Gates:        1,
		Retries:      1,
		BricksBroken: 33,
		PaddleHits:   51,
		Bounces:      7,
		BlocksLeft:   7,
	}
	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil")
	}

	want.ID = id
	want.CreatedAt = got.CreatedAt
	if *got != want {
		t.Errorf("RunByID() = %+v, want %+v", *got, want)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	missing, err := store.RunByID(id + 100)
	if err != nil || missing != nil {
		t.Errorf("RunByID(missing) = %v, %v", missing, err)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveRun(RunRecord{Seed: uint64(i), Frames: 100, Ticks: 100}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Newest first
	if runs[0].Seed != 4 || runs[1].Seed != 3 || runs[2].Seed != 2 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	all, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected default limit to return all 5 runs, got %d", len(all))
	}
}

func TestStoreSummary(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if empty.Runs != 0 || empty.FailsPer1000Ticks() != 0 || !empty.LastRun.IsZero() {
		t.Errorf("empty summary = %+v", empty)
	}

	store.SaveRun(RunRecord{Ticks: 1000, Fails: 4, Gates: 0, BricksBroken: 10, PaddleHits: 20})
	store.SaveRun(RunRecord{Ticks: 3000, Fails: 16, Gates: 1, BricksBroken: 30, PaddleHits: 50})

	sum, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Runs != 2 || sum.TotalTicks != 4000 || sum.TotalFails != 20 || sum.TotalGates != 1 {
		t.Errorf("summary totals = %+v", sum)
	}
	if sum.AvgBricks != 20 {
		t.Errorf("AvgBricks = %v, want 20", sum.AvgBricks)
	}
	if sum.BestPaddleHits != 50 {
		t.Errorf("BestPaddleHits = %d, want 50", sum.BestPaddleHits)
	}
	if sum.FailsPer1000Ticks() != 5 {
		t.Errorf("FailsPer1000Ticks() = %v, want 5", sum.FailsPer1000Ticks())
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Ticks: 10})
	store.SaveRun(RunRecord{Ticks: 20})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}
