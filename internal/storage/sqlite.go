// Package storage provides SQLite-based persistence for headless simulation
// reports. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Interactive play never writes here: a session's fail counter lives only in
// memory.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run reports.
type Store struct {
	db *sql.DB
}

// RunRecord is one headless simulation run.
type RunRecord struct {
	ID           int64
	Seed         uint64
	Spread       float64
	Frames       int
	Ticks        int
	Fails        int
	Gates        int
	Retries      int
	BricksBroken int
	PaddleHits   int
	Bounces      int
	BlocksLeft   int
	CreatedAt    time.Time
}

// Summary aggregates every stored run.
type Summary struct {
	Runs           int
	TotalTicks     int64
	TotalFails     int64
	TotalGates     int64
	AvgBricks      float64
	BestPaddleHits int
	LastRun        time.Time
}

// FailsPer1000Ticks returns the drop rate across all runs.
func (s Summary) FailsPer1000Ticks() float64 {
	if s.TotalTicks == 0 {
		return 0
	}
	return float64(s.TotalFails) * 1000 / float64(s.TotalTicks)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sim_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			spread REAL NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			fails INTEGER NOT NULL DEFAULT 0,
			gates INTEGER NOT NULL DEFAULT 0,
			retries INTEGER NOT NULL DEFAULT 0,
			bricks_broken INTEGER NOT NULL DEFAULT 0,
			paddle_hits INTEGER NOT NULL DEFAULT 0,
			bounces INTEGER NOT NULL DEFAULT 0,
			blocks_left INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sim_runs_created ON sim_runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run and returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sim_runs
		 (seed, spread, frames, ticks, fails, gates, retries, bricks_broken, paddle_hits, bounces, blocks_left)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		int64(r.Seed), //#nosec G115 -- stored bit pattern, read back as uint64
		r.Spread,
		r.Frames,
		r.Ticks,
		r.Fails,
		r.Gates,
		r.Retries,
		r.BricksBroken,
		r.PaddleHits,
		r.Bounces,
		r.BlocksLeft,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, seed, spread, frames, ticks, fails, gates, retries,
	bricks_broken, paddle_hits, bounces, blocks_left, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (RunRecord, error) {
	var r RunRecord
	var seed int64
	var createdAt any
	err := row.Scan(
		&r.ID,
		&seed,
		&r.Spread,
		&r.Frames,
		&r.Ticks,
		&r.Fails,
		&r.Gates,
		&r.Retries,
		&r.BricksBroken,
		&r.PaddleHits,
		&r.Bounces,
		&r.BlocksLeft,
		&createdAt,
	)
	if err != nil {
		return r, err
	}
	r.Seed = uint64(seed) //#nosec G115 -- stored bit pattern
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM sim_runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a single run. Returns nil if it does not exist.
func (s *Store) RunByID(id int64) (*RunRecord, error) {
	r, err := scanRun(s.db.QueryRow(
		`SELECT `+runColumns+` FROM sim_runs WHERE id = ?`,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// Summary aggregates all stored runs.
func (s *Store) Summary() (*Summary, error) {
	sum := &Summary{}
	var lastRun any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(ticks), 0), COALESCE(SUM(fails), 0), COALESCE(SUM(gates), 0),
		        COALESCE(AVG(bricks_broken), 0), COALESCE(MAX(paddle_hits), 0), MAX(created_at)
		 FROM sim_runs`,
	).Scan(&sum.Runs, &sum.TotalTicks, &sum.TotalFails, &sum.TotalGates, &sum.AvgBricks, &sum.BestPaddleHits, &lastRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot summarize runs: %w", err)
	}
	sum.LastRun = parseTime(lastRun)

	return sum, nil
}

// ClearRuns deletes every stored run.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM sim_runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
