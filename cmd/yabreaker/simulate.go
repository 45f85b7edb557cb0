package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ya-breaker/internal/config"
	"github.com/vovakirdan/ya-breaker/internal/games/yabreaker"
	"github.com/vovakirdan/ya-breaker/internal/storage"
)

var (
	flagSimTicks      int
	flagSimRuns       int
	flagSimSeed       uint64
	flagSimSpread     float64
	flagSimRetryDelay int
	flagDBPath        string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the autopilot headless and store a report",
	Long: `Play the game without a frontend. An autopilot steers the paddle,
presses retry on the break screen and the totals of each run are saved
to the report database.

Runs are deterministic: run i uses seed+i, so the same flags always
produce the same report.

Examples:
  yabreaker simulate
  yabreaker simulate --ticks 50000 --runs 10 --spread 30
  yabreaker simulate --seed 42 --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 10000, "Frames per run")
	simulateCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs")
	simulateCmd.Flags().Uint64Var(&flagSimSeed, "seed", 1, "Autopilot seed of the first run")
	simulateCmd.Flags().Float64Var(&flagSimSpread, "spread", 20, "Autopilot aim spread in units")
	simulateCmd.Flags().IntVar(&flagSimRetryDelay, "retry-delay", 60, "Frames on the break screen before retrying")
	simulateCmd.Flags().StringVar(&flagDBPath, "db", "~/.yabreaker/runs.db", "Path to report database")

	runsCmd.Flags().StringVar(&flagDBPath, "db", "~/.yabreaker/runs.db", "Path to report database")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if flagSimTicks <= 0 || flagSimRuns <= 0 {
		return errors.New("--ticks and --runs must be positive")
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open report database, results will not be saved", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	opts := yabreaker.HeadlessOptions{
		Ticks:      flagSimTicks,
		RetryDelay: flagSimRetryDelay,
		Seed:       flagSimSeed,
		Spread:     flagSimSpread,
	}
	saved, err := simulate(os.Stdout, cfg, opts, flagSimRuns, store, logger)
	if err != nil {
		return err
	}
	if saved > 0 {
		fmt.Printf("\nSaved %d run(s) to %s\n", saved, flagDBPath)
	}
	return nil
}

// simulate plays runs headless games, run i seeded with opts.Seed+i, prints a
// table row for each and saves it when store is not nil. It returns how many
// runs were saved and stops at the first save failure.
func simulate(w io.Writer, cfg config.BreakerConfig, opts yabreaker.HeadlessOptions, runs int, store *storage.Store, logger *log.Logger) (int, error) {
	fmt.Fprintf(w, "%-4s  %-8s  %8s  %6s  %5s  %7s  %6s  %7s  %6s\n",
		"Run", "Seed", "Ticks", "Fails", "Gates", "Retries", "Bricks", "Paddle", "Left")

	base := opts.Seed
	saved := 0
	for i := range runs {
		opts.Seed = base + uint64(i) //#nosec G115 -- i is never negative
		start := time.Now()
		stats := yabreaker.RunHeadless(cfg, opts)
		logger.Debug("run finished", "seed", opts.Seed, "elapsed", time.Since(start))

		fmt.Fprintf(w, "%-4d  %-8d  %8d  %6d  %5d  %7d  %6d  %7d  %6d\n",
			i+1, opts.Seed, stats.Ticks, stats.Fails, stats.Gates, stats.Retries,
			stats.BricksBroken, stats.PaddleHits, stats.BlocksLeft)

		if store == nil {
			continue
		}
		if _, err := store.SaveRun(recordFromStats(stats, opts.Spread)); err != nil {
			return saved, fmt.Errorf("saving run %d: %w", i+1, err)
		}
		saved++
	}
	return saved, nil
}

// recordFromStats converts headless stats into a storable record.
func recordFromStats(s yabreaker.RunStats, spread float64) storage.RunRecord {
	return storage.RunRecord{
		Seed:         s.Seed,
		Spread:       spread,
		Frames:       s.Frames,
		Ticks:        s.Ticks,
		Fails:        s.Fails,
		Gates:        s.Gates,
		Retries:      s.Retries,
		BricksBroken: s.BricksBroken,
		PaddleHits:   s.PaddleHits,
		Bounces:      s.Bounces,
		BlocksLeft:   s.BlocksLeft,
	}
}
