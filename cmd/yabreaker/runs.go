package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ya-breaker/internal/platform/tui"
	"github.com/vovakirdan/ya-breaker/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsClear bool
	flagRunsID    int64
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse stored simulation reports",
	Long: `Show the most recent simulation runs in a table, with a summary of
every stored run.

Examples:
  yabreaker runs
  yabreaker runs --limit 50
  yabreaker runs --id 12
  yabreaker runs --clear`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete every stored run")
	runsCmd.Flags().Int64Var(&flagRunsID, "id", 0, "Show a single run in detail")
}

func runRuns(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening report database: %w", err)
	}
	defer store.Close()

	switch {
	case flagRunsClear:
		if err := store.ClearRuns(); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Println("All runs deleted.")
		return nil

	case flagRunsID > 0:
		return showRun(os.Stdout, store, flagRunsID)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunRuns(store, flagRunsLimit, width, height); err != nil {
		return fmt.Errorf("showing runs: %w", err)
	}
	return nil
}

// showRun prints the detail panel of one stored run.
func showRun(w io.Writer, store *storage.Store, id int64) error {
	run, err := store.RunByID(id)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("no run with id %d", id)
	}
	fmt.Fprintln(w, tui.RunDetail(*run))
	return nil
}
