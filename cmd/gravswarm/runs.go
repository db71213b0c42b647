package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravswarm/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs [scenario]",
	Short: "Show recorded run history",
	Long: `Display recorded simulation runs, newest first. With a scenario
argument, only that scenario's runs are shown along with its fastest times.

Examples:
  gravswarm runs
  gravswarm runs dense
  gravswarm runs dense --limit 50`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var records []storage.RunRecord
	if len(args) == 1 {
		records, err = store.RunsByScenario(args[0], flagRunsLimit)
	} else {
		records, err = store.RecentRuns(flagRunsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'gravswarm run' or 'gravswarm bench' to record the first one.")
		return
	}

	fmt.Printf("  %-8s  %-10s  %7s  %7s  %8s  %10s  %s\n",
		"Scenario", "Strategy", "Ships", "Ticks", "Time", "Checksum", "Date")
	fmt.Printf("  %-8s  %-10s  %7s  %7s  %8s  %10s  %s\n",
		"--------", "--------", "-----", "-----", "----", "--------", "----")

	for _, r := range records {
		checksum := r.Checksum
		if len(checksum) > 8 {
			checksum = checksum[:8]
		}
		fmt.Printf("  %-8s  %-10s  %7d  %7d  %6dms  %10s  %s\n",
			r.Scenario, r.Strategy, r.Ships, r.Ticks, r.DurationMS,
			checksum, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if len(args) == 1 {
		fmt.Println()
		for _, strategy := range []string{"sequential", "parallel"} {
			best, bestErr := store.BestDuration(args[0], strategy)
			if bestErr == nil && best > 0 {
				fmt.Printf("Best %s: %dms\n", strategy, best)
			}
		}
	}
}
