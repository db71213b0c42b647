// gravswarm is a gravitational swarm simulator: massless ships orbiting fixed
// planet attractors inside a bounded square domain, rendered in the terminal.
//
// Usage:
//
//	gravswarm run        - Run a headless simulation and record the result
//	gravswarm watch      - Watch a live simulation in the terminal
//	gravswarm bench      - Compare sequential and parallel strategies
//	gravswarm scenarios  - List available scenarios and strategies
//	gravswarm runs       - Show recorded run history
//	gravswarm serve      - Start SSH server for remote viewing
//
// Global flags:
//
//	--seed <value>     - RNG seed for reproducible runs (0 = time-based)
//	--workers <count>  - Worker count for the parallel strategy (0 = NumCPU)
//	--db <path>        - Runs database path (default: ~/.gravswarm/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagWorkers int
	flagDBPath  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gravswarm",
	Short: "Gravitational swarm simulator for your terminal",
	Long: `GravSwarm simulates a swarm of massless ships under the pull of fixed
planet attractors, bouncing off the walls of a square domain.

Available commands:
  run        - Headless simulation run, recorded in the runs database
  watch      - Live terminal visualization
  bench      - Benchmark sequential vs parallel execution
  scenarios  - List scenarios and execution strategies
  runs       - View recorded runs
  serve      - Serve the live view over SSH

Examples:
  gravswarm watch
  gravswarm watch --scenario dense --strategy parallel
  gravswarm run --ticks 10000 --seed 42
  gravswarm bench --scenario dense
  gravswarm serve --ssh :23235`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "Parallel strategy worker count (0 = one per CPU)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gravswarm/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}
