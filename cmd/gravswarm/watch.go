package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gravswarm/internal/platform/tui"
	"github.com/vovakirdan/gravswarm/internal/storage"
)

var (
	flagWatchScenario string
	flagWatchConfig   string
	flagWatchStrategy string
	flagWatchFPS      int
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a live simulation",
	Long: `Start a live terminal visualization of the swarm.

Controls:
  P/Space    - Pause
  N          - Step one tick while paused
  R          - Restart with a new seed
  S          - Switch execution strategy
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Examples:
  gravswarm watch
  gravswarm watch --scenario sparse
  gravswarm watch --scenario dense --strategy parallel --workers 8
  gravswarm watch --config ./my-scenario.yaml --seed 42`,
	Run: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagWatchScenario, "scenario", "orbit", "Scenario ID")
	watchCmd.Flags().StringVar(&flagWatchConfig, "config", "", "Path to custom scenario YAML")
	watchCmd.Flags().StringVar(&flagWatchStrategy, "strategy", "sequential", "Execution strategy")
	watchCmd.Flags().IntVar(&flagWatchFPS, "fps", 0, "Tick rate override (0 = scenario default)")
}

func runWatch(cmd *cobra.Command, args []string) {
	scn, strategy, err := loadScenarioAndStrategy(flagWatchScenario, flagWatchConfig, flagWatchStrategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the canvas
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	tickRate := flagWatchFPS
	if tickRate <= 0 {
		tickRate = scn.Run.TickRate
	}

	view := tui.ViewConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
		Workers:  flagWorkers,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the view still works
		store = nil
	}

	runErr := tui.Run(flagWatchScenario, scn, strategy, store, view)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running view: %v\n", runErr)
		os.Exit(1)
	}
}
