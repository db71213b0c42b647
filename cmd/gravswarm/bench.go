package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravswarm/internal/registry"
	"github.com/vovakirdan/gravswarm/internal/scenario"
	"github.com/vovakirdan/gravswarm/internal/sim"
	"github.com/vovakirdan/gravswarm/internal/storage"
)

var (
	flagBenchScenario string
	flagBenchConfig   string
	flagBenchTicks    int
	flagBenchDt       float64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark sequential vs parallel execution",
	Long: `Run the same seeded world under every registered strategy, compare
wall time, and verify the final states agree. Both runs are recorded in the
runs database.

Both strategies execute the identical per-ship update, so the final states
are expected to match bit-for-bit; any divergence is reported.

Examples:
  gravswarm bench
  gravswarm bench --scenario dense --ticks 2000
  gravswarm bench --workers 4`,
	Run: runBench,
}

func init() {
	benchCmd.Flags().StringVar(&flagBenchScenario, "scenario", "dense", "Scenario ID")
	benchCmd.Flags().StringVar(&flagBenchConfig, "config", "", "Path to custom scenario YAML")
	benchCmd.Flags().IntVar(&flagBenchTicks, "ticks", 0, "Tick count (0 = scenario default)")
	benchCmd.Flags().Float64Var(&flagBenchDt, "dt", 1.0/60, "Time step per tick in seconds")
}

// benchResult holds one strategy's measurement.
type benchResult struct {
	strategy sim.Strategy
	elapsed  time.Duration
	snap     sim.Snapshot
}

func runBench(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gravswarm",
	})

	scn, err := scenario.Load(flagBenchScenario, flagBenchConfig)
	if err != nil {
		logger.Fatal("cannot load scenario", "error", err)
	}

	ticks := flagBenchTicks
	if ticks <= 0 {
		ticks = scn.Run.Ticks
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := scn.SimConfig()
	logger.Info("benchmark",
		"scenario", flagBenchScenario,
		"ships", cfg.ShipCount,
		"planets", cfg.PlanetCount,
		"ticks", ticks,
		"seed", seed,
	)

	var results []benchResult
	for _, info := range registry.List() {
		strategy, createErr := registry.Create(info.ID, registry.Options{Workers: flagWorkers})
		if createErr != nil {
			logger.Fatal("cannot create strategy", "strategy", info.ID, "error", createErr)
		}

		// Each strategy gets an identically-seeded world.
		world := sim.NewWorld(cfg, rand.New(rand.NewSource(seed)))

		start := time.Now()
		for i := 0; i < ticks; i++ {
			strategy.Tick(world, flagBenchDt, &cfg)
		}
		elapsed := time.Since(start)

		results = append(results, benchResult{
			strategy: strategy,
			elapsed:  elapsed,
			snap:     world.Snapshot(),
		})

		logger.Info("strategy finished",
			"strategy", strategy.ID(),
			"duration", elapsed.Round(time.Millisecond).String(),
			"ticks_per_sec", fmt.Sprintf("%.0f", float64(ticks)/elapsed.Seconds()),
		)
	}

	// Verify agreement against the first strategy.
	baseline := results[0]
	for _, r := range results[1:] {
		delta := baseline.snap.MaxDelta(r.snap)
		if baseline.snap.Hash() == r.snap.Hash() {
			logger.Info("states identical", "baseline", baseline.strategy.ID(), "other", r.strategy.ID())
		} else if delta <= 1e-4 {
			logger.Info("states within tolerance", "other", r.strategy.ID(), "max_delta", delta)
		} else {
			logger.Error("states diverged", "other", r.strategy.ID(), "max_delta", delta)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		return
	}
	defer store.Close()

	for _, r := range results {
		if _, saveErr := store.SaveRun(storage.RunRecord{
			Scenario:   flagBenchScenario,
			Strategy:   r.strategy.ID(),
			Ships:      cfg.ShipCount,
			Planets:    cfg.PlanetCount,
			Ticks:      ticks,
			Dt:         flagBenchDt,
			Seed:       seed,
			DurationMS: r.elapsed.Milliseconds(),
			Checksum:   fmt.Sprintf("%016x", r.snap.Hash()),
		}); saveErr != nil {
			logger.Warn("could not save run", "strategy", r.strategy.ID(), "error", saveErr)
		}
	}
}
