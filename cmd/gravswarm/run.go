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
	flagRunScenario string
	flagRunConfig   string
	flagRunStrategy string
	flagRunTicks    int
	flagRunDt       float64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a display for a fixed number of ticks and
record the result (duration, final-state checksum) in the runs database.

A fixed seed makes the run fully reproducible: the same seed, scenario, dt,
and tick count always produce the same checksum, with either strategy.

Examples:
  gravswarm run
  gravswarm run --scenario dense --strategy parallel
  gravswarm run --ticks 10000 --dt 0.016 --seed 42
  gravswarm run --config ./my-scenario.yaml`,
	Run: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagRunScenario, "scenario", "orbit", "Scenario ID")
	runCmd.Flags().StringVar(&flagRunConfig, "config", "", "Path to custom scenario YAML")
	runCmd.Flags().StringVar(&flagRunStrategy, "strategy", "sequential", "Execution strategy")
	runCmd.Flags().IntVar(&flagRunTicks, "ticks", 0, "Tick count (0 = scenario default)")
	runCmd.Flags().Float64Var(&flagRunDt, "dt", 1.0/60, "Time step per tick in seconds")
}

func runRun(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gravswarm",
	})

	scn, strategy, err := loadScenarioAndStrategy(flagRunScenario, flagRunConfig, flagRunStrategy)
	if err != nil {
		logger.Fatal("setup failed", "error", err)
	}

	ticks := flagRunTicks
	if ticks <= 0 {
		ticks = scn.Run.Ticks
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := scn.SimConfig()
	world := sim.NewWorld(cfg, rand.New(rand.NewSource(seed)))

	logger.Info("starting run",
		"scenario", flagRunScenario,
		"strategy", strategy.ID(),
		"ships", cfg.ShipCount,
		"planets", cfg.PlanetCount,
		"ticks", ticks,
		"seed", seed,
	)

	start := time.Now()
	for i := 0; i < ticks; i++ {
		strategy.Tick(world, flagRunDt, &cfg)
	}
	elapsed := time.Since(start)

	checksum := fmt.Sprintf("%016x", world.Snapshot().Hash())
	logger.Info("run complete",
		"duration", elapsed.Round(time.Millisecond).String(),
		"checksum", checksum,
	)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.RunRecord{
		Scenario:   flagRunScenario,
		Strategy:   strategy.ID(),
		Ships:      cfg.ShipCount,
		Planets:    cfg.PlanetCount,
		Ticks:      ticks,
		Dt:         flagRunDt,
		Seed:       seed,
		DurationMS: elapsed.Milliseconds(),
		Checksum:   checksum,
	}); err != nil {
		logger.Warn("could not save run", "error", err)
	}
}

// loadScenarioAndStrategy resolves the shared scenario/strategy flags.
func loadScenarioAndStrategy(scenarioID, configPath, strategyID string) (scenario.Scenario, sim.Strategy, error) {
	scn, err := scenario.Load(scenarioID, configPath)
	if err != nil {
		return scenario.Scenario{}, nil, err
	}

	if !registry.Exists(strategyID) {
		return scenario.Scenario{}, nil, fmt.Errorf("unknown strategy %q (run 'gravswarm scenarios' to see choices)", strategyID)
	}
	strategy, err := registry.Create(strategyID, registry.Options{Workers: flagWorkers})
	if err != nil {
		return scenario.Scenario{}, nil, err
	}

	return scn, strategy, nil
}
