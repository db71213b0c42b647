package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravswarm/internal/registry"
	"github.com/vovakirdan/gravswarm/internal/scenario"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List available scenarios and strategies",
	Long: `Shows the built-in scenarios and the registered execution strategies.

Custom scenarios can be placed in ~/.gravswarm/scenarios/<id>.yaml or
./scenarios/<id>.yaml to override the built-in defaults.`,
	Run: runScenarios,
}

func runScenarios(cmd *cobra.Command, args []string) {
	fmt.Println("Built-in scenarios:")
	fmt.Println()
	fmt.Printf("  %-8s  %8s  %8s  %10s\n", "ID", "Ships", "Planets", "Area")
	fmt.Printf("  %-8s  %8s  %8s  %10s\n", "--", "-----", "-------", "----")

	for _, id := range scenario.BuiltinIDs() {
		s, err := scenario.Load(id, "")
		if err != nil {
			fmt.Printf("  %-8s  (failed to load: %v)\n", id, err)
			continue
		}
		fmt.Printf("  %-8s  %8d  %8d  %10.0f\n",
			id, s.Population.Ships, s.Population.Planets, s.Physics.AreaSize)
	}

	fmt.Println()
	fmt.Println("Execution strategies:")
	fmt.Println()
	for _, info := range registry.List() {
		fmt.Printf("  %-12s  %s\n", info.ID, info.Description)
	}

	fmt.Println()
	fmt.Println("Run 'gravswarm watch --scenario <id>' to watch one live.")
}
