package scenario

import (
	_ "embed"
)

//go:embed defaults/orbit.yaml
var defaultOrbitYAML []byte

//go:embed defaults/dense.yaml
var defaultDenseYAML []byte

//go:embed defaults/sparse.yaml
var defaultSparseYAML []byte

// DefaultScenario returns the hardcoded "orbit" scenario, used as the last
// fallback when even the embedded YAML cannot be parsed.
func DefaultScenario() Scenario {
	return Scenario{
		Population: PopulationConfig{
			Ships:   200,
			Planets: 5,
		},
		Physics: PhysicsConfig{
			AreaSize:        100,
			Gravity:         50,
			MinPlanetRadius: 2,
			MaxPlanetRadius: 8,
			MinShipSpeed:    1,
			MaxShipSpeed:    10,
		},
		Run: RunConfig{
			TickRate: 60,
			Ticks:    3600,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a scenario ID.
func GetDefaultYAML(id string) []byte {
	switch id {
	case "orbit":
		return defaultOrbitYAML
	case "dense":
		return defaultDenseYAML
	case "sparse":
		return defaultSparseYAML
	default:
		return nil
	}
}

// BuiltinIDs returns the scenario IDs with embedded defaults, in display order.
func BuiltinIDs() []string {
	return []string{"orbit", "dense", "sparse"}
}
