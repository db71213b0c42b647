// Package sim implements the gravitational swarm simulation core: world
// state, randomized initialization, the per-ship force/integration step, and
// the interchangeable execution strategies that drive it.
//
// The package contains no external dependencies (especially no Bubble Tea)
// so the physics stays pure and testable; the platform layer handles timing,
// input, and rendering.
package sim

// Config holds the simulation parameters. It is read-only once a world has
// been created from it.
//
// All values are caller-guaranteed valid: counts non-negative, min <= max for
// every range, AreaSize and Gravity positive. A degenerate range is a
// precondition violation, not a runtime-checked error.
type Config struct {
	ShipCount   int // Number of ships in the swarm
	PlanetCount int // Number of fixed attractor planets

	AreaSize float64 // Half-extent of the square domain: positions live in [-AreaSize, AreaSize]^2

	MinPlanetRadius float64 // Planet radius range; mass = radius^2
	MaxPlanetRadius float64

	MinShipSpeed float64 // Initial ship speed range
	MaxShipSpeed float64

	Gravity float64 // Gravitational constant G
}

// DefaultConfig returns a Config with sensible defaults for an interactive
// run on a terminal-sized canvas.
func DefaultConfig() Config {
	return Config{
		ShipCount:       200,
		PlanetCount:     5,
		AreaSize:        100,
		MinPlanetRadius: 2,
		MaxPlanetRadius: 8,
		MinShipSpeed:    1,
		MaxShipSpeed:    10,
		Gravity:         50,
	}
}
