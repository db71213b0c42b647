// Package scenario provides YAML-based simulation scenario loading for the
// swarm platform. A scenario bundles the population, physics, and run
// parameters that together define a reproducible simulation setup.
package scenario

import (
	"fmt"

	"github.com/vovakirdan/gravswarm/internal/sim"
)

// Scenario contains all configuration for one simulation setup.
type Scenario struct {
	Population PopulationConfig `yaml:"population"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Run        RunConfig        `yaml:"run"`
}

// PopulationConfig defines how many bodies the initializer creates.
type PopulationConfig struct {
	Ships   int `yaml:"ships"`
	Planets int `yaml:"planets"`
}

// PhysicsConfig defines the force and domain parameters.
type PhysicsConfig struct {
	AreaSize        float64 `yaml:"area_size"`
	Gravity         float64 `yaml:"gravity"`
	MinPlanetRadius float64 `yaml:"min_planet_radius"`
	MaxPlanetRadius float64 `yaml:"max_planet_radius"`
	MinShipSpeed    float64 `yaml:"min_ship_speed"`
	MaxShipSpeed    float64 `yaml:"max_ship_speed"`
}

// RunConfig defines how the host layer drives the simulation.
type RunConfig struct {
	TickRate int `yaml:"tick_rate"` // Ticks per second for live views
	Ticks    int `yaml:"ticks"`     // Default tick count for headless runs
}

// SimConfig converts the scenario into the core simulation config.
func (s Scenario) SimConfig() sim.Config {
	return sim.Config{
		ShipCount:       s.Population.Ships,
		PlanetCount:     s.Population.Planets,
		AreaSize:        s.Physics.AreaSize,
		Gravity:         s.Physics.Gravity,
		MinPlanetRadius: s.Physics.MinPlanetRadius,
		MaxPlanetRadius: s.Physics.MaxPlanetRadius,
		MinShipSpeed:    s.Physics.MinShipSpeed,
		MaxShipSpeed:    s.Physics.MaxShipSpeed,
	}
}

// Validate checks the ranges the simulation core assumes as preconditions.
// The core itself never re-checks these; the scenario boundary is the one
// place where bad input is turned into an error.
func (s Scenario) Validate() error {
	if s.Population.Ships < 0 || s.Population.Planets < 0 {
		return fmt.Errorf("scenario: negative population (ships=%d, planets=%d)",
			s.Population.Ships, s.Population.Planets)
	}
	if s.Physics.AreaSize <= 0 {
		return fmt.Errorf("scenario: area_size must be positive, got %g", s.Physics.AreaSize)
	}
	if s.Physics.MinPlanetRadius > s.Physics.MaxPlanetRadius {
		return fmt.Errorf("scenario: planet radius range inverted (%g > %g)",
			s.Physics.MinPlanetRadius, s.Physics.MaxPlanetRadius)
	}
	if s.Physics.MinShipSpeed > s.Physics.MaxShipSpeed {
		return fmt.Errorf("scenario: ship speed range inverted (%g > %g)",
			s.Physics.MinShipSpeed, s.Physics.MaxShipSpeed)
	}
	if s.Run.TickRate <= 0 {
		return fmt.Errorf("scenario: tick_rate must be positive, got %d", s.Run.TickRate)
	}
	return nil
}
