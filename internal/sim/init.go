package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/gravswarm/internal/vec"
)

// NewWorld builds a world from the config using the provided random source.
// The rng is injectable so a fixed seed reproduces the identical world, which
// the determinism tests rely on.
//
// Planets are placed uniformly in the area square with a radius drawn from
// [MinPlanetRadius, MaxPlanetRadius]; mass is the radius squared. Ships get a
// uniform position and a random unit direction scaled by a speed drawn from
// [MinShipSpeed, MaxShipSpeed].
func NewWorld(cfg Config, rng *rand.Rand) *World {
	w := &World{
		Planets: make([]Planet, cfg.PlanetCount),
		Ships:   make([]Ship, cfg.ShipCount),
	}

	for i := range w.Planets {
		radius := uniform(rng, cfg.MinPlanetRadius, cfg.MaxPlanetRadius)
		w.Planets[i] = Planet{
			Pos:  randomPoint(rng, cfg.AreaSize),
			Mass: radius * radius,
		}
	}

	for i := range w.Ships {
		speed := uniform(rng, cfg.MinShipSpeed, cfg.MaxShipSpeed)
		angle := rng.Float64() * 2 * math.Pi
		w.Ships[i] = Ship{
			Pos: randomPoint(rng, cfg.AreaSize),
			Vel: vec.New(math.Cos(angle)*speed, math.Sin(angle)*speed, 0),
		}
	}

	return w
}

// randomPoint draws a uniform position in [-area, area]^2.
func randomPoint(rng *rand.Rand, area float64) vec.Vec3 {
	return vec.New(
		uniform(rng, -area, area),
		uniform(rng, -area, area),
		0,
	)
}

// uniform draws from [min, max). min <= max is a documented precondition.
func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
