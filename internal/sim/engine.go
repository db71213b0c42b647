package sim

import "github.com/vovakirdan/gravswarm/internal/vec"

// minDistance floors the ship-to-planet distance so a ship sitting exactly
// on a planet still sees a finite force instead of a singularity.
const minDistance = 0.1

// bounceDamping is applied to the reflected velocity component on a boundary
// hit. The bounce is deliberately energy-lossy.
const bounceDamping = -0.5

// StepShip advances one ship by dt: gravitational force accumulated over all
// planets in index order, semi-implicit Euler integration, then per-axis
// boundary reflection. Ships have unit mass, so force and acceleration
// coincide.
//
// Every ship is independent of every other ship within a tick; this is the
// property the execution strategies exploit. The function allocates nothing
// and cannot fail.
func StepShip(s *Ship, planets []Planet, dt float64, cfg *Config) {
	var force vec.Vec3
	for i := range planets {
		toPlanet := planets[i].Pos.Sub(s.Pos)
		dist := toPlanet.Len()
		if dist < minDistance {
			dist = minDistance
		}
		magnitude := cfg.Gravity * planets[i].Mass / (dist * dist)
		force = force.Add(toPlanet.Normalize().Scale(magnitude))
	}

	s.Vel = s.Vel.Add(force.Scale(dt))
	s.Pos = s.Pos.Add(s.Vel.Scale(dt))

	// Reflection uses the post-integration position, so a fast ship can
	// tunnel past the wall before being clamped. Each axis is checked on its
	// own; a corner hit reflects both in the same step.
	area := cfg.AreaSize
	if s.Pos.X < -area || s.Pos.X > area {
		s.Vel.X *= bounceDamping
		s.Pos.X = clamp(s.Pos.X, -area, area)
	}
	if s.Pos.Y < -area || s.Pos.Y > area {
		s.Vel.Y *= bounceDamping
		s.Pos.Y = clamp(s.Pos.Y, -area, area)
	}
}

// clamp restricts a value to [min, max].
func clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
