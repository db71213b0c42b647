package sim

import (
	"hash/fnv"
	"math"

	"github.com/vovakirdan/gravswarm/internal/vec"
)

// Planet is a fixed attractor. Planets never move and exert no force on each
// other; they are immutable for the lifetime of a world.
type Planet struct {
	Pos  vec.Vec3
	Mass float64
}

// Ship is a massless particle pulled by every planet. Position and velocity
// are rewritten in place each tick.
type Ship struct {
	Pos vec.Vec3
	Vel vec.Vec3
}

// World is the full mutable simulation state. Both slices keep their length
// and ordering for the entire run, so an index is a stable identity for a
// ship or planet across ticks.
type World struct {
	Ships   []Ship
	Planets []Planet
	Tick    uint64 // Completed tick count since initialization
}

// Snapshot captures the complete ship state for determinism testing and
// strategy comparison. Planets are omitted: they cannot change after init.
type Snapshot struct {
	Tick  uint64
	Ships []Ship
}

// Snapshot returns a deep copy of the current ship state.
func (w *World) Snapshot() Snapshot {
	ships := make([]Ship, len(w.Ships))
	copy(ships, w.Ships)
	return Snapshot{Tick: w.Tick, Ships: ships}
}

// Hash returns a digest of the snapshot suitable for equality checks in
// determinism tests. Bit-identical states produce identical hashes.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	write := func(f float64) {
		bits := math.Float64bits(f)
		for i := range buf {
			buf[i] = byte(bits >> (8 * i))
		}
		h.Write(buf[:])
	}
	for i := range buf {
		buf[i] = byte(s.Tick >> (8 * i))
	}
	h.Write(buf[:])
	for _, ship := range s.Ships {
		write(ship.Pos.X)
		write(ship.Pos.Y)
		write(ship.Pos.Z)
		write(ship.Vel.X)
		write(ship.Vel.Y)
		write(ship.Vel.Z)
	}
	return h.Sum64()
}

// MaxDelta returns the largest absolute component-wise difference between
// two snapshots of the same population. Used to compare strategies within a
// floating-point tolerance.
func (s Snapshot) MaxDelta(o Snapshot) float64 {
	var max float64
	n := len(s.Ships)
	if len(o.Ships) < n {
		n = len(o.Ships)
	}
	for i := 0; i < n; i++ {
		for _, d := range []float64{
			s.Ships[i].Pos.X - o.Ships[i].Pos.X,
			s.Ships[i].Pos.Y - o.Ships[i].Pos.Y,
			s.Ships[i].Vel.X - o.Ships[i].Vel.X,
			s.Ships[i].Vel.Y - o.Ships[i].Vel.Y,
		} {
			if d < 0 {
				d = -d
			}
			if d > max {
				max = d
			}
		}
	}
	return max
}
