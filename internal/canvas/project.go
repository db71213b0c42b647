package canvas

import "github.com/vovakirdan/gravswarm/internal/vec"

// Viewport maps simulation coordinates in [-Area, Area]^2 onto a cell grid.
// The whole square domain is always visible; aspect distortion from
// non-square terminals is accepted rather than letterboxed.
type Viewport struct {
	Area float64 // Half-extent of the simulation domain
	W, H int     // Target grid size in cells
}

// ToCell projects a world position to cell coordinates.
// The bool result is false when the projected cell falls outside the grid,
// which can only happen for positions outside the domain.
func (v Viewport) ToCell(p vec.Vec3) (int, int, bool) {
	if v.W <= 0 || v.H <= 0 || v.Area <= 0 {
		return 0, 0, false
	}

	// Normalize to [0, 1], then scale. Y is flipped: world +Y is up,
	// screen +Y is down.
	nx := (p.X + v.Area) / (2 * v.Area)
	ny := 1 - (p.Y+v.Area)/(2*v.Area)

	x := int(nx * float64(v.W))
	y := int(ny * float64(v.H))

	// The +Area edge lands exactly on the grid boundary; pull it in.
	if x == v.W && nx <= 1 {
		x = v.W - 1
	}
	if y == v.H && ny <= 1 {
		y = v.H - 1
	}

	if x < 0 || x >= v.W || y < 0 || y >= v.H {
		return 0, 0, false
	}
	return x, y, true
}
