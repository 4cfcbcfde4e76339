package world

import (
	"github.com/udisondev/ghostchase/internal/game/geo"
	"github.com/udisondev/ghostchase/internal/vecmath"
)

// Probe casts rays against the arena walls and the floor plane.
type Probe struct {
	grid *geo.Grid
}

// NewProbe creates a probe over grid.
func NewProbe(grid *geo.Grid) *Probe {
	return &Probe{grid: grid}
}

// Cast returns the normal of the nearest wall face or floor within maxDist.
func (p *Probe) Cast(origin, dir vecmath.Vec3, maxDist float64) (vecmath.Vec3, bool) {
	dir = dir.Normalize()

	var normal vecmath.Vec3
	best := maxDist
	hit := false

	if wall, ok := p.grid.Raycast(origin, dir, maxDist); ok {
		normal, best, hit = wall.Normal, wall.Distance, true
	}

	if dir.Y < 0 && origin.Y >= FloorHeight {
		if d := (origin.Y - FloorHeight) / -dir.Y; d <= best {
			normal, hit = vecmath.Up, true
		}
	}

	return normal, hit
}
