package geo

import (
	"math"

	"github.com/udisondev/ghostchase/internal/vecmath"
)

// RaycastHit describes the first wall face a ray crosses.
type RaycastHit struct {
	Normal   vecmath.Vec3
	Distance float64
	Cell     Cell
}

// Raycast traces a ray against wall cells on the ground plane (grid DDA).
// dir need not be unit length; distances are measured along its normalized form.
// The returned normal is the face of the blocked cell the ray entered. Cells
// outside the grid count as walls.
func (g *Grid) Raycast(origin, dir vecmath.Vec3, maxDist float64) (RaycastHit, bool) {
	dir = dir.Normalize()
	if dir.X == 0 && dir.Z == 0 {
		// Purely vertical rays never reach a wall face
		return RaycastHit{}, false
	}

	cell := g.CellOf(origin)
	if g.Blocked(cell) {
		return RaycastHit{Normal: dir.Horizontal().Normalize().Scale(-1), Cell: cell}, true
	}

	stepX, tMaxX, tDeltaX := g.axisStep(origin.X, g.minX, cell.X, dir.X)
	stepZ, tMaxZ, tDeltaZ := g.axisStep(origin.Z, g.minZ, cell.Z, dir.Z)

	for {
		var t float64
		var normal vecmath.Vec3
		if tMaxX < tMaxZ {
			t = tMaxX
			cell.X += stepX
			tMaxX += tDeltaX
			normal = vecmath.Vec3{X: -float64(stepX)}
		} else {
			t = tMaxZ
			cell.Z += stepZ
			tMaxZ += tDeltaZ
			normal = vecmath.Vec3{Z: -float64(stepZ)}
		}

		if t > maxDist {
			return RaycastHit{}, false
		}
		if g.Blocked(cell) {
			return RaycastHit{Normal: normal, Distance: t, Cell: cell}, true
		}
	}
}

// axisStep returns the DDA step, distance to the first boundary and
// distance between boundaries along one axis.
func (g *Grid) axisStep(pos, lo float64, cell int32, d float64) (int32, float64, float64) {
	switch {
	case d > 0:
		boundary := lo + float64(cell+1)*g.cellSize
		return 1, (boundary - pos) / d, g.cellSize / d
	case d < 0:
		boundary := lo + float64(cell)*g.cellSize
		return -1, (boundary - pos) / d, g.cellSize / -d
	default:
		return 0, math.Inf(1), math.Inf(1)
	}
}
