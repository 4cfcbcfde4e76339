package geo

import "github.com/udisondev/ghostchase/internal/vecmath"

// CanMoveToTarget checks if direct movement between two world positions
// crosses only walkable cells. Diagonal steps must not cut a wall corner.
func (g *Grid) CanMoveToTarget(from, to vecmath.Vec3) bool {
	return g.canMoveCells(g.CellOf(from), g.CellOf(to))
}

func (g *Grid) canMoveCells(a, b Cell) bool {
	if g.Blocked(a) {
		return false
	}

	it := NewLineIterator2D(a, b)
	it.Next() // Skip start

	prev := a
	for it.Next() {
		cur := it.Cell()
		if g.Blocked(cur) {
			return false
		}

		// Anti-corner-cut: both adjacent cardinals must be passable
		if cur.X != prev.X && cur.Z != prev.Z {
			if g.Blocked(Cell{X: cur.X, Z: prev.Z}) || g.Blocked(Cell{X: prev.X, Z: cur.Z}) {
				return false
			}
		}
		prev = cur
	}

	return true
}
