package geo

// LineIterator2D steps through grid cells along a Bresenham line.
type LineIterator2D struct {
	currentX, currentZ int32
	targetX, targetZ   int32
	deltaX, deltaZ     int32
	stepX, stepZ       int32
	err                int32
	started            bool
}

// NewLineIterator2D creates a 2D Bresenham line iterator from a to b.
func NewLineIterator2D(a, b Cell) *LineIterator2D {
	it := &LineIterator2D{
		currentX: a.X, currentZ: a.Z,
		targetX: b.X, targetZ: b.Z,
		deltaX: abs32(b.X - a.X),
		deltaZ: -abs32(b.Z - a.Z),
		stepX:  1,
		stepZ:  1,
	}
	if a.X > b.X {
		it.stepX = -1
	}
	if a.Z > b.Z {
		it.stepZ = -1
	}
	it.err = it.deltaX + it.deltaZ
	return it
}

// Next advances the iterator to the next cell.
// The first call yields the start cell; returns false after the target.
func (it *LineIterator2D) Next() bool {
	if !it.started {
		it.started = true
		return true
	}

	if it.currentX == it.targetX && it.currentZ == it.targetZ {
		return false
	}

	e2 := 2 * it.err
	if e2 >= it.deltaZ {
		it.err += it.deltaZ
		it.currentX += it.stepX
	}
	if e2 <= it.deltaX {
		it.err += it.deltaX
		it.currentZ += it.stepZ
	}
	return true
}

// Cell returns the current cell.
func (it *LineIterator2D) Cell() Cell {
	return Cell{X: it.currentX, Z: it.currentZ}
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
