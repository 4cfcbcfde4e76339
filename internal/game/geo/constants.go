package geo

import "math"

// Pathfinding configuration.
const (
	MaxPathfindIterations = 7000
	MaxSmoothPasses       = 3

	// A* weights (one cell = 1).
	WeightCardinal = 1.0
	WeightDiagonal = math.Sqrt2
)

// Cell glyphs accepted by ParseGrid.
const (
	GlyphWall  = '#'
	GlyphFloor = '.'
)
