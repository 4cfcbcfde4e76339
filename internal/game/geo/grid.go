package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/udisondev/ghostchase/internal/vecmath"
)

// ErrOutOfBounds is returned when a cell lies outside the grid.
var ErrOutOfBounds = errors.New("cell out of bounds")

// Cell is a grid coordinate on the ground plane: X columns, Z rows.
type Cell struct {
	X, Z int32
}

// Grid is a walkability map over the XZ plane.
// Immutable after construction apart from SetBlocked during setup.
type Grid struct {
	width, height int32
	cellSize      float64
	minX, minZ    float64
	blocked       []bool
}

// NewGrid creates an all-walkable grid whose cell (0,0) starts at (minX, minZ).
func NewGrid(width, height int32, cellSize, minX, minZ float64) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Grid{
		width:    width,
		height:   height,
		cellSize: cellSize,
		minX:     minX,
		minZ:     minZ,
		blocked:  make([]bool, int(width)*int(height)),
	}
}

// NewCenteredGrid creates a grid centered on the world origin.
func NewCenteredGrid(width, height int32, cellSize float64) *Grid {
	return NewGrid(width, height, cellSize,
		-float64(width)*cellSize/2,
		-float64(height)*cellSize/2)
}

func (g *Grid) Width() int32 {
	return g.width
}

func (g *Grid) Height() int32 {
	return g.height
}

func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// InBounds reports whether c is inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Z >= 0 && c.Z < g.height
}

// SetBlocked marks a cell as wall or floor.
func (g *Grid) SetBlocked(c Cell, blocked bool) error {
	if !g.InBounds(c) {
		return fmt.Errorf("set blocked %v: %w", c, ErrOutOfBounds)
	}
	g.blocked[g.index(c)] = blocked
	return nil
}

// Blocked reports whether c is a wall. Cells outside the grid are walls.
func (g *Grid) Blocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[g.index(c)]
}

// Walkable reports whether c is inside the grid and not a wall.
func (g *Grid) Walkable(c Cell) bool {
	return !g.Blocked(c)
}

// CellOf returns the cell containing a world position (Y ignored).
func (g *Grid) CellOf(p vecmath.Vec3) Cell {
	return Cell{
		X: int32(math.Floor((p.X - g.minX) / g.cellSize)),
		Z: int32(math.Floor((p.Z - g.minZ) / g.cellSize)),
	}
}

// CellCenter returns the world position at the center of c, on the ground plane.
func (g *Grid) CellCenter(c Cell) vecmath.Vec3 {
	return vecmath.Vec3{
		X: g.minX + (float64(c.X)+0.5)*g.cellSize,
		Z: g.minZ + (float64(c.Z)+0.5)*g.cellSize,
	}
}

func (g *Grid) index(c Cell) int {
	return int(c.Z)*int(g.width) + int(c.X)
}

// ParseGrid builds a centered grid from rows of glyphs. '#' is a wall, anything
// else is floor. All rows must have the same length.
func ParseGrid(rows []string, cellSize float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("parse grid: empty layout")
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("parse grid: row %d has %d cells, want %d", i, len(row), width)
		}
	}

	g := NewCenteredGrid(int32(width), int32(len(rows)), cellSize)
	for z, row := range rows {
		for x := range len(row) {
			if row[x] == GlyphWall {
				g.blocked[g.index(Cell{X: int32(x), Z: int32(z)})] = true
			}
		}
	}
	return g, nil
}
