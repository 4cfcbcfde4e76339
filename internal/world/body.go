package world

import (
	"github.com/udisondev/ghostchase/internal/game/geo"
	"github.com/udisondev/ghostchase/internal/vecmath"
)

// FloorHeight is the Y of the arena floor plane.
const FloorHeight = 0.0

// DefaultBodyRadius is the collision radius of agents on the ground plane.
const DefaultBodyRadius = 0.3

// Body is a character-controller style mover over the arena grid. Horizontal
// movement is resolved per axis so bodies slide along walls; vertical
// movement stops at the floor plane.
type Body struct {
	grid     *geo.Grid
	pos      vecmath.Vec3
	radius   float64
	enabled  bool
	grounded bool
}

// NewBody creates an enabled body standing on the floor at pos.
func NewBody(grid *geo.Grid, pos vecmath.Vec3, radius float64) *Body {
	pos.Y = max(pos.Y, FloorHeight)
	return &Body{
		grid:     grid,
		pos:      pos,
		radius:   radius,
		enabled:  true,
		grounded: pos.Y <= FloorHeight,
	}
}

func (b *Body) Position() vecmath.Vec3 {
	return b.pos
}

// IsGrounded reports whether the last vertical movement ended on the floor.
func (b *Body) IsGrounded() bool {
	return b.grounded
}

func (b *Body) Enabled() bool {
	return b.enabled
}

func (b *Body) SetEnabled(enabled bool) {
	b.enabled = enabled
}

// Teleport places the body without collision. Ignored while enabled.
func (b *Body) Teleport(pos vecmath.Vec3) {
	if b.enabled {
		return
	}
	b.pos = pos
	b.grounded = pos.Y <= FloorHeight
}

// Move sweeps the body by d. Disabled bodies do not move.
func (b *Body) Move(d vecmath.Vec3) {
	if !b.enabled {
		return
	}

	if d.X != 0 {
		next := b.pos
		next.X += d.X
		if b.clear(next, sign(d.X), 0) {
			b.pos = next
		}
	}

	if d.Z != 0 {
		next := b.pos
		next.Z += d.Z
		if b.clear(next, 0, sign(d.Z)) {
			b.pos = next
		}
	}

	if d.Y != 0 {
		b.pos.Y += d.Y
		if b.pos.Y <= FloorHeight {
			b.pos.Y = FloorHeight
			b.grounded = true
		} else {
			b.grounded = false
		}
	}
}

// clear reports whether the leading edge of the body at pos is on floor.
func (b *Body) clear(pos vecmath.Vec3, sx, sz float64) bool {
	edge := vecmath.Vec3{X: pos.X + sx*b.radius, Z: pos.Z + sz*b.radius}
	return b.grid.Walkable(b.grid.CellOf(edge))
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
