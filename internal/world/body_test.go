package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/ghostchase/internal/game/geo"
	"github.com/udisondev/ghostchase/internal/vecmath"
)

// corridor is 5x3 with walls all around: floor cells x=1..3, z=1.
func corridor(t *testing.T) *geo.Grid {
	t.Helper()
	g, err := geo.ParseGrid([]string{
		"#####",
		"#...#",
		"#####",
	}, 1)
	require.NoError(t, err)
	return g
}

func TestBody_MoveOnFloor(t *testing.T) {
	g := corridor(t)
	b := NewBody(g, g.CellCenter(geo.Cell{X: 2, Z: 1}), DefaultBodyRadius)

	b.Move(vecmath.New(0.5, 0, 0))
	assert.InDelta(t, 0.5, b.Position().X, 1e-9)
	assert.True(t, b.IsGrounded())
}

func TestBody_WallStopsOneAxis(t *testing.T) {
	g := corridor(t)
	start := g.CellCenter(geo.Cell{X: 2, Z: 1})
	b := NewBody(g, start, DefaultBodyRadius)

	// Z runs into the wall, X slides
	b.Move(vecmath.New(0.4, 0, 0.4))
	assert.InDelta(t, start.X+0.4, b.Position().X, 1e-9)
	assert.InDelta(t, start.Z, b.Position().Z, 1e-9)
}

func TestBody_FloorPlane(t *testing.T) {
	g := corridor(t)
	b := NewBody(g, g.CellCenter(geo.Cell{X: 1, Z: 1}), DefaultBodyRadius)

	b.Move(vecmath.New(0, -1, 0))
	assert.Equal(t, FloorHeight, b.Position().Y)
	assert.True(t, b.IsGrounded())

	b.Move(vecmath.New(0, 2, 0))
	assert.InDelta(t, 2.0, b.Position().Y, 1e-9)
	assert.False(t, b.IsGrounded())

	// horizontal moves keep the grounded flag
	b.Move(vecmath.New(0.1, 0, 0))
	assert.False(t, b.IsGrounded())
}

func TestBody_TeleportOnlyWhileDisabled(t *testing.T) {
	g := corridor(t)
	start := g.CellCenter(geo.Cell{X: 1, Z: 1})
	b := NewBody(g, start, DefaultBodyRadius)
	dest := g.CellCenter(geo.Cell{X: 3, Z: 1})

	b.Teleport(dest)
	assert.Equal(t, start, b.Position(), "enabled body ignores teleport")

	b.SetEnabled(false)
	b.Move(vecmath.New(0.5, 0, 0))
	assert.Equal(t, start, b.Position(), "disabled body does not move")

	b.Teleport(dest)
	b.SetEnabled(true)
	assert.Equal(t, dest, b.Position())
}
