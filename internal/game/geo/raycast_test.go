package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/ghostchase/internal/vecmath"
)

func TestRaycast_HitsWallFace(t *testing.T) {
	g, err := ParseGrid([]string{
		".....",
		".....",
		"..#..",
		".....",
		".....",
	}, 1)
	require.NoError(t, err)

	// from cell (2,0) center heading +Z toward the wall at (2,2)
	origin := g.CellCenter(Cell{2, 0})
	hit, ok := g.Raycast(origin, vecmath.New(0, 0, 1), 5)
	require.True(t, ok)

	assert.Equal(t, Cell{2, 2}, hit.Cell)
	assert.Equal(t, vecmath.New(0, 0, -1), hit.Normal)
	assert.InDelta(t, 1.5, hit.Distance, 1e-9)
}

func TestRaycast_SideFace(t *testing.T) {
	g, err := ParseGrid([]string{
		".....",
		".....",
		"..#..",
		".....",
		".....",
	}, 1)
	require.NoError(t, err)

	origin := g.CellCenter(Cell{0, 2})
	hit, ok := g.Raycast(origin, vecmath.New(1, 0, 0), 5)
	require.True(t, ok)
	assert.Equal(t, vecmath.New(-1, 0, 0), hit.Normal)
}

func TestRaycast_MissWhenTooShort(t *testing.T) {
	g, err := ParseGrid([]string{
		".....",
		".....",
		"..#..",
	}, 1)
	require.NoError(t, err)

	_, ok := g.Raycast(g.CellCenter(Cell{2, 0}), vecmath.New(0, 0, 1), 1.0)
	assert.False(t, ok)
}

func TestRaycast_GridEdgeIsWall(t *testing.T) {
	g := NewCenteredGrid(5, 5, 1)

	hit, ok := g.Raycast(vecmath.Zero, vecmath.New(-1, 0, 0), 10)
	require.True(t, ok)
	assert.Equal(t, vecmath.New(1, 0, 0), hit.Normal)
	assert.InDelta(t, 2.5, hit.Distance, 1e-9)
}

func TestRaycast_VerticalRayNeverHitsWalls(t *testing.T) {
	g := NewCenteredGrid(5, 5, 1)

	_, ok := g.Raycast(vecmath.New(0, 1, 0), vecmath.Down, 10)
	assert.False(t, ok)
}
