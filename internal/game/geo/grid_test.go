package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/ghostchase/internal/vecmath"
)

func TestNewCenteredGrid_OriginIsCellCenter(t *testing.T) {
	g := NewCenteredGrid(31, 21, 1)

	c := g.CellOf(vecmath.Zero)
	assert.Equal(t, Cell{X: 15, Z: 10}, c)
	assert.True(t, vecmath.ApproxEqual(vecmath.Zero, g.CellCenter(c), 1e-9))
}

func TestCellOf_RoundTrip(t *testing.T) {
	g := NewGrid(10, 10, 2, 0, 0)

	for x := range int32(10) {
		for z := range int32(10) {
			c := Cell{X: x, Z: z}
			assert.Equal(t, c, g.CellOf(g.CellCenter(c)))
		}
	}

	assert.Equal(t, Cell{X: -1, Z: 0}, g.CellOf(vecmath.New(-0.1, 0, 0.5)))
}

func TestBlocked_OutOfBoundsIsWall(t *testing.T) {
	g := NewGrid(3, 3, 1, 0, 0)

	assert.False(t, g.Blocked(Cell{1, 1}))
	assert.True(t, g.Blocked(Cell{-1, 1}))
	assert.True(t, g.Blocked(Cell{3, 0}))

	require.NoError(t, g.SetBlocked(Cell{1, 1}, true))
	assert.True(t, g.Blocked(Cell{1, 1}))
	assert.False(t, g.Walkable(Cell{1, 1}))

	err := g.SetBlocked(Cell{5, 5}, true)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid([]string{
		"###",
		"#.#",
		"###",
	}, 1)
	require.NoError(t, err)

	assert.Equal(t, int32(3), g.Width())
	assert.Equal(t, int32(3), g.Height())
	assert.True(t, g.Walkable(Cell{1, 1}))
	assert.True(t, g.Blocked(Cell{0, 0}))
	assert.Equal(t, Cell{1, 1}, g.CellOf(vecmath.Zero))
}

func TestParseGrid_Errors(t *testing.T) {
	_, err := ParseGrid(nil, 1)
	assert.Error(t, err)

	_, err = ParseGrid([]string{"...", ".."}, 1)
	assert.Error(t, err)
}

func TestLineIterator2D(t *testing.T) {
	it := NewLineIterator2D(Cell{0, 0}, Cell{3, 1})

	var cells []Cell
	for it.Next() {
		cells = append(cells, it.Cell())
	}

	require.NotEmpty(t, cells)
	assert.Equal(t, Cell{0, 0}, cells[0])
	assert.Equal(t, Cell{3, 1}, cells[len(cells)-1])
	assert.Len(t, cells, 4)
}

func TestCanMoveToTarget(t *testing.T) {
	g, err := ParseGrid([]string{
		".....",
		"..#..",
		".....",
	}, 1)
	require.NoError(t, err)

	left := g.CellCenter(Cell{0, 1})
	right := g.CellCenter(Cell{4, 1})
	top := g.CellCenter(Cell{0, 0})
	topRight := g.CellCenter(Cell{4, 0})

	assert.False(t, g.CanMoveToTarget(left, right), "wall in the middle")
	assert.True(t, g.CanMoveToTarget(top, topRight))
}

func TestCanMoveToTarget_NoCornerCut(t *testing.T) {
	g, err := ParseGrid([]string{
		".#",
		"..",
	}, 1)
	require.NoError(t, err)

	assert.False(t, g.CanMoveToTarget(g.CellCenter(Cell{0, 0}), g.CellCenter(Cell{1, 1})))
}
