package world

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/ghostchase/internal/model"
	"github.com/udisondev/ghostchase/internal/vecmath"
)

func TestParseLayout_Default(t *testing.T) {
	l, err := ParseLayout(DefaultLayout, DefaultCellSize)
	require.NoError(t, err)

	assert.Len(t, l.Rows, 15)
	assert.Equal(t, int32(23), l.Grid.Width())
	assert.Len(t, l.Pickups, 16)

	require.Contains(t, l.Spawns, model.RoleGhost)
	require.Contains(t, l.Spawns, model.RoleEnemy)
	require.Contains(t, l.Spawns, model.RolePlayer)
	assert.True(t, vecmath.ApproxEqual(vecmath.Zero, l.Spawns[model.RoleGhost], 1e-9),
		"ghost spawns on the world origin")

	for role, pos := range l.Spawns {
		assert.True(t, l.Grid.Walkable(l.Grid.CellOf(pos)), "%s spawn on floor", role)
	}
}

func TestParseLayout_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"blank lines", "\n\n  \n"},
		{"ragged", "#####\n#P.#\n#####"},
		{"duplicate ghost", "#####\n#G.G#\n#####"},
		{"duplicate player", "#P#\n#P#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLayout(tt.text, DefaultCellSize)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrBadLayout))
		})
	}
}

func TestParseLayout_MissingRolesAllowed(t *testing.T) {
	l, err := ParseLayout("###\n#.#\n###", DefaultCellSize)
	require.NoError(t, err)
	assert.Empty(t, l.Spawns)
	assert.Empty(t, l.Pickups)
}

func TestLayout_Walls(t *testing.T) {
	l, err := ParseLayout("#####\n#GP*#\n#####", DefaultCellSize)
	require.NoError(t, err)
	assert.Equal(t, []string{"#####", "#...#", "#####"}, l.Walls())
}

func TestLayout_Fingerprint(t *testing.T) {
	a, err := ParseLayout("###\n#G#\n###", 1)
	require.NoError(t, err)
	b, err := ParseLayout("\n###\r\n#G#\r\n###\n\n", 1)
	require.NoError(t, err)
	c, err := ParseLayout("###\n#G#\n###", 2)
	require.NoError(t, err)
	d, err := ParseLayout("###\n#E#\n###", 1)
	require.NoError(t, err)

	assert.Len(t, a.Fingerprint, 64)
	assert.Equal(t, a.Fingerprint, b.Fingerprint, "line endings and blank lines are normalized")
	assert.NotEqual(t, a.Fingerprint, c.Fingerprint, "cell size is part of the arena")
	assert.NotEqual(t, a.Fingerprint, d.Fingerprint)
}

func TestLoadLayout(t *testing.T) {
	t.Run("empty path uses built-in arena", func(t *testing.T) {
		l, err := LoadLayout("", DefaultCellSize)
		require.NoError(t, err)
		assert.Len(t, l.Pickups, 16)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "arena.txt")
		require.NoError(t, os.WriteFile(path, []byte("#####\r\n#G.P#\r\n#####\r\n"), 0o644))

		l, err := LoadLayout(path, 2)
		require.NoError(t, err)
		assert.Equal(t, 2.0, l.Grid.CellSize())
		assert.Len(t, l.Spawns, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadLayout(filepath.Join(t.TempDir(), "nope.txt"), DefaultCellSize)
		assert.Error(t, err)
	})
}
