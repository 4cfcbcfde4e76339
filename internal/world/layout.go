package world

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/udisondev/ghostchase/internal/game/geo"
	"github.com/udisondev/ghostchase/internal/model"
	"github.com/udisondev/ghostchase/internal/vecmath"
)

// Layout glyphs. Anything that is not a wall is floor.
const (
	GlyphGhost  = 'G'
	GlyphEnemy  = 'E'
	GlyphPlayer = 'P'
	GlyphPickup = '*'
)

// DefaultCellSize is the world size of one layout cell.
const DefaultCellSize = 1.0

// ErrBadLayout is returned for empty, ragged or ambiguous layouts.
var ErrBadLayout = errors.New("bad layout")

// DefaultLayout is the built-in arena. The ghost spawns in the middle so the
// world origin (its respawn point) is a floor cell.
const DefaultLayout = `
#######################
#*.......#.....#.....*#
#.####...#..*..#...##.#
#.#..*...........*..#.#
#.#..##.#######.##..#.#
#...E.................#
#.#..##...*.*...##..#.#
#.#*......#G#......*#.#
#.#..##...*.*...##..#.#
#.....................#
#.#..##.#######.##..#.#
#.#..*...........*..#.#
#.####...#..*..#...##.#
#*.......#..P..#.....*#
#######################
`

// Layout is a parsed arena: walkability plus spawn points.
type Layout struct {
	Rows    []string
	Grid    *geo.Grid
	Spawns  map[model.Role]vecmath.Vec3
	Pickups []vecmath.Vec3

	// Fingerprint identifies the arena in run history. Same rows and cell
	// size give the same fingerprint.
	Fingerprint string
}

// ParseLayout parses an ASCII arena. Blank leading and trailing lines are
// ignored. Each role may appear at most once; a missing role is allowed and
// reported at wiring.
func ParseLayout(text string, cellSize float64) (*Layout, error) {
	rows := splitRows(text)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadLayout)
	}

	grid, err := geo.ParseGrid(rows, cellSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadLayout, err)
	}

	l := &Layout{
		Rows:        rows,
		Grid:        grid,
		Spawns:      make(map[model.Role]vecmath.Vec3, 3),
		Fingerprint: fingerprint(rows, cellSize),
	}

	for z, row := range rows {
		for x := range len(row) {
			pos := grid.CellCenter(geo.Cell{X: int32(x), Z: int32(z)})

			var role model.Role
			switch row[x] {
			case GlyphGhost:
				role = model.RoleGhost
			case GlyphEnemy:
				role = model.RoleEnemy
			case GlyphPlayer:
				role = model.RolePlayer
			case GlyphPickup:
				l.Pickups = append(l.Pickups, pos)
				continue
			default:
				continue
			}

			if _, dup := l.Spawns[role]; dup {
				return nil, fmt.Errorf("%w: %s placed twice (row %d, col %d)", ErrBadLayout, role, z, x)
			}
			l.Spawns[role] = pos
		}
	}

	return l, nil
}

// LoadLayout reads a layout file. An empty path selects DefaultLayout.
func LoadLayout(path string, cellSize float64) (*Layout, error) {
	if path == "" {
		return ParseLayout(DefaultLayout, cellSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout %s: %w", path, err)
	}

	l, err := ParseLayout(string(data), cellSize)
	if err != nil {
		return nil, fmt.Errorf("parsing layout %s: %w", path, err)
	}
	return l, nil
}

// Walls returns the rows with spawn and pickup glyphs replaced by floor.
func (l *Layout) Walls() []string {
	out := make([]string, len(l.Rows))
	for i, row := range l.Rows {
		out[i] = strings.Map(func(r rune) rune {
			if r == geo.GlyphWall {
				return r
			}
			return geo.GlyphFloor
		}, row)
	}
	return out
}

// fingerprint hashes the normalized rows and the cell size with BLAKE2b-256.
func fingerprint(rows []string, cellSize float64) string {
	h, _ := blake2b.New256(nil) // nil key never fails
	for _, row := range rows {
		h.Write([]byte(row))
		h.Write([]byte{'\n'})
	}
	h.Write([]byte(strconv.FormatFloat(cellSize, 'g', -1, 64)))
	return hex.EncodeToString(h.Sum(nil))
}

func splitRows(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}

	rows := make([]string, 0, end-start)
	for _, line := range lines[start:end] {
		rows = append(rows, strings.TrimRight(line, " \t"))
	}
	return rows
}
