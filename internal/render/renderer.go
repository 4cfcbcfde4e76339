package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/udisondev/ghostchase/internal/game/geo"
	"github.com/udisondev/ghostchase/internal/model"
	"github.com/udisondev/ghostchase/internal/vecmath"
	"github.com/udisondev/ghostchase/internal/world"
)

// Glyphs. Every map cell is drawn two columns wide so emoji line up.
const (
	glyphWall     = "🧱"
	glyphFloor    = " "
	glyphPickup   = "🍬"
	glyphPlayer   = "🙂"
	glyphDead     = "💀"
	glyphEnemy    = "👹"
	glyphGhost    = "👻"
	glyphStunned  = "😲"
	glyphDissolve = "💨"
)

// cellWidth is the screen width of one map cell.
const cellWidth = 2

// hudRows is the number of rows below the map.
const hudRows = 3

// Renderer draws scene views onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// DrawFrame renders the map, actors and HUD, then shows the screen.
func (r *Renderer) DrawFrame(v world.View) {
	r.screen.Clear()
	r.drawMap(v)
	r.drawActors(v)
	r.drawHUD(v)
	r.screen.Show()
}

func (r *Renderer) drawMap(v world.View) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for z, row := range v.Walls {
		for x := range len(row) {
			glyph := glyphFloor
			if row[x] == geo.GlyphWall {
				glyph = glyphWall
			}
			r.putGlyph(x*cellWidth, z, glyph, style)
		}
	}
}

func (r *Renderer) drawActors(v world.View) {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)

	for _, p := range v.Pickups {
		r.putAt(v.Grid, p, glyphPickup, base)
	}

	if v.Enemy.Present {
		r.putAt(v.Grid, v.Enemy.Pos, glyphEnemy, base)
	}

	if v.Player.Present {
		glyph := glyphPlayer
		if !v.Player.Alive {
			glyph = glyphDead
		}
		r.putAt(v.Grid, v.Player.Pos, glyph, base)
	}

	if v.Ghost.Present {
		r.putAt(v.Grid, v.Ghost.Pos, ghostGlyph(v.Ghost), ghostStyle(v.Ghost, base))
	}
}

func ghostGlyph(g world.GhostView) string {
	switch g.Status {
	case model.StatusDissolving:
		if g.Dissolve <= 0 {
			return glyphDissolve
		}
		return glyphGhost
	case model.StatusStunned:
		return glyphStunned
	default:
		return glyphGhost
	}
}

func ghostStyle(g world.GhostView, base tcell.Style) tcell.Style {
	switch g.Status {
	case model.StatusDissolving:
		return base.Dim(g.Dissolve < 0.5)
	case model.StatusAttacking:
		return base.Foreground(tcell.ColorRed)
	default:
		return base
	}
}

// HUDLines returns the status lines drawn under the map.
func HUDLines(v world.View) []string {
	lines := []string{
		fmt.Sprintf("HP %d", v.Ghost.Health),
		fmt.Sprintf("%s  dissolve %3.0f%%  state %s  pickups %d/%d  enemy %s  tick %d",
			v.Ghost.Status, v.Ghost.Dissolve*100, v.Ghost.State,
			v.Player.Pickups, v.WinCount, v.Enemy.Mode, v.Tick),
	}

	switch v.Outcome {
	case world.OutcomeNone:
		lines = append(lines, "WASD move  arrows steer ghost  f strike  space respawn  q quit")
	case world.OutcomeWin:
		lines = append(lines, "YOU WIN! press any key")
	case world.OutcomeLose:
		lines = append(lines, "CAUGHT. press any key")
	default:
		lines = append(lines, fmt.Sprintf("run ended: %s", v.Outcome))
	}
	return lines
}

func (r *Renderer) drawHUD(v world.View) {
	top := len(v.Walls)
	styles := []tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
		tcell.StyleDefault.Foreground(tcell.ColorLightYellow),
		tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
	for i, line := range HUDLines(v) {
		r.drawText(0, top+i, line, styles[min(i, len(styles)-1)])
	}
}

// putAt draws glyph in the cell containing world position pos.
func (r *Renderer) putAt(grid *geo.Grid, pos vecmath.Vec3, glyph string, style tcell.Style) {
	c := grid.CellOf(pos)
	if !grid.InBounds(c) {
		return
	}
	r.putGlyph(int(c.X)*cellWidth, int(c.Z), glyph, style)
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) < cellWidth {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}

// ScreenSize returns the terminal size a view needs.
func ScreenSize(v world.View) (int, int) {
	w := 0
	if len(v.Walls) > 0 {
		w = len(v.Walls[0]) * cellWidth
	}
	for _, line := range HUDLines(v) {
		w = max(w, runewidth.StringWidth(line))
	}
	return w, len(v.Walls) + hudRows
}
