package world

import (
	"log/slog"

	"github.com/udisondev/ghostchase/internal/config"
	"github.com/udisondev/ghostchase/internal/vecmath"
)

// Player is the pursued character: walks on input, collects pickups, dies on
// contact with a living enemy.
type Player struct {
	body    *Body
	cfg     config.Player
	pickups int
	alive   bool
}

// NewPlayer creates a living player on body.
func NewPlayer(body *Body, cfg config.Player) *Player {
	return &Player{body: body, cfg: cfg, alive: true}
}

func (p *Player) Position() vecmath.Vec3 {
	return p.body.Position()
}

func (p *Player) Alive() bool {
	return p.alive
}

func (p *Player) Pickups() int {
	return p.pickups
}

// Step moves the player along dir on the ground plane at full speed.
func (p *Player) Step(dt float64, dir vecmath.Vec3) {
	if !p.alive {
		return
	}
	dir = dir.Horizontal().Normalize()
	if dir.LenSq() == 0 {
		return
	}
	p.body.Move(dir.Scale(p.cfg.Speed * dt))
}

// Collect counts a pickup and reports whether the win count was reached.
func (p *Player) Collect() bool {
	p.pickups++
	slog.Info("pickup collected", "count", p.pickups, "win_count", p.cfg.WinCount)
	return p.pickups >= p.cfg.WinCount
}

// Kill removes the player from play.
func (p *Player) Kill() {
	if !p.alive {
		return
	}
	p.alive = false
	slog.Info("player caught", "pickups", p.pickups)
}

// Touches reports whether pos is within contact range.
func (p *Player) Touches(pos vecmath.Vec3) bool {
	return vecmath.Distance(p.Position().Horizontal(), pos.Horizontal()) <= p.cfg.ContactRadius
}

// Reaches reports whether pos is within pickup range.
func (p *Player) Reaches(pos vecmath.Vec3) bool {
	return vecmath.Distance(p.Position().Horizontal(), pos.Horizontal()) <= p.cfg.PickupRadius
}

// InStrikeRange reports whether pos can be struck.
func (p *Player) InStrikeRange(pos vecmath.Vec3) bool {
	return vecmath.Distance(p.Position().Horizontal(), pos.Horizontal()) <= p.cfg.StrikeRange
}
