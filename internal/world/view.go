package world

import (
	"slices"

	"github.com/udisondev/ghostchase/internal/ai"
	"github.com/udisondev/ghostchase/internal/game/geo"
	"github.com/udisondev/ghostchase/internal/model"
	"github.com/udisondev/ghostchase/internal/vecmath"
)

// ActorView is the rendered part of any actor.
type ActorView struct {
	ID      uint32
	Present bool
	Pos     vecmath.Vec3
}

type GhostView struct {
	ActorView
	Health    int32
	MaxHealth int32
	Status    model.Status
	State     model.StateID
	Dissolve  float64
	Yaw       float64
}

type EnemyView struct {
	ActorView
	Mode        ai.NavMode
	Destination vecmath.Vec3
}

type PlayerView struct {
	ActorView
	Alive   bool
	Pickups int
}

// View is a copy of the scene state for renderers.
type View struct {
	// Grid and Walls are shared and must not be modified.
	Grid  *geo.Grid
	Walls []string

	Tick     uint64
	Ghost    GhostView
	Enemy    EnemyView
	Player   PlayerView
	Pickups  []vecmath.Vec3
	WinCount int
	Outcome  Outcome
	Stats    Stats
}

// View returns a consistent snapshot. Safe to call from any goroutine.
func (s *Scene) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Grid:     s.layout.Grid,
		Walls:    s.walls,
		Tick:     s.stats.Ticks,
		Pickups:  slices.Clone(s.pickups),
		WinCount: s.cfg.Player.WinCount,
		Outcome:  s.outcome,
		Stats:    s.stats,
	}

	if g := s.ghost; g != nil {
		state := g.ai.Ghost()
		v.Ghost = GhostView{
			ActorView: ActorView{ID: g.id, Present: true, Pos: g.body.Position()},
			Health:    state.Health(),
			MaxHealth: state.MaxHealth(),
			Status:    state.Status(),
			State:     g.animator.CurrentStateID(),
			Dissolve:  state.DissolveLevel(),
			Yaw:       state.Yaw(),
		}
	}

	if e := s.enemy; e != nil {
		v.Enemy = EnemyView{
			ActorView:   ActorView{ID: e.id, Present: !e.destroyed, Pos: e.agent.Position()},
			Mode:        e.decision.Mode,
			Destination: e.decision.Destination,
		}
	}

	if p := s.player; p != nil {
		v.Player = PlayerView{
			ActorView: ActorView{ID: s.playerID, Present: true, Pos: p.Position()},
			Alive:     p.Alive(),
			Pickups:   p.Pickups(),
		}
	}

	return v
}
