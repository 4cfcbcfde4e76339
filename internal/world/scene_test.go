package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/ghostchase/internal/ai"
	"github.com/udisondev/ghostchase/internal/config"
	"github.com/udisondev/ghostchase/internal/model"
	"github.com/udisondev/ghostchase/internal/vecmath"
)

// scriptedInput replays queued presses and a fixed player heading.
type scriptedInput struct {
	held     model.DirectionSet
	respawns int
	strikes  int
	move     vecmath.Vec3
}

func (in *scriptedInput) IsDirectionHeld(d model.Direction) bool { return in.held.Has(d) }
func (in *scriptedInput) MoveVector() vecmath.Vec3               { return in.move }

func (in *scriptedInput) IsRespawnPressed() bool {
	if in.respawns == 0 {
		return false
	}
	in.respawns--
	return true
}

func (in *scriptedInput) IsStrikePressed() bool {
	if in.strikes == 0 {
		return false
	}
	in.strikes--
	return true
}

func newTestScene(t *testing.T, text string, in Input, mutate ...func(*config.Sim)) (*Scene, float64) {
	t.Helper()

	l, err := ParseLayout(text, DefaultCellSize)
	require.NoError(t, err)

	cfg := config.Default()
	if pos, ok := l.Spawns[model.RoleGhost]; ok {
		cfg.Ghost.Origin = pos
	}
	for _, fn := range mutate {
		fn(&cfg)
	}

	s := New(cfg, l, in)
	s.Start()
	return s, cfg.TickInterval().Seconds()
}

func runUntilDone(s *Scene, dt float64, maxTicks int) {
	for range maxTicks {
		select {
		case <-s.Done():
			return
		default:
		}
		s.Tick(dt)
	}
}

func TestScene_MissingReferences(t *testing.T) {
	t.Run("ghost without player", func(t *testing.T) {
		s, dt := newTestScene(t, "#####\n#.G.#\n#####", nil)

		missing := s.MissingReferences()
		require.Len(t, missing, 1)
		assert.True(t, errors.Is(missing[0], ErrMissingReference))

		start := s.View().Ghost.Pos
		for range 10 {
			s.Tick(dt)
		}
		v := s.View()
		assert.Equal(t, start.Horizontal(), v.Ghost.Pos.Horizontal(), "no target, no pursuit")
		assert.Equal(t, OutcomeNone, v.Outcome)
	})

	t.Run("enemy alone", func(t *testing.T) {
		s, dt := newTestScene(t, "#####\n#.E.#\n#####", nil)
		assert.Len(t, s.MissingReferences(), 2)

		s.Tick(dt)
		assert.Equal(t, ai.NavIdle, s.View().Enemy.Mode)
	})

	t.Run("complete cast", func(t *testing.T) {
		s, _ := newTestScene(t, "#######\n#G.P.E#\n#######", nil)
		assert.Empty(t, s.MissingReferences())

		for _, role := range []model.Role{model.RolePlayer, model.RoleGhost, model.RoleEnemy} {
			_, ok := s.FindByRole(role)
			assert.True(t, ok, role.String())
		}
	})
}

func TestScene_StrikeDissolveRespawn(t *testing.T) {
	in := &scriptedInput{}
	s, dt := newTestScene(t, "###############\n#G...........P#\n###############", in)

	assert.True(t, s.StrikeGhost(1))
	assert.True(t, s.StrikeGhost(1))
	s.Tick(dt)
	assert.Equal(t, model.StatusNeutral, s.View().Ghost.Status)

	assert.True(t, s.StrikeGhost(1))
	assert.False(t, s.StrikeGhost(1), "depleted ghost cannot be struck")

	s.Tick(dt)
	v := s.View()
	assert.Equal(t, model.StatusDissolving, v.Ghost.Status)
	assert.Equal(t, int32(0), v.Ghost.Health)

	for range 40 {
		s.Tick(dt)
	}
	v = s.View()
	assert.Equal(t, 0.0, v.Ghost.Dissolve)
	assert.Equal(t, model.StateDissolve, v.Ghost.State)
	assert.Equal(t, 1, v.Stats.GhostDefeats)

	in.respawns = 1
	s.Tick(dt)
	v = s.View()
	assert.Equal(t, int32(3), v.Ghost.Health)
	assert.Equal(t, 1.0, v.Ghost.Dissolve)
	assert.Equal(t, model.StatusNeutral, v.Ghost.Status)
	assert.Equal(t, 1, v.Stats.Respawns)
	assert.Equal(t, 3, v.Stats.Strikes)
	assert.Equal(t, OutcomeNone, v.Outcome)
}

func TestScene_InputStrikeNeedsRange(t *testing.T) {
	in := &scriptedInput{strikes: 1}
	s, dt := newTestScene(t, "###############\n#G...........P#\n###############", in)

	s.Tick(dt)
	assert.Equal(t, 0, s.View().Stats.Strikes, "ghost out of reach")

	near := &scriptedInput{strikes: 1}
	s, dt = newTestScene(t, "#######\n#P.G..#\n#######", near)

	s.Tick(dt)
	v := s.View()
	assert.Equal(t, 1, v.Stats.Strikes)
	assert.Equal(t, int32(2), v.Ghost.Health)
}

func TestScene_GhostCatchesPlayer(t *testing.T) {
	s, dt := newTestScene(t, "#########\n#G..P...#\n#########", nil)

	runUntilDone(s, dt, 300)

	select {
	case <-s.Done():
	default:
		t.Fatal("run did not finish")
	}

	v := s.View()
	assert.Equal(t, OutcomeLose, v.Outcome)
	assert.False(t, v.Player.Alive)

	res := s.Result()
	assert.Equal(t, OutcomeLose, res.Outcome)
	assert.False(t, res.EndedAt.Before(res.StartedAt))

	// finished scenes ignore further ticks
	ticks := res.Stats.Ticks
	s.Tick(dt)
	assert.Equal(t, ticks, s.Result().Stats.Ticks)
}

func TestScene_PickupsWin(t *testing.T) {
	in := &scriptedInput{move: vecmath.New(1, 0, 0)}
	s, dt := newTestScene(t, "###############\n#P**.........E#\n###############", in, func(c *config.Sim) {
		c.Player.WinCount = 2
	})

	runUntilDone(s, dt, 100)

	v := s.View()
	require.Equal(t, OutcomeWin, v.Outcome)
	assert.Equal(t, 2, v.Player.Pickups)
	assert.Equal(t, 2, v.Stats.Pickups)
	assert.Empty(t, v.Pickups)
	assert.False(t, v.Enemy.Present, "enemy removed on win")
}

func TestScene_EnemyApproachesPlayer(t *testing.T) {
	s, dt := newTestScene(t, "###############\n#P...........E#\n###############", nil)

	before := s.View()
	s.Tick(dt)
	after := s.View()

	assert.Equal(t, ai.NavSeek, after.Enemy.Mode)
	assert.Less(t,
		vecmath.Distance(after.Enemy.Pos, after.Player.Pos),
		vecmath.Distance(before.Enemy.Pos, before.Player.Pos))
}

func TestScene_Timeout(t *testing.T) {
	s, dt := newTestScene(t, "###\n#P#\n###", nil, func(c *config.Sim) {
		c.MaxTicks = 5
	})

	runUntilDone(s, dt, 100)

	res := s.Result()
	assert.Equal(t, OutcomeTimeout, res.Outcome)
	assert.Equal(t, uint64(5), res.Stats.Ticks)
}

func TestScene_StopInterrupts(t *testing.T) {
	s, dt := newTestScene(t, "###\n#P#\n###", nil)
	s.Tick(dt)

	s.Stop()
	s.Stop()

	<-s.Done()
	assert.Equal(t, OutcomeInterrupted, s.Outcome())
}

func TestScene_RegisteredWithTickManager(t *testing.T) {
	s, _ := newTestScene(t, "###\n#P#\n###", nil)

	var _ ai.Controller = s

	mgr := ai.NewTickManager(config.Default().TickInterval())
	mgr.Register(1, s)
	mgr.Unregister(1)

	assert.Equal(t, OutcomeInterrupted, s.Outcome())
}
