package world

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/udisondev/ghostchase/internal/ai"
	"github.com/udisondev/ghostchase/internal/config"
	"github.com/udisondev/ghostchase/internal/model"
	"github.com/udisondev/ghostchase/internal/vecmath"
)

// ErrMissingReference is reported when an actor's target or peer is absent
// at wiring. The dependent capability stays inert; the scene still runs.
var ErrMissingReference = errors.New("missing reference")

// Outcome is how a run ended.
type Outcome int32

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
	OutcomeTimeout
	OutcomeInterrupted
)

// String returns outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Pose is a read-only position reference returned by FindByRole.
type Pose interface {
	Position() vecmath.Vec3
}

// Stats counts run events.
type Stats struct {
	Ticks        uint64
	Pickups      int
	Strikes      int
	GhostDefeats int
	Respawns     int
}

// Result summarizes a finished run.
type Result struct {
	StartedAt time.Time
	EndedAt   time.Time
	Outcome   Outcome
	Stats     Stats
	Layout    string // layout fingerprint
}

type ghostActor struct {
	id       uint32
	ai       *ai.GhostAI
	body     *Body
	animator *Animator
	surfaces []*Surface
	target   Pose
}

type enemyActor struct {
	id        uint32
	ai        *ai.NavigatorAI
	agent     *NavAgent
	target    Pose
	peer      Pose
	decision  ai.NavDecision
	destroyed bool
}

// Scene owns every actor of one arena and advances them together. It
// implements ai.Controller so a TickManager can drive it; View may be called
// from other goroutines.
type Scene struct {
	mu sync.Mutex

	cfg    config.Sim
	layout *Layout
	walls  []string
	probe  *Probe
	input  Input

	ghost    *ghostActor
	enemy    *enemyActor
	player   *Player
	playerID uint32
	pickups  []vecmath.Vec3

	missing []error

	stats     Stats
	outcome   Outcome
	startedAt time.Time
	endedAt   time.Time
	done      chan struct{}
	doneOnce  sync.Once
}

// New builds a scene from layout and wires every actor's references.
// A nil input means no input.
func New(cfg config.Sim, layout *Layout, input Input) *Scene {
	if input == nil {
		input = NoInput{}
	}

	s := &Scene{
		cfg:     cfg,
		layout:  layout,
		walls:   layout.Walls(),
		probe:   NewProbe(layout.Grid),
		input:   input,
		pickups: slices.Clone(layout.Pickups),
		done:    make(chan struct{}),
	}

	ids := NewEntityIDs()
	s.spawnPlayer(ids)
	s.spawnGhost(ids)
	s.spawnEnemy(ids)
	s.wire()

	return s
}

func (s *Scene) spawnPlayer(ids *EntityIDs) {
	pos, ok := s.layout.Spawns[model.RolePlayer]
	if !ok {
		return
	}
	s.player = NewPlayer(NewBody(s.layout.Grid, pos, DefaultBodyRadius), s.cfg.Player)
	s.playerID = ids.Next(model.RolePlayer)
}

func (s *Scene) spawnGhost(ids *EntityIDs) {
	pos, ok := s.layout.Spawns[model.RoleGhost]
	if !ok {
		return
	}

	if !vecmath.ApproxEqual(pos.Horizontal(), s.cfg.Ghost.Origin.Horizontal(), s.layout.Grid.CellSize()/2) {
		slog.Warn("ghost spawn differs from respawn origin",
			"spawn", pos,
			"origin", s.cfg.Ghost.Origin)
	}

	g := &ghostActor{
		id:       ids.Next(model.RoleGhost),
		body:     NewBody(s.layout.Grid, pos, DefaultBodyRadius),
		animator: NewAnimator(nil),
		surfaces: []*Surface{NewSurface("body"), NewSurface("eyes")},
	}

	sinks := make([]ai.Surface, len(g.surfaces))
	for i, surf := range g.surfaces {
		sinks[i] = surf
		surf.SetParameter(ai.DissolveParam, model.DissolveVisible)
	}

	state := model.NewGhost(s.cfg.Ghost.MaxHealth)
	state.SetYaw(s.cfg.Ghost.OriginYaw)

	g.ai = ai.NewGhostAI(state, s.cfg.Ghost, g.body, s.probe, g.animator, sinks)
	g.ai.SetDefeatFunc(func(*model.Ghost) {
		s.stats.GhostDefeats++
	})
	s.ghost = g
}

func (s *Scene) spawnEnemy(ids *EntityIDs) {
	pos, ok := s.layout.Spawns[model.RoleEnemy]
	if !ok {
		return
	}

	agent := NewNavAgent(s.layout.Grid, pos, s.cfg.Navigator.Speed, s.cfg.Navigator.StoppingRadius)
	s.enemy = &enemyActor{
		id:    ids.Next(model.RoleEnemy),
		agent: agent,
		ai:    ai.NewNavigatorAI(agent, agent, s.probe, s.cfg.Navigator),
	}
}

// wire resolves target and peer references once, by role.
func (s *Scene) wire() {
	if s.ghost != nil {
		s.ghost.target = s.require(model.RoleGhost, model.RolePlayer)
	}
	if s.enemy != nil {
		s.enemy.target = s.require(model.RoleEnemy, model.RolePlayer)
		s.enemy.peer = s.require(model.RoleEnemy, model.RoleGhost)
	}
}

func (s *Scene) require(owner, role model.Role) Pose {
	pose, ok := s.FindByRole(role)
	if ok {
		return pose
	}

	err := fmt.Errorf("%s needs %s: %w", owner, role, ErrMissingReference)
	s.missing = append(s.missing, err)
	slog.Error("scene wiring", "error", err)
	return nil
}

// FindByRole returns the actor placed for role.
func (s *Scene) FindByRole(role model.Role) (Pose, bool) {
	switch role {
	case model.RolePlayer:
		if s.player != nil {
			return s.player, true
		}
	case model.RoleGhost:
		if s.ghost != nil {
			return s.ghost.body, true
		}
	case model.RoleEnemy:
		if s.enemy != nil {
			return s.enemy.agent, true
		}
	}
	return nil, false
}

// MissingReferences returns the wiring errors, each wrapping ErrMissingReference.
func (s *Scene) MissingReferences() []error {
	return slices.Clone(s.missing)
}

// Start implements ai.Controller.
func (s *Scene) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.startedAt = time.Now()
	slog.Info("scene started",
		"pickups", len(s.pickups),
		"player", s.player != nil,
		"ghost", s.ghost != nil,
		"enemy", s.enemy != nil)
}

// Stop implements ai.Controller. A run still in progress ends as interrupted.
func (s *Scene) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outcome == OutcomeNone {
		s.finish(OutcomeInterrupted)
	}
}

// snapshot holds every position read by the agents, captured before any
// agent moves so tick order does not leak into decisions.
type snapshot struct {
	player, ghost, enemy          vecmath.Vec3
	hasPlayer, hasGhost, hasEnemy bool
}

func (s *Scene) capture() snapshot {
	var snap snapshot
	if s.player != nil && s.player.Alive() {
		snap.player, snap.hasPlayer = s.player.Position(), true
	}
	if s.ghost != nil {
		snap.ghost, snap.hasGhost = s.ghost.body.Position(), true
	}
	if s.enemy != nil && !s.enemy.destroyed {
		snap.enemy, snap.hasEnemy = s.enemy.agent.Position(), true
	}
	return snap
}

// Tick implements ai.Controller: one simulation step of dt seconds.
func (s *Scene) Tick(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outcome != OutcomeNone {
		return
	}

	in := readInput(s.input)
	snap := s.capture()

	if in.strike {
		s.playerStrike(snap)
	}

	s.tickGhost(dt, in, snap)
	s.tickEnemy(dt, snap)

	if s.player != nil {
		s.player.Step(dt, in.move)
	}

	s.stats.Ticks++
	s.resolve()

	if s.outcome == OutcomeNone && s.cfg.MaxTicks > 0 && s.stats.Ticks >= s.cfg.MaxTicks {
		s.finish(OutcomeTimeout)
	}
}

func (s *Scene) tickGhost(dt float64, in inputFrame, snap snapshot) {
	g := s.ghost
	if g == nil {
		return
	}

	frame := ai.GhostFrame{
		StateTag:       g.animator.CurrentStateTag(),
		StateID:        g.animator.CurrentStateID(),
		Held:           in.held,
		RespawnPressed: in.respawn,
		Target:         snap.player,
		HasTarget:      g.target != nil && snap.hasPlayer,
	}
	if frame.RespawnPressed {
		s.stats.Respawns++
	}

	g.ai.Tick(dt, frame)
	g.animator.Advance(dt)
}

func (s *Scene) tickEnemy(dt float64, snap snapshot) {
	e := s.enemy
	if e == nil || e.destroyed {
		return
	}

	e.decision = e.ai.Tick(ai.NavFrame{
		Target:    snap.player,
		HasTarget: e.target != nil && snap.hasPlayer,
		Peer:      snap.ghost,
		HasPeer:   e.peer != nil && snap.hasGhost,
	})
	if e.decision.Mode != ai.NavIdle {
		e.agent.Advance(dt)
	}
}

// StrikeGhost applies damage to the ghost. Reports whether it landed.
func (s *Scene) StrikeGhost(amount int32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.strike(amount)
}

func (s *Scene) playerStrike(snap snapshot) {
	if !snap.hasPlayer || !snap.hasGhost || !s.player.InStrikeRange(snap.ghost) {
		if ai.IsDebugEnabled() {
			slog.Debug("strike missed")
		}
		return
	}
	s.strike(s.cfg.Player.StrikeDamage)
}

func (s *Scene) strike(amount int32) bool {
	if s.ghost == nil {
		return false
	}
	state := s.ghost.ai.Ghost()
	if state.IsDepleted() {
		return false
	}

	depleted := state.Damage(amount)
	s.stats.Strikes++
	slog.Info("ghost struck",
		"damage", amount,
		"health", state.Health(),
		"depleted", depleted)
	return true
}

// resolve handles pickups and contacts after everyone moved.
func (s *Scene) resolve() {
	p := s.player
	if p == nil || !p.Alive() {
		return
	}

	s.pickups = slices.DeleteFunc(s.pickups, func(pos vecmath.Vec3) bool {
		if s.outcome != OutcomeNone || !p.Reaches(pos) {
			return false
		}
		s.stats.Pickups++
		if p.Collect() {
			s.win()
		}
		return true
	})
	if s.outcome != OutcomeNone {
		return
	}

	if s.ghostIsLethal() && p.Touches(s.ghost.body.Position()) {
		s.lose(model.RoleGhost)
		return
	}
	if s.enemy != nil && !s.enemy.destroyed && p.Touches(s.enemy.agent.Position()) {
		s.lose(model.RoleEnemy)
	}
}

// ghostIsLethal reports whether the ghost can still catch the player.
func (s *Scene) ghostIsLethal() bool {
	if s.ghost == nil {
		return false
	}
	state := s.ghost.ai.Ghost()
	return !state.IsDepleted() && !state.DissolveStarted()
}

func (s *Scene) win() {
	if s.enemy != nil && !s.enemy.destroyed {
		s.enemy.destroyed = true
		slog.Info("enemy destroyed", "id", s.enemy.id)
	}
	s.finish(OutcomeWin)
}

func (s *Scene) lose(by model.Role) {
	s.player.Kill()
	slog.Info("player lost", "caught_by", by)
	s.finish(OutcomeLose)
}

func (s *Scene) finish(outcome Outcome) {
	s.outcome = outcome
	s.endedAt = time.Now()
	s.doneOnce.Do(func() { close(s.done) })

	slog.Info("run finished",
		"outcome", outcome,
		"ticks", s.stats.Ticks,
		"pickups", s.stats.Pickups,
		"strikes", s.stats.Strikes,
		"ghost_defeats", s.stats.GhostDefeats,
		"respawns", s.stats.Respawns)
}

// Done is closed when the run has an outcome.
func (s *Scene) Done() <-chan struct{} {
	return s.done
}

// Outcome returns the run outcome so far.
func (s *Scene) Outcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.outcome
}

// Result returns the run summary.
func (s *Scene) Result() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Result{
		StartedAt: s.startedAt,
		EndedAt:   s.endedAt,
		Outcome:   s.outcome,
		Stats:     s.stats,
		Layout:    s.layout.Fingerprint,
	}
}
