package ai

import (
	"log/slog"

	"github.com/udisondev/ghostchase/internal/config"
	"github.com/udisondev/ghostchase/internal/model"
	"github.com/udisondev/ghostchase/internal/vecmath"
)

// DissolveParam is the material parameter driven by the dissolve level.
const DissolveParam = "_Dissolve"

// DefeatFunc is called once when a dissolve sequence reaches zero.
type DefeatFunc func(ghost *model.Ghost)

// GhostFrame is the ghost's observation of the world, captured at tick start.
type GhostFrame struct {
	// Display state as currently observed (read-only for the AI).
	StateTag model.StateTag
	StateID  model.StateID

	// Discrete input.
	Held           model.DirectionSet
	RespawnPressed bool

	// Target position; ignored when HasTarget is false.
	Target    vecmath.Vec3
	HasTarget bool
}

// GhostAI drives the ghost: status machine, pursuit, gravity, dissolve and respawn.
// Tick order: respawn → dissolve latch → status → gravity → pursuit → status branch.
type GhostAI struct {
	ghost    *model.Ghost
	cfg      config.Ghost
	body     Mover
	probe    RayProbe
	display  Display
	surfaces []Surface

	// defeated is set once dissolve hits zero, cleared on respawn.
	defeated   bool
	defeatFunc DefeatFunc
}

// NewGhostAI creates a ghost controller. probe may be nil (controller
// grounded flag only); surfaces may be empty.
func NewGhostAI(
	ghost *model.Ghost,
	cfg config.Ghost,
	body Mover,
	probe RayProbe,
	display Display,
	surfaces []Surface,
) *GhostAI {
	return &GhostAI{
		ghost:    ghost,
		cfg:      cfg,
		body:     body,
		probe:    probe,
		display:  display,
		surfaces: surfaces,
	}
}

// SetDefeatFunc sets the dissolve-complete callback.
func (ai *GhostAI) SetDefeatFunc(fn DefeatFunc) {
	ai.defeatFunc = fn
}

// Ghost returns the controlled ghost state.
func (ai *GhostAI) Ghost() *model.Ghost {
	return ai.ghost
}

// Tick advances the ghost by dt seconds.
func (ai *GhostAI) Tick(dt float64, frame GhostFrame) {
	if frame.RespawnPressed {
		ai.Respawn()
	}

	ai.updateDissolveLatch()

	status := EvaluateStatus(StatusInput{
		DissolveStarted: ai.ghost.DissolveStarted(),
		Health:          ai.ghost.Health(),
		StateTag:        frame.StateTag,
		StateID:         frame.StateID,
	})
	ai.setStatus(status)

	ai.applyGravity(dt)

	// Dissolve is a timed sequence and keeps running without a target.
	if status == model.StatusDissolving {
		ai.dissolveTick(dt)
	}

	if !frame.HasTarget {
		return
	}

	ai.pursue(dt, frame.Target)

	switch status {
	case model.StatusNeutral:
		if frame.StateID == model.StateMove {
			ai.directionalOverride(dt, frame.Held)
		}
		ai.react()
	case model.StatusAttacking:
		ai.react()
	case model.StatusStunned:
		// Reaction clip playing, nothing to do
	}
}

// Respawn resets the ghost to its spawn pose at full health.
// The body is disabled for the teleport so no velocity carries over.
func (ai *GhostAI) Respawn() {
	ai.ghost.Reset()

	ai.body.SetEnabled(false)
	ai.body.Teleport(ai.cfg.Origin)
	ai.ghost.SetYaw(ai.cfg.OriginYaw)
	ai.body.SetEnabled(true)

	ai.publishDissolve()
	ai.display.RequestState(model.StateIdle, ai.cfg.BlendTime)
	ai.defeated = false

	slog.Info("ghost respawned",
		"health", ai.ghost.Health(),
		"origin", ai.cfg.Origin)
}

// updateDissolveLatch starts the dissolve once per health depletion and
// clears the latch once health is back to max.
func (ai *GhostAI) updateDissolveLatch() {
	if ai.ghost.IsDepleted() {
		if ai.ghost.BeginDissolve() {
			ai.display.RequestState(model.StateDissolve, ai.cfg.BlendTime)
			slog.Info("ghost dissolve started", "dissolve", ai.ghost.DissolveLevel())
		}
		return
	}

	if ai.ghost.IsFullHealth() && ai.ghost.EndDissolve() {
		if IsDebugEnabled() {
			slog.Debug("ghost dissolve latch cleared", "health", ai.ghost.Health())
		}
	}
}

func (ai *GhostAI) setStatus(status model.Status) {
	old := ai.ghost.Status()
	ai.ghost.SetStatus(status)

	if old != status && IsDebugEnabled() {
		slog.Debug("ghost status changed",
			"from", old,
			"to", status,
			"health", ai.ghost.Health())
	}
}

// applyGravity accumulates downward velocity per tick. While grounded the
// velocity is floored so the body keeps pressing into the ground without
// building up fall speed.
func (ai *GhostAI) applyGravity(dt float64) {
	if !ai.body.Enabled() {
		return
	}

	vy := ai.ghost.VerticalVelocity()
	if ai.grounded() && vy < ai.cfg.GroundedVelocity {
		vy = ai.cfg.GroundedVelocity
	}
	vy -= ai.cfg.GravityStep
	ai.ghost.SetVerticalVelocity(vy)

	ai.body.Move(vecmath.Vec3{Y: vy * dt})
}

// grounded trusts the body's flag first and falls back to a short downward
// probe, which covers frames where the controller lags a tick behind.
func (ai *GhostAI) grounded() bool {
	if ai.body.Enabled() && ai.body.IsGrounded() {
		return true
	}
	if ai.probe == nil {
		return false
	}
	origin := ai.body.Position().Add(vecmath.Up.Scale(ai.cfg.GroundProbeOffset))
	_, hit := ai.probe.Cast(origin, vecmath.Down, ai.cfg.GroundProbeLength)
	return hit
}

// pursue moves toward the target on the ground plane and requests the attack
// when in range. Both requests may be issued in the same tick.
func (ai *GhostAI) pursue(dt float64, target vecmath.Vec3) {
	toTarget := target.Sub(ai.body.Position()).Horizontal()
	dist := toTarget.Len()

	if dist <= ai.cfg.ChaseDistance {
		velocity := toTarget.Normalize().Scale(ai.cfg.Speed)
		ai.ghost.SetHorizontalVelocity(velocity)
		ai.body.Move(velocity.Scale(dt))
		ai.display.RequestState(model.StateMove, ai.cfg.BlendTime)
	}

	if dist <= ai.cfg.AttackDistance {
		ai.display.RequestState(model.StateAttack, ai.cfg.BlendTime)
	}

	if IsDebugEnabled() {
		slog.Debug("ghost pursuit",
			"distance", dist,
			"chase", dist <= ai.cfg.ChaseDistance,
			"attack", dist <= ai.cfg.AttackDistance)
	}
}

// directionalOverride replaces the horizontal velocity with a compass
// direction at full speed and snaps the facing. Up wins over Down, Down over
// Left, Left over Right.
func (ai *GhostAI) directionalOverride(dt float64, held model.DirectionSet) {
	speed := ai.cfg.Speed

	var velocity vecmath.Vec3
	var yaw float64
	switch {
	case held.Has(model.DirUp):
		velocity, yaw = vecmath.Vec3{Z: -speed}, 180
	case held.Has(model.DirDown):
		velocity, yaw = vecmath.Vec3{Z: speed}, 0
	case held.Has(model.DirLeft):
		velocity, yaw = vecmath.Vec3{X: speed}, 90
	case held.Has(model.DirRight):
		velocity, yaw = vecmath.Vec3{X: -speed}, 270
	default:
		return
	}

	ai.ghost.SetHorizontalVelocity(velocity)
	if ai.body.Enabled() {
		ai.body.Move(velocity.Scale(dt))
	}
	ai.ghost.SetYaw(yaw)
}

// react requests the surprised reaction clip.
func (ai *GhostAI) react() {
	ai.display.RequestState(model.StateSurprised, ai.cfg.BlendTime)
}

// dissolveTick fades the ghost out. At zero the ghost is dead: health is
// pinned to zero and the defeat callback fires once.
func (ai *GhostAI) dissolveTick(dt float64) {
	ai.ghost.SetDissolveLevel(ai.ghost.DissolveLevel() - dt*ai.cfg.DissolveRate)
	ai.publishDissolve()

	if ai.ghost.DissolveLevel() > 0 {
		return
	}

	ai.ghost.SetHealth(0)
	if ai.defeated {
		return
	}
	ai.defeated = true

	slog.Info("ghost dissolved")
	if ai.defeatFunc != nil {
		ai.defeatFunc(ai.ghost)
	}
}

func (ai *GhostAI) publishDissolve() {
	level := ai.ghost.DissolveLevel()
	for _, s := range ai.surfaces {
		s.SetParameter(DissolveParam, level)
	}
}
