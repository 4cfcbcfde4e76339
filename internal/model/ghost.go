package model

import "github.com/udisondev/ghostchase/internal/vecmath"

// DissolveVisible is the dissolve level of a fully visible ghost.
const DissolveVisible = 1.0

// Ghost holds the mutable behavior state of the pursuing ghost.
// Position lives in the physical body; Ghost keeps everything the AI owns.
// Not safe for concurrent use: owned by a single tick loop.
type Ghost struct {
	maxHealth int32
	health    int32

	// dissolve is 1.0 when fully visible, 0.0 when gone.
	dissolve float64
	// dissolveStarted is an edge-triggered latch set once per health depletion.
	dissolveStarted bool

	// velocity.Y is the gravity-accumulated vertical velocity.
	velocity vecmath.Vec3
	yaw      float64
	status   Status
}

// NewGhost creates a Ghost at full health, fully visible, Neutral.
func NewGhost(maxHealth int32) *Ghost {
	if maxHealth < 1 {
		maxHealth = 1
	}
	return &Ghost{
		maxHealth: maxHealth,
		health:    maxHealth,
		dissolve:  DissolveVisible,
		status:    StatusNeutral,
	}
}

func (g *Ghost) MaxHealth() int32 {
	return g.maxHealth
}

func (g *Ghost) Health() int32 {
	return g.health
}

// SetHealth sets health clamped to [0, maxHealth].
func (g *Ghost) SetHealth(hp int32) {
	g.health = max(0, min(hp, g.maxHealth))
}

// Damage reduces health by amount. Returns true if health reached zero.
func (g *Ghost) Damage(amount int32) bool {
	if amount <= 0 {
		return g.health <= 0
	}
	g.SetHealth(g.health - amount)
	return g.health <= 0
}

// IsDepleted reports health at or below zero.
func (g *Ghost) IsDepleted() bool {
	return g.health <= 0
}

// IsFullHealth reports health at max.
func (g *Ghost) IsFullHealth() bool {
	return g.health == g.maxHealth
}

func (g *Ghost) DissolveLevel() float64 {
	return g.dissolve
}

// SetDissolveLevel sets dissolve level clamped to [0, 1].
func (g *Ghost) SetDissolveLevel(v float64) {
	g.dissolve = max(0, min(v, DissolveVisible))
}

// DissolveStarted reports the dissolve latch.
func (g *Ghost) DissolveStarted() bool {
	return g.dissolveStarted
}

// BeginDissolve sets the latch. Returns false if it was already set.
func (g *Ghost) BeginDissolve() bool {
	if g.dissolveStarted {
		return false
	}
	g.dissolveStarted = true
	return true
}

// EndDissolve clears the latch. Returns false if it was not set.
func (g *Ghost) EndDissolve() bool {
	if !g.dissolveStarted {
		return false
	}
	g.dissolveStarted = false
	return true
}

func (g *Ghost) Velocity() vecmath.Vec3 {
	return g.velocity
}

// SetHorizontalVelocity replaces X/Z and keeps the vertical component.
func (g *Ghost) SetHorizontalVelocity(v vecmath.Vec3) {
	g.velocity.X = v.X
	g.velocity.Z = v.Z
}

func (g *Ghost) VerticalVelocity() float64 {
	return g.velocity.Y
}

func (g *Ghost) SetVerticalVelocity(y float64) {
	g.velocity.Y = y
}

// Yaw returns facing in degrees.
func (g *Ghost) Yaw() float64 {
	return g.yaw
}

func (g *Ghost) SetYaw(deg float64) {
	g.yaw = deg
}

func (g *Ghost) Status() Status {
	return g.status
}

func (g *Ghost) SetStatus(s Status) {
	g.status = s
}

// Reset restores spawn state: full health, visible, facing 0, no velocity,
// latch cleared. Status is left for the next evaluation.
func (g *Ghost) Reset() {
	g.health = g.maxHealth
	g.dissolve = DissolveVisible
	g.dissolveStarted = false
	g.velocity = vecmath.Vec3{}
	g.yaw = 0
}
