package ai

import (
	"github.com/udisondev/ghostchase/internal/model"
	"github.com/udisondev/ghostchase/internal/vecmath"
)

// Mover is the physical body of an agent (character-controller style).
type Mover interface {
	Position() vecmath.Vec3
	IsGrounded() bool
	Move(displacement vecmath.Vec3)
	Enabled() bool
	// SetEnabled toggles collision and movement. Disabling allows a clean teleport.
	SetEnabled(enabled bool)
	// Teleport places the body without sweeping. Only honored while disabled.
	Teleport(pos vecmath.Vec3)
}

// RayProbe casts a ray and reports the surface normal of the first hit.
type RayProbe interface {
	Cast(origin, dir vecmath.Vec3, maxDist float64) (normal vecmath.Vec3, hit bool)
}

// Display receives fire-and-forget state requests (animation cross-fades).
type Display interface {
	RequestState(id model.StateID, blendTime float64)
}

// Surface is a render surface whose material parameters the AI drives.
type Surface interface {
	SetParameter(name string, value float64)
}

// NavBody is the pose of a path-following agent.
type NavBody interface {
	Position() vecmath.Vec3
	Forward() vecmath.Vec3
}

// PathPlanner computes routes and accepts a destination to walk to.
type PathPlanner interface {
	ComputePath(from, to vecmath.Vec3) model.Path
	SetDestination(point vecmath.Vec3)
}
