package model

import "github.com/udisondev/ghostchase/internal/vecmath"

// PathStatus reports how much of a requested route the planner could build.
type PathStatus int32

const (
	// PathComplete - route reaches the requested destination
	PathComplete PathStatus = iota
	// PathPartial - route ends at the closest reachable point
	PathPartial
	// PathInvalid - no route at all (start or goal unusable)
	PathInvalid
)

// String returns path status name
func (s PathStatus) String() string {
	switch s {
	case PathComplete:
		return "COMPLETE"
	case PathPartial:
		return "PARTIAL"
	case PathInvalid:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}

// Path is a planner result: waypoints in world space, start excluded.
type Path struct {
	Status PathStatus
	Points []vecmath.Vec3
}

// Complete reports whether the route reaches its destination.
func (p Path) Complete() bool {
	return p.Status == PathComplete
}
