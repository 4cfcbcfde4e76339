package world

import (
	"github.com/udisondev/ghostchase/internal/game/geo"
	"github.com/udisondev/ghostchase/internal/model"
	"github.com/udisondev/ghostchase/internal/vecmath"
)

// NavAgent is a path-following body. SetDestination plans a route over the
// grid and Advance walks it at constant speed.
type NavAgent struct {
	grid           *geo.Grid
	pos            vecmath.Vec3
	forward        vecmath.Vec3
	speed          float64
	stoppingRadius float64

	route       []vecmath.Vec3
	destination vecmath.Vec3
}

// NewNavAgent creates an agent at pos facing +Z.
func NewNavAgent(grid *geo.Grid, pos vecmath.Vec3, speed, stoppingRadius float64) *NavAgent {
	return &NavAgent{
		grid:           grid,
		pos:            pos,
		forward:        vecmath.Forward(0),
		speed:          speed,
		stoppingRadius: stoppingRadius,
		destination:    pos,
	}
}

func (n *NavAgent) Position() vecmath.Vec3 {
	return n.pos
}

// Forward returns the heading of the last step.
func (n *NavAgent) Forward() vecmath.Vec3 {
	return n.forward
}

// ComputePath plans a route without changing the current one.
func (n *NavAgent) ComputePath(from, to vecmath.Vec3) model.Path {
	return n.grid.FindPath(from, to)
}

// SetDestination replans toward point. An unreachable point still yields a
// route to the closest reachable cell; an invalid request clears the route.
func (n *NavAgent) SetDestination(point vecmath.Vec3) {
	n.destination = point

	path := n.grid.FindPath(n.pos, point)
	if path.Status == model.PathInvalid {
		n.route = nil
		return
	}
	n.route = path.Points
}

// Destination returns the last commanded destination.
func (n *NavAgent) Destination() vecmath.Vec3 {
	return n.destination
}

// Remaining returns the route still to walk.
func (n *NavAgent) Remaining() []vecmath.Vec3 {
	return n.route
}

// Advance walks the route for dt seconds.
func (n *NavAgent) Advance(dt float64) {
	step := n.speed * dt

	for step > 0 && len(n.route) > 0 {
		next := n.route[0]
		next.Y = n.pos.Y

		to := next.Sub(n.pos)
		dist := to.Len()
		if dist > 0 {
			n.forward = to.Normalize()
		}

		if dist <= step || dist <= n.stoppingRadius {
			n.pos = next
			n.route = n.route[1:]
			step -= dist
			continue
		}

		n.pos = n.pos.Add(n.forward.Scale(step))
		step = 0
	}
}

