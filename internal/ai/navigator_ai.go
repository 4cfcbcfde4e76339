package ai

import (
	"log/slog"

	"github.com/udisondev/ghostchase/internal/config"
	"github.com/udisondev/ghostchase/internal/vecmath"
)

// NavMode describes how the navigator picked its destination.
type NavMode int32

const (
	// NavIdle - no target this tick
	NavIdle NavMode = iota
	// NavSeek - complete path straight to the target
	NavSeek
	// NavPeerAvoid - complete path to the target point biased away from the peer
	NavPeerAvoid
	// NavReflect - path blocked, wall ahead: steer along the reflected heading
	NavReflect
	// NavRawTarget - path blocked, nothing ahead: head for the raw target
	NavRawTarget
)

// String returns nav mode name
func (m NavMode) String() string {
	switch m {
	case NavIdle:
		return "IDLE"
	case NavSeek:
		return "SEEK"
	case NavPeerAvoid:
		return "PEER_AVOID"
	case NavReflect:
		return "REFLECT"
	case NavRawTarget:
		return "RAW_TARGET"
	default:
		return "UNKNOWN"
	}
}

// NavFrame is the navigator's observation, captured at tick start.
type NavFrame struct {
	Target    vecmath.Vec3
	HasTarget bool
	Peer      vecmath.Vec3
	HasPeer   bool
}

// NavDecision is the destination commanded this tick.
type NavDecision struct {
	Mode        NavMode
	Destination vecmath.Vec3
}

// NavigatorAI steers a path-following enemy toward a target while keeping
// clear of a peer, falling back to local obstacle avoidance when the planner
// has no complete route.
type NavigatorAI struct {
	body    NavBody
	planner PathPlanner
	probe   RayProbe
	cfg     config.Navigator

	lastMode NavMode
}

// NewNavigatorAI creates a navigator. probe may be nil (fallback then always
// heads for the raw target).
func NewNavigatorAI(body NavBody, planner PathPlanner, probe RayProbe, cfg config.Navigator) *NavigatorAI {
	return &NavigatorAI{
		body:    body,
		planner: planner,
		probe:   probe,
		cfg:     cfg,
	}
}

// Tick computes and commands this tick's destination.
func (ai *NavigatorAI) Tick(frame NavFrame) NavDecision {
	if !frame.HasTarget {
		ai.trackMode(NavIdle)
		return NavDecision{Mode: NavIdle}
	}

	self := ai.body.Position()
	dest, avoided := PlanDestination(self, frame.Target, frame.Peer, frame.HasPeer, ai.cfg.AvoidanceRadius)

	decision := NavDecision{Mode: NavSeek, Destination: dest}
	if avoided {
		decision.Mode = NavPeerAvoid
	}

	path := ai.planner.ComputePath(self, dest)
	if !path.Complete() {
		if IsDebugEnabled() {
			slog.Debug("navigator path unavailable",
				"status", path.Status,
				"destination", dest)
		}
		decision = ai.avoidObstacles(self, frame.Target)
	}

	ai.planner.SetDestination(decision.Destination)
	ai.trackMode(decision.Mode)
	return decision
}

func (ai *NavigatorAI) avoidObstacles(self, target vecmath.Vec3) NavDecision {
	if ai.probe == nil {
		return NavDecision{Mode: NavRawTarget, Destination: target}
	}
	dest, reflected := AvoidObstacle(self, ai.body.Forward(), target, ai.probe, ai.cfg.DistanceToWall, ai.cfg.AvoidanceRadius)
	if reflected {
		return NavDecision{Mode: NavReflect, Destination: dest}
	}
	return NavDecision{Mode: NavRawTarget, Destination: dest}
}

func (ai *NavigatorAI) trackMode(mode NavMode) {
	if mode == ai.lastMode {
		return
	}
	if IsDebugEnabled() {
		slog.Debug("navigator mode changed", "from", ai.lastMode, "to", mode)
	}
	ai.lastMode = mode
}

// PlanDestination returns the target point, pushed radius units away from
// the peer when the peer is strictly closer than radius. Reports whether the
// bias was applied. A peer exactly on self gives no away direction and
// leaves the target unbiased.
func PlanDestination(self, target, peer vecmath.Vec3, hasPeer bool, radius float64) (vecmath.Vec3, bool) {
	if !hasPeer {
		return target, false
	}
	offset := self.Sub(peer)
	if offset.LenSq() == 0 || offset.Len() >= radius {
		return target, false
	}
	return target.Add(offset.Normalize().Scale(radius)), true
}

// AvoidObstacle probes distanceToWall ahead. On a hit the forward heading is
// reflected about the surface normal and a point radius units along it is
// returned; otherwise the raw target. Reports whether a reflection was used.
func AvoidObstacle(self, forward, target vecmath.Vec3, probe RayProbe, distanceToWall, radius float64) (vecmath.Vec3, bool) {
	normal, hit := probe.Cast(self, forward, distanceToWall)
	if !hit {
		return target, false
	}
	reflected := vecmath.Reflect(forward, normal)
	return self.Add(reflected.Scale(radius)), true
}
