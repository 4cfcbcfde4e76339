package ai

import (
	"github.com/udisondev/ghostchase/internal/model"
	"github.com/udisondev/ghostchase/internal/vecmath"
)

// fakeMover is an in-memory Mover recording every displacement.
type fakeMover struct {
	pos       vecmath.Vec3
	grounded  bool
	enabled   bool
	moves     []vecmath.Vec3
	teleports []vecmath.Vec3
	toggles   []bool
}

func newFakeMover(pos vecmath.Vec3) *fakeMover {
	return &fakeMover{pos: pos, grounded: true, enabled: true}
}

func (m *fakeMover) Position() vecmath.Vec3 { return m.pos }
func (m *fakeMover) IsGrounded() bool       { return m.grounded }
func (m *fakeMover) Enabled() bool          { return m.enabled }

func (m *fakeMover) Move(d vecmath.Vec3) {
	if !m.enabled {
		return
	}
	m.moves = append(m.moves, d)
	m.pos = m.pos.Add(d)
}

func (m *fakeMover) SetEnabled(enabled bool) {
	m.enabled = enabled
	m.toggles = append(m.toggles, enabled)
}

func (m *fakeMover) Teleport(pos vecmath.Vec3) {
	if m.enabled {
		return
	}
	m.teleports = append(m.teleports, pos)
	m.pos = pos
}

// horizontalMoves returns moves with a ground-plane component.
func (m *fakeMover) horizontalMoves() []vecmath.Vec3 {
	var out []vecmath.Vec3
	for _, d := range m.moves {
		if h := d.Horizontal(); h.LenSq() > 0 {
			out = append(out, h)
		}
	}
	return out
}

// fakeProbe returns a fixed answer and records casts.
type fakeProbe struct {
	normal vecmath.Vec3
	hit    bool
	casts  int
}

func (p *fakeProbe) Cast(_, _ vecmath.Vec3, _ float64) (vecmath.Vec3, bool) {
	p.casts++
	return p.normal, p.hit
}

// fakeDisplay records state requests.
type fakeDisplay struct {
	requests []model.StateID
}

func (d *fakeDisplay) RequestState(id model.StateID, _ float64) {
	d.requests = append(d.requests, id)
}

func (d *fakeDisplay) count(id model.StateID) int {
	n := 0
	for _, r := range d.requests {
		if r == id {
			n++
		}
	}
	return n
}

func (d *fakeDisplay) reset() {
	d.requests = nil
}

// fakeSurface records the last value of each parameter.
type fakeSurface struct {
	params map[string]float64
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{params: make(map[string]float64)}
}

func (s *fakeSurface) SetParameter(name string, value float64) {
	s.params[name] = value
}

// fakePlanner returns a preset path status and records destinations.
type fakePlanner struct {
	status       model.PathStatus
	computed     []vecmath.Vec3
	destinations []vecmath.Vec3
}

func (p *fakePlanner) ComputePath(_, to vecmath.Vec3) model.Path {
	p.computed = append(p.computed, to)
	return model.Path{Status: p.status, Points: []vecmath.Vec3{to}}
}

func (p *fakePlanner) SetDestination(point vecmath.Vec3) {
	p.destinations = append(p.destinations, point)
}

// fakeNavBody is a fixed pose.
type fakeNavBody struct {
	pos     vecmath.Vec3
	forward vecmath.Vec3
}

func (b *fakeNavBody) Position() vecmath.Vec3 { return b.pos }
func (b *fakeNavBody) Forward() vecmath.Vec3  { return b.forward }

// countingController counts lifecycle calls and ticks.
type countingController struct {
	started, stopped bool
	ticks            int
	lastDT           float64
}

func (c *countingController) Start() { c.started = true }
func (c *countingController) Stop()  { c.stopped = true }

func (c *countingController) Tick(dt float64) {
	c.ticks++
	c.lastDT = dt
}
