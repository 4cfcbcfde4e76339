package world

import (
	"log/slog"

	"github.com/udisondev/ghostchase/internal/ai"
	"github.com/udisondev/ghostchase/internal/model"
)

// Clip describes one display state.
type Clip struct {
	ID  model.StateID
	Tag model.StateTag
	// Duration of a one-shot clip in seconds; 0 loops (or holds) forever.
	Duration float64
	// Next is entered when a one-shot clip finishes.
	Next model.StateID
	// Hold keeps the clip until a stronger request arrives.
	Hold bool
	// Priority decides between requests made in the same tick, and whether a
	// request may cut a running one-shot clip short.
	Priority int
}

// OneShot reports whether the clip ends on its own.
func (c Clip) OneShot() bool {
	return c.Duration > 0
}

// DefaultClips is the ghost clip set. Attack and surprised return to idle,
// dissolve holds its last frame until respawn.
var DefaultClips = map[model.StateID]Clip{
	model.StateIdle:      {ID: model.StateIdle, Priority: 5},
	model.StateMove:      {ID: model.StateMove, Priority: 2},
	model.StateSurprised: {ID: model.StateSurprised, Duration: 0.5, Next: model.StateIdle, Priority: 1},
	model.StateAttack:    {ID: model.StateAttack, Tag: model.TagAttack, Duration: 0.8, Next: model.StateIdle, Priority: 3},
	model.StateDissolve:  {ID: model.StateDissolve, Hold: true, Priority: 4},
}

// Animator is the display system of an agent. Requests are collected during a
// tick and applied by Advance; the highest-priority request wins, and a
// request for the clip already playing is a no-op.
type Animator struct {
	clips   map[model.StateID]Clip
	current Clip
	elapsed float64

	pending    Clip
	hasPending bool

	transitions int
}

// NewAnimator creates an animator in the idle clip.
func NewAnimator(clips map[model.StateID]Clip) *Animator {
	if clips == nil {
		clips = DefaultClips
	}
	return &Animator{
		clips:   clips,
		current: clips[model.StateIdle],
	}
}

// RequestState queues a cross-fade. Blend time is accepted for interface
// parity; clips switch on the next Advance.
func (a *Animator) RequestState(id model.StateID, _ float64) {
	clip, ok := a.clips[id]
	if !ok {
		slog.Warn("unknown display state requested", "state", id)
		return
	}
	if a.hasPending && a.pending.Priority >= clip.Priority {
		return
	}
	a.pending = clip
	a.hasPending = true
}

// Advance applies the winning request and plays the current clip for dt.
func (a *Animator) Advance(dt float64) {
	if a.hasPending {
		a.apply(a.pending)
		a.hasPending = false
	}

	a.elapsed += dt
	if a.current.OneShot() && a.elapsed >= a.current.Duration {
		a.enter(a.clips[a.current.Next])
	}
}

func (a *Animator) apply(clip Clip) {
	if clip.ID == a.current.ID {
		return
	}
	// One-shot and held clips are only cut by a stronger request.
	locked := a.current.Hold || (a.current.OneShot() && a.elapsed < a.current.Duration)
	if locked && clip.Priority <= a.current.Priority {
		return
	}
	a.enter(clip)
}

func (a *Animator) enter(clip Clip) {
	if ai.IsDebugEnabled() {
		slog.Debug("display state changed", "from", a.current.ID, "to", clip.ID)
	}
	a.current = clip
	a.elapsed = 0
	a.transitions++
}

// CurrentStateID returns the playing clip.
func (a *Animator) CurrentStateID() model.StateID {
	return a.current.ID
}

// CurrentStateTag returns the playing clip's tag.
func (a *Animator) CurrentStateTag() model.StateTag {
	return a.current.Tag
}

// Transitions returns how many times the clip changed.
func (a *Animator) Transitions() int {
	return a.transitions
}
