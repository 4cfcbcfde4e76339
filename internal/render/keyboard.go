package render

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/udisondev/ghostchase/internal/model"
	"github.com/udisondev/ghostchase/internal/vecmath"
)

// DefaultHoldWindow is how long a key counts as held after its last press.
// Terminals report key repeats but no key-up, so holding is inferred.
const DefaultHoldWindow = 150 * time.Millisecond

// Keyboard implements world.Input from tcell key events. Directions are
// level-triggered through the hold window; respawn and strike are
// edge-triggered and consumed on read. Safe for concurrent use: events arrive
// on the viewer goroutine, reads happen on the tick goroutine.
type Keyboard struct {
	mu   sync.Mutex
	hold time.Duration
	now  func() time.Time

	ghost  map[model.Direction]time.Time
	player map[model.Direction]time.Time

	respawn bool
	strike  bool

	quit     chan struct{}
	quitOnce sync.Once
}

// NewKeyboard creates a keyboard. Non-positive hold uses DefaultHoldWindow.
func NewKeyboard(hold time.Duration) *Keyboard {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &Keyboard{
		hold:   hold,
		now:    time.Now,
		ghost:  make(map[model.Direction]time.Time, 4),
		player: make(map[model.Direction]time.Time, 4),
		quit:   make(chan struct{}),
	}
}

// HandleKey records a key event.
func (k *Keyboard) HandleKey(ev *tcell.EventKey) Action {
	action := keyToAction(ev)

	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	switch action {
	case ActionGhostUp:
		k.ghost[model.DirUp] = now
	case ActionGhostDown:
		k.ghost[model.DirDown] = now
	case ActionGhostLeft:
		k.ghost[model.DirLeft] = now
	case ActionGhostRight:
		k.ghost[model.DirRight] = now
	case ActionPlayerUp:
		k.player[model.DirUp] = now
	case ActionPlayerDown:
		k.player[model.DirDown] = now
	case ActionPlayerLeft:
		k.player[model.DirLeft] = now
	case ActionPlayerRight:
		k.player[model.DirRight] = now
	case ActionRespawn:
		k.respawn = true
	case ActionStrike:
		k.strike = true
	case ActionQuit:
		k.quitOnce.Do(func() { close(k.quit) })
	}
	return action
}

// Quit is closed once a quit key was pressed.
func (k *Keyboard) Quit() <-chan struct{} {
	return k.quit
}

func (k *Keyboard) IsDirectionHeld(d model.Direction) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.held(k.ghost, d)
}

func (k *Keyboard) IsRespawnPressed() bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	pressed := k.respawn
	k.respawn = false
	return pressed
}

func (k *Keyboard) IsStrikePressed() bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	pressed := k.strike
	k.strike = false
	return pressed
}

// MoveVector returns the held WASD heading on the ground plane. Screen up is -Z.
func (k *Keyboard) MoveVector() vecmath.Vec3 {
	k.mu.Lock()
	defer k.mu.Unlock()

	var v vecmath.Vec3
	if k.held(k.player, model.DirUp) {
		v.Z--
	}
	if k.held(k.player, model.DirDown) {
		v.Z++
	}
	if k.held(k.player, model.DirLeft) {
		v.X--
	}
	if k.held(k.player, model.DirRight) {
		v.X++
	}
	return v.Normalize()
}

func (k *Keyboard) held(pressed map[model.Direction]time.Time, d model.Direction) bool {
	at, ok := pressed[d]
	return ok && k.now().Sub(at) <= k.hold
}
