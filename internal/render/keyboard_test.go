package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/udisondev/ghostchase/internal/model"
	"github.com/udisondev/ghostchase/internal/vecmath"
	"github.com/udisondev/ghostchase/internal/world"
)

var _ world.Input = (*Keyboard)(nil)

// newTestKeyboard returns a keyboard with a controllable clock.
func newTestKeyboard() (*Keyboard, *time.Time) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	k := NewKeyboard(100 * time.Millisecond)
	k.now = func() time.Time { return now }
	return k, &now
}

func press(k *Keyboard, key tcell.Key, r rune) Action {
	return k.HandleKey(tcell.NewEventKey(key, r, tcell.ModNone))
}

func TestKeyboard_HoldWindow(t *testing.T) {
	k, now := newTestKeyboard()

	press(k, tcell.KeyUp, 0)
	assert.True(t, k.IsDirectionHeld(model.DirUp))
	assert.False(t, k.IsDirectionHeld(model.DirDown))

	*now = now.Add(80 * time.Millisecond)
	assert.True(t, k.IsDirectionHeld(model.DirUp), "still inside the hold window")

	*now = now.Add(50 * time.Millisecond)
	assert.False(t, k.IsDirectionHeld(model.DirUp), "released after the hold window")

	// key repeat extends the hold
	press(k, tcell.KeyUp, 0)
	assert.True(t, k.IsDirectionHeld(model.DirUp))
}

func TestKeyboard_EdgeTriggeredPresses(t *testing.T) {
	k, _ := newTestKeyboard()

	assert.False(t, k.IsRespawnPressed())

	press(k, tcell.KeyRune, ' ')
	press(k, tcell.KeyRune, ' ')
	assert.True(t, k.IsRespawnPressed())
	assert.False(t, k.IsRespawnPressed(), "consumed on read")

	press(k, tcell.KeyRune, 'f')
	assert.True(t, k.IsStrikePressed())
	assert.False(t, k.IsStrikePressed())
}

func TestKeyboard_MoveVector(t *testing.T) {
	k, now := newTestKeyboard()

	assert.Equal(t, vecmath.Zero, k.MoveVector())

	press(k, tcell.KeyRune, 'w')
	assert.True(t, vecmath.ApproxEqual(vecmath.New(0, 0, -1), k.MoveVector(), 1e-9))

	press(k, tcell.KeyRune, 'd')
	v := k.MoveVector()
	assert.InDelta(t, 1.0, v.Len(), 1e-9)
	assert.Positive(t, v.X)
	assert.Negative(t, v.Z)

	// ghost arrows do not move the player
	*now = now.Add(time.Second)
	press(k, tcell.KeyLeft, 0)
	assert.Equal(t, vecmath.Zero, k.MoveVector())
}

func TestKeyboard_Quit(t *testing.T) {
	k, _ := newTestKeyboard()

	select {
	case <-k.Quit():
		t.Fatal("quit before any key")
	default:
	}

	assert.Equal(t, ActionQuit, press(k, tcell.KeyRune, 'q'))
	assert.Equal(t, ActionQuit, press(k, tcell.KeyEscape, 0), "second quit does not panic")

	select {
	case <-k.Quit():
	default:
		t.Fatal("quit channel not closed")
	}
}
