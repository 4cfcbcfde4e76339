package world

import (
	"github.com/udisondev/ghostchase/internal/model"
	"github.com/udisondev/ghostchase/internal/vecmath"
)

// Input is the discrete input source. Pressed queries are edge-triggered:
// a press is reported once.
type Input interface {
	IsDirectionHeld(d model.Direction) bool
	IsRespawnPressed() bool
	IsStrikePressed() bool
	// MoveVector is the player's desired ground-plane heading; zero stands still.
	MoveVector() vecmath.Vec3
}

// NoInput never reports anything. Used for headless runs.
type NoInput struct{}

func (NoInput) IsDirectionHeld(model.Direction) bool { return false }
func (NoInput) IsRespawnPressed() bool               { return false }
func (NoInput) IsStrikePressed() bool                { return false }
func (NoInput) MoveVector() vecmath.Vec3             { return vecmath.Zero }

var directions = [...]model.Direction{model.DirUp, model.DirDown, model.DirLeft, model.DirRight}

// inputFrame is the input read once at tick start.
type inputFrame struct {
	held    model.DirectionSet
	respawn bool
	strike  bool
	move    vecmath.Vec3
}

func readInput(in Input) inputFrame {
	var f inputFrame
	for _, d := range directions {
		if in.IsDirectionHeld(d) {
			f.held = f.held.With(d)
		}
	}
	f.respawn = in.IsRespawnPressed()
	f.strike = in.IsStrikePressed()
	f.move = in.MoveVector()
	return f
}
