package ai

import "github.com/udisondev/ghostchase/internal/model"

// StatusInput is everything the status evaluation reads for one tick.
type StatusInput struct {
	DissolveStarted bool
	Health          int32
	StateTag        model.StateTag
	StateID         model.StateID
}

// EvaluateStatus returns the highest-priority active status:
// Dissolving > Attacking > Stunned > Neutral.
func EvaluateStatus(in StatusInput) model.Status {
	switch {
	case in.DissolveStarted && in.Health <= 0:
		return model.StatusDissolving
	case in.StateTag == model.TagAttack:
		return model.StatusAttacking
	case in.StateID == model.StateSurprised:
		return model.StatusStunned
	default:
		return model.StatusNeutral
	}
}
