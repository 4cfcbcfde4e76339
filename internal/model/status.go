package model

// Status is the ghost's behavioral mode for the current tick.
// Exactly one value is active at a time.
type Status int32

const (
	// StatusNeutral - no reaction in progress, free to move and attack
	StatusNeutral Status = iota
	// StatusDissolving - health depleted, dissolve sequence running
	StatusDissolving
	// StatusAttacking - display reports an attack-tagged clip
	StatusAttacking
	// StatusStunned - display reports the surprised reaction clip
	StatusStunned
)

// String returns human-readable status name
func (s Status) String() string {
	switch s {
	case StatusNeutral:
		return "NEUTRAL"
	case StatusDissolving:
		return "DISSOLVING"
	case StatusAttacking:
		return "ATTACKING"
	case StatusStunned:
		return "STUNNED"
	default:
		return "UNKNOWN"
	}
}
