package model

// StateID identifies a display (animation) state the AI can request or observe.
type StateID int32

const (
	StateIdle StateID = iota
	StateMove
	StateSurprised
	StateAttack
	StateDissolve
)

// String returns the display state name
func (id StateID) String() string {
	switch id {
	case StateIdle:
		return "idle"
	case StateMove:
		return "move"
	case StateSurprised:
		return "surprised"
	case StateAttack:
		return "attack_shift"
	case StateDissolve:
		return "dissolve"
	default:
		return "unknown"
	}
}

// StateTag groups display states. Only attack clips carry a tag.
type StateTag int32

const (
	TagNone StateTag = iota
	TagAttack
)

// String returns the tag name
func (t StateTag) String() string {
	if t == TagAttack {
		return "Attack"
	}
	return ""
}
