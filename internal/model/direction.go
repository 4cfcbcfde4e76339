package model

// Direction is a discrete directional input.
type Direction uint8

const (
	DirUp Direction = 1 << iota
	DirDown
	DirLeft
	DirRight
)

// String returns direction name
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "UP"
	case DirDown:
		return "DOWN"
	case DirLeft:
		return "LEFT"
	case DirRight:
		return "RIGHT"
	default:
		return "NONE"
	}
}

// DirectionSet is a bitmask of held directions.
type DirectionSet uint8

// With returns the set with d added.
func (s DirectionSet) With(d Direction) DirectionSet {
	return s | DirectionSet(d)
}

// Has reports whether d is held.
func (s DirectionSet) Has(d Direction) bool {
	return s&DirectionSet(d) != 0
}
