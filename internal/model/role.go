package model

// Role identifies an actor in a scene for reference lookup.
type Role int32

const (
	RolePlayer Role = iota
	RoleGhost
	RoleEnemy
)

// String returns role name
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleGhost:
		return "ghost"
	case RoleEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}
