package world

import (
	"sync/atomic"

	"github.com/udisondev/ghostchase/internal/model"
)

// EntityIDs hands out unique entity IDs. Each role draws from its own range
// so an ID alone tells what it refers to:
//
//	0x10000000 - 0x1FFFFFFF: players
//	0x20000000 - 0x2FFFFFFF: ghosts
//	0x30000000 - 0x3FFFFFFF: enemies
type EntityIDs struct {
	next [3]atomic.Uint32
}

// NewEntityIDs creates a new ID generator.
func NewEntityIDs() *EntityIDs {
	g := &EntityIDs{}
	g.next[model.RolePlayer].Store(0x10000000)
	g.next[model.RoleGhost].Store(0x20000000)
	g.next[model.RoleEnemy].Store(0x30000000)
	return g
}

// Next returns the next ID for role. Thread-safe via atomic increment.
// Unknown roles get 0.
func (g *EntityIDs) Next(role model.Role) uint32 {
	if role < 0 || int(role) >= len(g.next) {
		return 0
	}
	return g.next[role].Add(1)
}

