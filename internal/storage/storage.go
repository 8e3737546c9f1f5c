// internal/storage/storage.go
package storage

import "github.com/pitchconnect/tacticboard/pkg/core"

// Gateway is the persistence interface the engine talks to. Implementations
// own durability; the engine's in-memory placement stays the source of truth
// until a save round-trips.
type Gateway interface {
	// Lifecycle
	Init() error
	Close() error

	// Tactic documents
	ListTactics(teamID uint) ([]core.Tactic, error)
	GetTactic(id uint) (core.Tactic, error)
	SaveTactic(doc core.Tactic) (core.Tactic, error)

	// Squad rosters (ordered; order defines positional seeding)
	LoadRoster(teamID uint) ([]core.Player, error)
}
