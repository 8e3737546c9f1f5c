// pkg/core/tactic.go
package core

import "time"

// PlayerPosition is one persisted slot snapshot inside a Tactic document.
type PlayerPosition struct {
	SlotIndex int
	Occupant  Occupant
	X         float64
	Y         float64
}

// Tactic is the durable document a coach saves: the full lineup snapshot plus
// formation and strategy selections. It is produced by a one-way snapshot of
// the live placement and only ever mutated by a full re-save.
type Tactic struct {
	ID          uint
	CoachID     uint
	TeamID      uint
	Sport       Sport
	Name        string
	FormationID string
	Description string

	PlayStyle      string
	DefensiveShape string
	PressType      string
	TempoStyle     string
	BuildUpPlay    string
	AttackingWidth string
	DefensiveLine  string
	Notes          string

	PlayerPositions []PlayerPosition

	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
