// pkg/core/placement.go
package core

// Player is a roster entry as supplied by the persistence gateway. Roster
// order is significant: it defines the positional slot mapping during seeding.
type Player struct {
	ID           uint
	DisplayName  string
	JerseyNumber int
}

// Occupant is who sits in a placement slot: either a real player or an empty
// placeholder carrying the slot's role.
type Occupant struct {
	PlayerID     uint // 0 for placeholders
	DisplayName  string
	JerseyNumber int
	Role         string
	Placeholder  bool
}

// PlacementEntry is one slot of the live placement: the occupant plus the
// current coordinates, initialized from the formation defaults and then freely
// mutated by move operations.
type PlacementEntry struct {
	SlotIndex int
	Occupant  Occupant
	X         float64
	Y         float64
}

// Placement is the live, in-session placement state for one edited tactic.
// Entries are ordered by slot index.
type Placement struct {
	Sport       Sport
	FormationID string
	Entries     []PlacementEntry
}

// Clone returns a deep copy. Snapshots and hydration hand out copies so that
// later edits to the session never alias a persisted document.
func (p Placement) Clone() Placement {
	out := Placement{
		Sport:       p.Sport,
		FormationID: p.FormationID,
		Entries:     make([]PlacementEntry, len(p.Entries)),
	}
	copy(out.Entries, p.Entries)
	return out
}
