// Package roster seeds formation slots with squad players. Pairing is
// positional: roster entry i fills slot i. Players are not matched to slots by
// declared position; operators reposition markers after seeding.
package roster

import (
	"fmt"

	"github.com/pitchconnect/tacticboard/pkg/core"
)

// Seed walks the formation's slot list in order and builds a fresh placement.
// Slot i takes roster[i] when present; otherwise it becomes a placeholder
// labeled with the slot's role and a synthetic ordinal name. Seeding is
// deterministic and fully replaces prior placement state.
func Seed(def core.FormationDefinition, squad []core.Player) core.Placement {
	placement := core.Placement{
		Sport:       def.Sport,
		FormationID: def.ID,
		Entries:     make([]core.PlacementEntry, len(def.Slots)),
	}

	for i, s := range def.Slots {
		entry := core.PlacementEntry{
			SlotIndex: i,
			X:         s.X,
			Y:         s.Y,
		}
		if i < len(squad) {
			p := squad[i]
			entry.Occupant = core.Occupant{
				PlayerID:     p.ID,
				DisplayName:  p.DisplayName,
				JerseyNumber: p.JerseyNumber,
				Role:         s.Role,
			}
		} else {
			entry.Occupant = core.Occupant{
				DisplayName:  fmt.Sprintf("Player %d", i+1),
				JerseyNumber: i + 1,
				Role:         s.Role,
				Placeholder:  true,
			}
		}
		placement.Entries[i] = entry
	}

	return placement
}
