// Package convert translates between GORM models and core types.
package convert

import (
	"encoding/json"
	"fmt"

	"github.com/pitchconnect/tacticboard/internal/geo"
	"github.com/pitchconnect/tacticboard/internal/model"
	"github.com/pitchconnect/tacticboard/pkg/core"
)

// TacticToCore converts a stored Tactic row (with position rows preloaded)
// into the core document.
func TacticToCore(t model.Tactic) core.Tactic {
	doc := core.Tactic{
		ID:             t.ID,
		CoachID:        t.CoachID,
		TeamID:         t.TeamID,
		Sport:          core.Sport(t.Sport),
		Name:           t.Name,
		FormationID:    t.Formation,
		Description:    t.Description,
		PlayStyle:      t.PlayStyle,
		DefensiveShape: t.DefensiveShape,
		PressType:      t.PressType,
		TempoStyle:     t.TempoStyle,
		BuildUpPlay:    t.BuildUpPlay,
		AttackingWidth: t.AttackingWidth,
		DefensiveLine:  t.DefensiveLine,
		Notes:          t.Notes,
		IsDefault:      t.IsDefault,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,

		PlayerPositions: make([]core.PlayerPosition, len(t.PlayerPositions)),
	}

	for i, p := range t.PlayerPositions {
		doc.PlayerPositions[i] = TacticPositionToCore(p)
	}
	return doc
}

// TacticPositionToCore converts one stored slot row.
func TacticPositionToCore(p model.TacticPosition) core.PlayerPosition {
	var occupant core.Occupant
	if len(p.Occupant) > 0 {
		if err := json.Unmarshal(p.Occupant, &occupant); err != nil {
			// corrupt snapshot rows degrade to a labeled placeholder
			occupant = core.Occupant{
				DisplayName:  fmt.Sprintf("Player %d", p.SlotIndex+1),
				JerseyNumber: p.SlotIndex + 1,
				Placeholder:  true,
			}
		}
	}
	x, y := geo.XYFromPoint(p.Position)
	return core.PlayerPosition{
		SlotIndex: p.SlotIndex,
		Occupant:  occupant,
		X:         x,
		Y:         y,
	}
}

// TacticToModel converts a core document into GORM rows for saving. The
// returned Tactic carries its position rows; gorm writes them in one create.
func TacticToModel(doc core.Tactic) model.Tactic {
	t := model.Tactic{
		CoachID:        doc.CoachID,
		TeamID:         doc.TeamID,
		Sport:          string(doc.Sport),
		Name:           doc.Name,
		Formation:      doc.FormationID,
		Description:    doc.Description,
		PlayStyle:      doc.PlayStyle,
		DefensiveShape: doc.DefensiveShape,
		PressType:      doc.PressType,
		TempoStyle:     doc.TempoStyle,
		BuildUpPlay:    doc.BuildUpPlay,
		AttackingWidth: doc.AttackingWidth,
		DefensiveLine:  doc.DefensiveLine,
		Notes:          doc.Notes,
		IsDefault:      doc.IsDefault,

		PlayerPositions: make([]model.TacticPosition, len(doc.PlayerPositions)),
	}
	t.ID = doc.ID

	for i, p := range doc.PlayerPositions {
		occupant, _ := json.Marshal(p.Occupant)
		t.PlayerPositions[i] = model.TacticPosition{
			SlotIndex: p.SlotIndex,
			Occupant:  occupant,
			Position:  geo.PointFromXY(p.X, p.Y),
		}
	}
	return t
}

// RosterEntryToCore converts one roster row into a core player.
func RosterEntryToCore(r model.RosterEntry) core.Player {
	return core.Player{
		ID:           r.ID,
		DisplayName:  r.DisplayName,
		JerseyNumber: r.JerseyNumber,
	}
}
