package convert

import (
	"reflect"
	"testing"

	"github.com/pitchconnect/tacticboard/pkg/core"
)

func testDoc() core.Tactic {
	return core.Tactic{
		CoachID:        3,
		TeamID:         7,
		Sport:          core.SportFootball,
		Name:           "Pressing",
		FormationID:    "4-3-3",
		PlayStyle:      "high-press",
		DefensiveShape: "high-line",
		PressType:      "constant",
		TempoStyle:     "fast",
		BuildUpPlay:    "short",
		AttackingWidth: "wide",
		DefensiveLine:  "high",
		Notes:          "win it back high",
		IsDefault:      true,
		PlayerPositions: []core.PlayerPosition{
			{
				SlotIndex: 0,
				Occupant:  core.Occupant{PlayerID: 1, DisplayName: "Keeper", JerseyNumber: 1, Role: "GK"},
				X:         50, Y: 6,
			},
			{
				SlotIndex: 1,
				Occupant:  core.Occupant{DisplayName: "Player 2", JerseyNumber: 2, Role: "LB", Placeholder: true},
				X:         15.5, Y: 25.25,
			},
		},
	}
}

func TestTacticModelRoundTrip(t *testing.T) {
	doc := testDoc()

	row := TacticToModel(doc)
	back := TacticToCore(row)

	// gorm assigns timestamps on save, so zero them for comparison
	back.CreatedAt = doc.CreatedAt
	back.UpdatedAt = doc.UpdatedAt

	if !reflect.DeepEqual(doc, back) {
		t.Errorf("round trip mismatch\n got: %+v\nwant: %+v", back, doc)
	}
}

func TestTacticToModel_PositionRows(t *testing.T) {
	row := TacticToModel(testDoc())

	if len(row.PlayerPositions) != 2 {
		t.Fatalf("expected 2 position rows, got %d", len(row.PlayerPositions))
	}
	if row.PlayerPositions[0].SlotIndex != 0 {
		t.Errorf("slot index = %d", row.PlayerPositions[0].SlotIndex)
	}
	if len(row.PlayerPositions[0].Occupant) == 0 {
		t.Error("occupant snapshot not serialized")
	}
}

func TestTacticPositionToCore_CorruptOccupant(t *testing.T) {
	row := TacticToModel(testDoc())
	pos := row.PlayerPositions[0]
	pos.Occupant = []byte(`{"playerId": not-json`)

	got := TacticPositionToCore(pos)
	if !got.Occupant.Placeholder {
		t.Errorf("corrupt occupant did not degrade to a placeholder: %+v", got.Occupant)
	}
	if got.Occupant.DisplayName != "Player 1" {
		t.Errorf("placeholder name = %q", got.Occupant.DisplayName)
	}
	if got.X != 50 || got.Y != 6 {
		t.Errorf("coordinates lost: (%v, %v)", got.X, got.Y)
	}
}

func TestTacticPositionToCore_EmptyOccupant(t *testing.T) {
	row := TacticToModel(testDoc())
	row.PlayerPositions[0].Occupant = nil

	pos := TacticPositionToCore(row.PlayerPositions[0])
	if pos.Occupant != (core.Occupant{}) {
		t.Errorf("expected zero occupant, got %+v", pos.Occupant)
	}
	if pos.X != 50 || pos.Y != 6 {
		t.Errorf("coordinates lost: (%v, %v)", pos.X, pos.Y)
	}
}
