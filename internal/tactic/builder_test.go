package tactic

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pitchconnect/tacticboard/internal/formation"
	"github.com/pitchconnect/tacticboard/internal/roster"
	"github.com/pitchconnect/tacticboard/pkg/core"
)

func testPlacement(t *testing.T) core.Placement {
	t.Helper()
	def, err := formation.Find(core.SportFootball, "4-3-3")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	squad := []core.Player{
		{ID: 1, DisplayName: "Keeper", JerseyNumber: 1},
		{ID: 2, DisplayName: "Left Back", JerseyNumber: 3},
	}
	return roster.Seed(def, squad)
}

func TestSnapshot_RoundTrip(t *testing.T) {
	placement := testPlacement(t)
	placement.Entries[4].X = 33.5
	placement.Entries[4].Y = 66.25

	doc, err := Snapshot(SnapshotRequest{
		TeamID:         7,
		Name:           "Pressing",
		PlayStyle:      "high-press",
		DefensiveShape: "high-line",
		Notes:          "win it back high",
	}, placement)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	hydrated := Hydrate(doc)
	if !reflect.DeepEqual(hydrated, placement) {
		t.Errorf("hydrate(snapshot(p)) != p\n got: %+v\nwant: %+v", hydrated, placement)
	}
}

func TestSnapshot_MissingTeamID(t *testing.T) {
	placement := testPlacement(t)
	_, err := Snapshot(SnapshotRequest{Name: "no team"}, placement)
	if !errors.Is(err, ErrMissingTeamID) {
		t.Fatalf("expected ErrMissingTeamID, got %v", err)
	}
}

func TestSnapshot_MissingFormation(t *testing.T) {
	placement := testPlacement(t)
	placement.FormationID = ""
	_, err := Snapshot(SnapshotRequest{TeamID: 7}, placement)
	if !errors.Is(err, ErrMissingFormation) {
		t.Fatalf("expected ErrMissingFormation, got %v", err)
	}
}

func TestSnapshot_RejectionLeavesPlacementUntouched(t *testing.T) {
	placement := testPlacement(t)
	placement.FormationID = ""
	before := placement.Clone()

	_, _ = Snapshot(SnapshotRequest{TeamID: 7}, placement)

	if !reflect.DeepEqual(before, placement) {
		t.Error("rejected snapshot mutated the placement")
	}
}

func TestSnapshot_CopiesEntriesVerbatim(t *testing.T) {
	placement := testPlacement(t)
	doc, err := Snapshot(SnapshotRequest{TeamID: 7}, placement)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	if len(doc.PlayerPositions) != len(placement.Entries) {
		t.Fatalf("position count %d, entries %d", len(doc.PlayerPositions), len(placement.Entries))
	}
	for i, p := range doc.PlayerPositions {
		e := placement.Entries[i]
		if p.SlotIndex != e.SlotIndex || p.X != e.X || p.Y != e.Y || p.Occupant != e.Occupant {
			t.Errorf("position %d not copied verbatim", i)
		}
	}
	if doc.Sport != placement.Sport || doc.FormationID != placement.FormationID {
		t.Error("sport/formation not carried into document")
	}
}

func TestSnapshot_CarriesStrategySelections(t *testing.T) {
	placement := testPlacement(t)
	req := SnapshotRequest{
		CoachID:        3,
		TeamID:         7,
		Name:           "Full strategy",
		PlayStyle:      "possession",
		DefensiveShape: "zonal",
		PressType:      "trigger",
		TempoStyle:     "slow",
		BuildUpPlay:    "short",
		AttackingWidth: "wide",
		DefensiveLine:  "high",
		Notes:          "keep the ball",
		IsDefault:      true,
	}

	doc, err := Snapshot(req, placement)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	if doc.CoachID != 3 || doc.PlayStyle != "possession" ||
		doc.DefensiveShape != "zonal" || doc.PressType != "trigger" ||
		doc.TempoStyle != "slow" || doc.BuildUpPlay != "short" ||
		doc.AttackingWidth != "wide" || doc.DefensiveLine != "high" ||
		doc.Notes != "keep the ball" || !doc.IsDefault {
		t.Errorf("strategy selections dropped: %+v", doc)
	}
}

func TestHydrate_SortsBySlotIndex(t *testing.T) {
	doc := core.Tactic{
		Sport:       core.SportFutsal,
		FormationID: "1-2-1",
		PlayerPositions: []core.PlayerPosition{
			{SlotIndex: 2, X: 20, Y: 52},
			{SlotIndex: 0, X: 50, Y: 8},
			{SlotIndex: 1, X: 50, Y: 30},
		},
	}

	placement := Hydrate(doc)
	for i, e := range placement.Entries {
		if e.SlotIndex != i {
			t.Errorf("entry %d has slot index %d; stored order must win", i, e.SlotIndex)
		}
	}
}
