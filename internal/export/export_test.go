package export

import (
	"compress/gzip"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/pitchconnect/tacticboard/pkg/core"
)

func testTactic() core.Tactic {
	return core.Tactic{
		ID:             1,
		TeamID:         7,
		Sport:          core.SportFootball,
		Name:           "Pressing",
		FormationID:    "4-3-3",
		PlayStyle:      "high-press",
		DefensiveShape: "high-line",
		Notes:          "win it back high",
		PlayerPositions: []core.PlayerPosition{
			{
				SlotIndex: 0,
				Occupant:  core.Occupant{PlayerID: 1, DisplayName: "Keeper", JerseyNumber: 1, Role: "GK"},
				X:         50, Y: 6,
			},
			{
				SlotIndex: 1,
				Occupant:  core.Occupant{DisplayName: "Player 2", JerseyNumber: 2, Role: "LB", Placeholder: true},
				X:         15, Y: 25,
			},
		},
	}
}

func TestBuild_ResolvesLabels(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	doc := Build(testTactic(), now)

	if doc.Sport != "Football" {
		t.Errorf("sport label = %q", doc.Sport)
	}
	if doc.Formation != "4-3-3" {
		t.Errorf("formation label = %q", doc.Formation)
	}
	if doc.PlayStyle != "High Press" {
		t.Errorf("play style label = %q", doc.PlayStyle)
	}
	if doc.DefensiveShape != "High Line" {
		t.Errorf("defensive shape label = %q", doc.DefensiveShape)
	}
	if !doc.ExportedAt.Equal(now) {
		t.Errorf("exportedAt = %v", doc.ExportedAt)
	}
}

func TestBuild_UnknownIdsDegradeToRaw(t *testing.T) {
	tac := testTactic()
	tac.PlayStyle = "retired-style"
	tac.FormationID = "9-9-9"

	doc := Build(tac, time.Now())
	if doc.PlayStyle != "retired-style" {
		t.Errorf("play style = %q, expected raw id", doc.PlayStyle)
	}
	if doc.Formation != "9-9-9" {
		t.Errorf("formation = %q, expected raw id", doc.Formation)
	}
}

func TestBuild_PlayerEntries(t *testing.T) {
	doc := Build(testTactic(), time.Now())

	if len(doc.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(doc.Players))
	}
	first := doc.Players[0]
	if first.SlotIndex != 0 || first.Name != "Keeper" ||
		first.JerseyNumber != 1 || first.Role != "GK" ||
		first.X != 50 || first.Y != 6 {
		t.Errorf("unexpected first entry: %+v", first)
	}
}

func TestWrite_JSON(t *testing.T) {
	dir := t.TempDir()
	doc := Build(testTactic(), time.Now())

	path, err := Write(Config{OutputDir: dir}, doc)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()

	var read Document
	if err := json.NewDecoder(f).Decode(&read); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if read.Name != doc.Name || len(read.Players) != len(doc.Players) {
		t.Errorf("export round trip mismatch: %+v", read)
	}
}

func TestWrite_Gzip(t *testing.T) {
	dir := t.TempDir()
	doc := Build(testTactic(), time.Now())

	path, err := Write(Config{OutputDir: dir, CompressOutput: true}, doc)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	defer gz.Close()

	var read Document
	if err := json.NewDecoder(gz).Decode(&read); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if read.Name != doc.Name {
		t.Errorf("compressed export mismatch: %+v", read)
	}
}
