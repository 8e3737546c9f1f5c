package formation

import (
	"errors"
	"testing"

	"github.com/pitchconnect/tacticboard/internal/catalog"
	"github.com/pitchconnect/tacticboard/pkg/core"
)

func TestFormationsFor_CoordinatesInRange(t *testing.T) {
	for _, sport := range catalog.Sports() {
		for _, def := range FormationsFor(sport) {
			for i, s := range def.Slots {
				if s.X < 0 || s.X > 100 || s.Y < 0 || s.Y > 100 {
					t.Errorf("%s/%s slot %d has out-of-range coordinates (%.1f, %.1f)",
						sport, def.ID, i, s.X, s.Y)
				}
			}
		}
	}
}

func TestFormationsFor_SlotCountMatchesTeamSize(t *testing.T) {
	for _, sport := range catalog.Sports() {
		cfg, err := catalog.ConfigFor(sport)
		if err != nil {
			t.Fatalf("ConfigFor(%s): %v", sport, err)
		}
		for _, def := range FormationsFor(sport) {
			if len(def.Slots) != cfg.TeamSize {
				t.Errorf("%s/%s has %d slots, team size is %d",
					sport, def.ID, len(def.Slots), cfg.TeamSize)
			}
		}
	}
}

func TestFormationsFor_EverySportHasEntries(t *testing.T) {
	for _, sport := range catalog.Sports() {
		defs := FormationsFor(sport)
		if len(defs) == 0 {
			t.Errorf("sport %s has no formations", sport)
		}
		for _, def := range defs {
			if def.Sport != sport {
				t.Errorf("formation %s registered under %s belongs to %s",
					def.ID, sport, def.Sport)
			}
		}
	}
}

func TestFormationsFor_FallbackForUnregisteredSport(t *testing.T) {
	defs := FormationsFor(core.Sport("beach_soccer"))
	if len(defs) == 0 {
		t.Fatal("expected fallback formation set")
	}
	if defs[0].Sport != core.SportFootball {
		t.Errorf("expected football fallback, got %s", defs[0].Sport)
	}
}

func TestFind(t *testing.T) {
	def, err := Find(core.SportFootball, "4-3-3")
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if def.ID != "4-3-3" || len(def.Slots) != 11 {
		t.Errorf("unexpected formation: id=%s slots=%d", def.ID, len(def.Slots))
	}
}

func TestFind_UnknownFormation(t *testing.T) {
	_, err := Find(core.SportFootball, "9-0-1")
	if err == nil {
		t.Fatal("expected error for unknown formation")
	}
	if !errors.Is(err, ErrUnknownFormation) {
		t.Errorf("expected ErrUnknownFormation, got %v", err)
	}
}

func TestFind_SlotOrderStable(t *testing.T) {
	a, _ := Find(core.SportFootball, "4-4-2")
	b, _ := Find(core.SportFootball, "4-4-2")
	for i := range a.Slots {
		if a.Slots[i] != b.Slots[i] {
			t.Fatalf("slot %d differs between lookups", i)
		}
	}
	if a.Slots[0].Role != "GK" {
		t.Errorf("expected goalkeeper first, got %s", a.Slots[0].Role)
	}
}
