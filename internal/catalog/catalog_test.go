package catalog

import (
	"errors"
	"testing"

	"github.com/pitchconnect/tacticboard/pkg/core"
)

func TestConfigFor_AllSportsRegistered(t *testing.T) {
	for _, sport := range Sports() {
		cfg, err := ConfigFor(sport)
		if err != nil {
			t.Fatalf("ConfigFor(%s) returned error: %v", sport, err)
		}
		if cfg.Sport != sport {
			t.Errorf("ConfigFor(%s) returned config for %s", sport, cfg.Sport)
		}
		if cfg.DisplayName == "" {
			t.Errorf("sport %s has no display name", sport)
		}
		if cfg.TeamSize <= 0 {
			t.Errorf("sport %s has team size %d", sport, cfg.TeamSize)
		}
		if cfg.PrimaryStat == "" || cfg.SecondaryStat == "" {
			t.Errorf("sport %s missing stat labels", sport)
		}
	}
}

func TestConfigFor_TwelveSports(t *testing.T) {
	if len(Sports()) != 12 {
		t.Fatalf("expected 12 sports, got %d", len(Sports()))
	}
}

func TestConfigFor_UnknownSport(t *testing.T) {
	_, err := ConfigFor(core.Sport("curling"))
	if err == nil {
		t.Fatal("expected error for unknown sport")
	}
	if !errors.Is(err, ErrUnknownSport) {
		t.Errorf("expected ErrUnknownSport, got %v", err)
	}
}

func TestConfigFor_SurfaceKinds(t *testing.T) {
	tests := []struct {
		sport   core.Sport
		surface core.SurfaceKind
	}{
		{core.SportFootball, core.SurfaceRectangle},
		{core.SportBasketball, core.SurfaceCourt},
		{core.SportCricket, core.SurfaceOval},
		{core.SportBaseball, core.SurfaceDiamond},
	}

	for _, tt := range tests {
		cfg, err := ConfigFor(tt.sport)
		if err != nil {
			t.Fatalf("ConfigFor(%s): %v", tt.sport, err)
		}
		if cfg.Surface != tt.surface {
			t.Errorf("%s: expected surface %s, got %s", tt.sport, tt.surface, cfg.Surface)
		}
	}
}
