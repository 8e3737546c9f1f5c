// Package catalog is the static sport registry: per-sport display metadata,
// surface geometry, stat vocabulary and team size. Built once at process
// start, read-only afterwards.
package catalog

import (
	"fmt"

	"github.com/pitchconnect/tacticboard/pkg/core"
)

// ErrUnknownSport is returned for lookups of sports not in the registry.
// Callers treat this as a fatal precondition violation, not user input.
var ErrUnknownSport = fmt.Errorf("unknown sport")

var configs = map[core.Sport]core.SportConfig{
	core.SportFootball: {
		Sport: core.SportFootball, DisplayName: "Football", IconGlyph: "⚽",
		Surface: core.SurfaceRectangle, PrimaryStat: "Goals", SecondaryStat: "Assists",
		TeamSize: 11,
	},
	core.SportFutsal: {
		Sport: core.SportFutsal, DisplayName: "Futsal", IconGlyph: "🥅",
		Surface: core.SurfaceCourt, PrimaryStat: "Goals", SecondaryStat: "Assists",
		TeamSize: 5,
	},
	core.SportBasketball: {
		Sport: core.SportBasketball, DisplayName: "Basketball", IconGlyph: "🏀",
		Surface: core.SurfaceCourt, PrimaryStat: "Points", SecondaryStat: "Rebounds",
		TeamSize: 5,
	},
	core.SportVolleyball: {
		Sport: core.SportVolleyball, DisplayName: "Volleyball", IconGlyph: "🏐",
		Surface: core.SurfaceCourt, PrimaryStat: "Points", SecondaryStat: "Blocks",
		TeamSize: 6,
	},
	core.SportHandball: {
		Sport: core.SportHandball, DisplayName: "Handball", IconGlyph: "🤾",
		Surface: core.SurfaceCourt, PrimaryStat: "Goals", SecondaryStat: "Saves",
		TeamSize: 7,
	},
	core.SportRugby: {
		Sport: core.SportRugby, DisplayName: "Rugby Union", IconGlyph: "🏉",
		Surface: core.SurfaceRectangle, PrimaryStat: "Tries", SecondaryStat: "Tackles",
		TeamSize: 15,
	},
	core.SportFieldHockey: {
		Sport: core.SportFieldHockey, DisplayName: "Field Hockey", IconGlyph: "🏑",
		Surface: core.SurfaceRectangle, PrimaryStat: "Goals", SecondaryStat: "Assists",
		TeamSize: 11,
	},
	core.SportIceHockey: {
		Sport: core.SportIceHockey, DisplayName: "Ice Hockey", IconGlyph: "🏒",
		Surface: core.SurfaceRectangle, PrimaryStat: "Goals", SecondaryStat: "Assists",
		TeamSize: 6,
	},
	core.SportCricket: {
		Sport: core.SportCricket, DisplayName: "Cricket", IconGlyph: "🏏",
		Surface: core.SurfaceOval, PrimaryStat: "Runs", SecondaryStat: "Wickets",
		TeamSize: 11,
	},
	core.SportBaseball: {
		Sport: core.SportBaseball, DisplayName: "Baseball", IconGlyph: "⚾",
		Surface: core.SurfaceDiamond, PrimaryStat: "Hits", SecondaryStat: "RBIs",
		TeamSize: 9,
	},
	core.SportTennis: {
		Sport: core.SportTennis, DisplayName: "Tennis (Doubles)", IconGlyph: "🎾",
		Surface: core.SurfaceCourt, PrimaryStat: "Aces", SecondaryStat: "Winners",
		TeamSize: 2,
	},
	core.SportNetball: {
		Sport: core.SportNetball, DisplayName: "Netball", IconGlyph: "🥏",
		Surface: core.SurfaceCourt, PrimaryStat: "Goals", SecondaryStat: "Intercepts",
		TeamSize: 7,
	},
}

// ConfigFor returns the static config for a sport. An unrecognized sport is a
// programming defect and surfaces as ErrUnknownSport.
func ConfigFor(sport core.Sport) (core.SportConfig, error) {
	cfg, ok := configs[sport]
	if !ok {
		return core.SportConfig{}, fmt.Errorf("%w: %q", ErrUnknownSport, sport)
	}
	return cfg, nil
}

// Sports returns every registered sport in a stable order.
func Sports() []core.Sport {
	return []core.Sport{
		core.SportFootball,
		core.SportFutsal,
		core.SportBasketball,
		core.SportVolleyball,
		core.SportHandball,
		core.SportRugby,
		core.SportFieldHockey,
		core.SportIceHockey,
		core.SportCricket,
		core.SportBaseball,
		core.SportTennis,
		core.SportNetball,
	}
}
