// Package formation is the per-sport formation library. Every formation is a
// fixed ordered slot list with normalized coordinates; slot order is the join
// key for positional roster seeding and must never be reordered.
package formation

import (
	"fmt"

	"github.com/pitchconnect/tacticboard/pkg/core"
)

// ErrUnknownFormation is returned when a formation id is not registered for
// the given sport. Like an unknown sport, this indicates a programming defect.
var ErrUnknownFormation = fmt.Errorf("unknown formation")

func slot(x, y float64, role, label string) core.PositionSlot {
	return core.PositionSlot{X: x, Y: y, Role: role, Label: label}
}

// library maps sport -> ordered formation list. Coordinate convention:
// x runs across the surface width, y along its length with 0 at the own end.
var library = map[core.Sport][]core.FormationDefinition{
	core.SportFootball: {
		{
			ID: "4-4-2", Sport: core.SportFootball, DisplayName: "4-4-2",
			Description: "Two banks of four with a front pairing.",
			Slots: []core.PositionSlot{
				slot(50, 6, "GK", "Goalkeeper"),
				slot(15, 25, "LB", "Left Back"),
				slot(38, 22, "CB", "Centre Back"),
				slot(62, 22, "CB", "Centre Back"),
				slot(85, 25, "RB", "Right Back"),
				slot(15, 50, "LM", "Left Midfield"),
				slot(38, 48, "CM", "Centre Midfield"),
				slot(62, 48, "CM", "Centre Midfield"),
				slot(85, 50, "RM", "Right Midfield"),
				slot(40, 75, "ST", "Striker"),
				slot(60, 75, "ST", "Striker"),
			},
		},
		{
			ID: "4-3-3", Sport: core.SportFootball, DisplayName: "4-3-3",
			Description: "Back four, midfield triangle, wide front three.",
			Slots: []core.PositionSlot{
				slot(50, 6, "GK", "Goalkeeper"),
				slot(15, 25, "LB", "Left Back"),
				slot(38, 22, "CB", "Centre Back"),
				slot(62, 22, "CB", "Centre Back"),
				slot(85, 25, "RB", "Right Back"),
				slot(30, 48, "CM", "Centre Midfield"),
				slot(50, 40, "CDM", "Defensive Midfield"),
				slot(70, 48, "CM", "Centre Midfield"),
				slot(18, 72, "LW", "Left Wing"),
				slot(50, 78, "ST", "Striker"),
				slot(82, 72, "RW", "Right Wing"),
			},
		},
		{
			ID: "3-5-2", Sport: core.SportFootball, DisplayName: "3-5-2",
			Description: "Back three with wing backs providing the width.",
			Slots: []core.PositionSlot{
				slot(50, 6, "GK", "Goalkeeper"),
				slot(28, 22, "CB", "Centre Back"),
				slot(50, 20, "CB", "Centre Back"),
				slot(72, 22, "CB", "Centre Back"),
				slot(10, 45, "LWB", "Left Wing Back"),
				slot(35, 48, "CM", "Centre Midfield"),
				slot(50, 40, "CDM", "Defensive Midfield"),
				slot(65, 48, "CM", "Centre Midfield"),
				slot(90, 45, "RWB", "Right Wing Back"),
				slot(40, 75, "ST", "Striker"),
				slot(60, 75, "ST", "Striker"),
			},
		},
		{
			ID: "4-2-3-1", Sport: core.SportFootball, DisplayName: "4-2-3-1",
			Description: "Double pivot behind an attacking midfield trio.",
			Slots: []core.PositionSlot{
				slot(50, 6, "GK", "Goalkeeper"),
				slot(15, 25, "LB", "Left Back"),
				slot(38, 22, "CB", "Centre Back"),
				slot(62, 22, "CB", "Centre Back"),
				slot(85, 25, "RB", "Right Back"),
				slot(38, 40, "CDM", "Defensive Midfield"),
				slot(62, 40, "CDM", "Defensive Midfield"),
				slot(20, 58, "LAM", "Left Attacking Midfield"),
				slot(50, 60, "CAM", "Attacking Midfield"),
				slot(80, 58, "RAM", "Right Attacking Midfield"),
				slot(50, 78, "ST", "Striker"),
			},
		},
	},
	core.SportFutsal: {
		{
			ID: "1-2-1", Sport: core.SportFutsal, DisplayName: "1-2-1 Diamond",
			Description: "Fixo anchoring, wide alas, pivot up top.",
			Slots: []core.PositionSlot{
				slot(50, 8, "GK", "Goalkeeper"),
				slot(50, 30, "FIX", "Fixo"),
				slot(20, 52, "ALA", "Left Ala"),
				slot(80, 52, "ALA", "Right Ala"),
				slot(50, 78, "PIV", "Pivot"),
			},
		},
		{
			ID: "2-2", Sport: core.SportFutsal, DisplayName: "2-2 Square",
			Description: "Two defenders, two attackers in a square.",
			Slots: []core.PositionSlot{
				slot(50, 8, "GK", "Goalkeeper"),
				slot(30, 32, "DF", "Defender"),
				slot(70, 32, "DF", "Defender"),
				slot(30, 65, "FW", "Forward"),
				slot(70, 65, "FW", "Forward"),
			},
		},
	},
	core.SportBasketball: {
		{
			ID: "balanced", Sport: core.SportBasketball, DisplayName: "Balanced",
			Description: "Standard halfcourt spacing.",
			Slots: []core.PositionSlot{
				slot(50, 35, "PG", "Point Guard"),
				slot(25, 50, "SG", "Shooting Guard"),
				slot(75, 50, "SF", "Small Forward"),
				slot(30, 75, "PF", "Power Forward"),
				slot(60, 80, "C", "Center"),
			},
		},
		{
			ID: "2-3-zone", Sport: core.SportBasketball, DisplayName: "2-3 Zone",
			Description: "Two up top, three across the baseline.",
			Slots: []core.PositionSlot{
				slot(35, 40, "G", "Guard"),
				slot(65, 40, "G", "Guard"),
				slot(20, 70, "F", "Forward"),
				slot(50, 75, "C", "Center"),
				slot(80, 70, "F", "Forward"),
			},
		},
	},
	core.SportVolleyball: {
		{
			ID: "5-1", Sport: core.SportVolleyball, DisplayName: "5-1",
			Description: "Single setter rotation.",
			Slots: []core.PositionSlot{
				slot(75, 30, "S", "Setter"),
				slot(75, 62, "OPP", "Opposite"),
				slot(50, 62, "MB", "Middle Blocker"),
				slot(25, 62, "OH", "Outside Hitter"),
				slot(25, 30, "OH", "Outside Hitter"),
				slot(50, 25, "L", "Libero"),
			},
		},
		{
			ID: "4-2", Sport: core.SportVolleyball, DisplayName: "4-2",
			Description: "Two setters, setter always front row.",
			Slots: []core.PositionSlot{
				slot(75, 30, "S", "Setter"),
				slot(75, 62, "OH", "Outside Hitter"),
				slot(50, 62, "MB", "Middle Blocker"),
				slot(25, 62, "OH", "Outside Hitter"),
				slot(25, 30, "S", "Setter"),
				slot(50, 25, "MB", "Middle Blocker"),
			},
		},
	},
	core.SportHandball: {
		{
			ID: "standard", Sport: core.SportHandball, DisplayName: "Standard Attack",
			Description: "Classic 3-3 attacking shape around the pivot.",
			Slots: []core.PositionSlot{
				slot(50, 8, "GK", "Goalkeeper"),
				slot(10, 60, "LW", "Left Wing"),
				slot(28, 48, "LB", "Left Back"),
				slot(50, 45, "CB", "Centre Back"),
				slot(72, 48, "RB", "Right Back"),
				slot(90, 60, "RW", "Right Wing"),
				slot(50, 62, "PIV", "Pivot"),
			},
		},
	},
	core.SportRugby: {
		{
			ID: "standard-xv", Sport: core.SportRugby, DisplayName: "Standard XV",
			Description: "Forward pack with a full back line.",
			Slots: []core.PositionSlot{
				slot(38, 20, "LHP", "Loosehead Prop"),
				slot(50, 20, "HK", "Hooker"),
				slot(62, 20, "THP", "Tighthead Prop"),
				slot(44, 14, "L", "Lock"),
				slot(56, 14, "L", "Lock"),
				slot(30, 16, "FL", "Blindside Flanker"),
				slot(70, 16, "FL", "Openside Flanker"),
				slot(50, 9, "N8", "Number Eight"),
				slot(40, 30, "SH", "Scrum Half"),
				slot(55, 38, "FH", "Fly Half"),
				slot(42, 48, "IC", "Inside Centre"),
				slot(58, 52, "OC", "Outside Centre"),
				slot(15, 58, "LW", "Left Wing"),
				slot(85, 58, "RW", "Right Wing"),
				slot(50, 68, "FB", "Full Back"),
			},
		},
	},
	core.SportFieldHockey: {
		{
			ID: "4-3-3", Sport: core.SportFieldHockey, DisplayName: "4-3-3",
			Description: "Back four with a three-pronged attack.",
			Slots: []core.PositionSlot{
				slot(50, 6, "GK", "Goalkeeper"),
				slot(15, 25, "LB", "Left Back"),
				slot(38, 22, "CB", "Centre Back"),
				slot(62, 22, "CB", "Centre Back"),
				slot(85, 25, "RB", "Right Back"),
				slot(30, 48, "LM", "Left Midfield"),
				slot(50, 44, "CM", "Centre Midfield"),
				slot(70, 48, "RM", "Right Midfield"),
				slot(22, 72, "LF", "Left Forward"),
				slot(50, 78, "CF", "Centre Forward"),
				slot(78, 72, "RF", "Right Forward"),
			},
		},
	},
	core.SportIceHockey: {
		{
			ID: "standard", Sport: core.SportIceHockey, DisplayName: "Standard Lines",
			Description: "Two defensemen behind a forward trio.",
			Slots: []core.PositionSlot{
				slot(50, 8, "G", "Goaltender"),
				slot(30, 28, "LD", "Left Defense"),
				slot(70, 28, "RD", "Right Defense"),
				slot(22, 65, "LW", "Left Wing"),
				slot(50, 60, "C", "Center"),
				slot(78, 65, "RW", "Right Wing"),
			},
		},
	},
	core.SportCricket: {
		{
			ID: "standard-field", Sport: core.SportCricket, DisplayName: "Standard Field",
			Description: "Balanced field for a pace attack.",
			Slots: []core.PositionSlot{
				slot(50, 12, "WK", "Wicketkeeper"),
				slot(56, 16, "SL", "First Slip"),
				slot(62, 18, "SL", "Second Slip"),
				slot(68, 25, "GY", "Gully"),
				slot(80, 42, "PT", "Point"),
				slot(72, 55, "CV", "Cover"),
				slot(62, 68, "MO", "Mid Off"),
				slot(50, 80, "BWL", "Bowler"),
				slot(38, 68, "MON", "Mid On"),
				slot(22, 50, "SQL", "Square Leg"),
				slot(25, 18, "FL", "Fine Leg"),
			},
		},
	},
	core.SportBaseball: {
		{
			ID: "standard", Sport: core.SportBaseball, DisplayName: "Standard Defense",
			Description: "Conventional defensive alignment.",
			Slots: []core.PositionSlot{
				slot(50, 12, "C", "Catcher"),
				slot(50, 42, "P", "Pitcher"),
				slot(72, 40, "1B", "First Base"),
				slot(62, 55, "2B", "Second Base"),
				slot(38, 55, "SS", "Shortstop"),
				slot(28, 40, "3B", "Third Base"),
				slot(22, 75, "LF", "Left Field"),
				slot(50, 85, "CF", "Center Field"),
				slot(78, 75, "RF", "Right Field"),
			},
		},
	},
	core.SportTennis: {
		{
			ID: "doubles", Sport: core.SportTennis, DisplayName: "Doubles",
			Description: "One up, one back.",
			Slots: []core.PositionSlot{
				slot(35, 65, "NET", "Net Player"),
				slot(65, 25, "BL", "Baseline Player"),
			},
		},
	},
	core.SportNetball: {
		{
			ID: "standard", Sport: core.SportNetball, DisplayName: "Standard",
			Description: "Full-court positional layout.",
			Slots: []core.PositionSlot{
				slot(50, 12, "GK", "Goal Keeper"),
				slot(65, 30, "GD", "Goal Defence"),
				slot(35, 45, "WD", "Wing Defence"),
				slot(50, 50, "C", "Centre"),
				slot(65, 55, "WA", "Wing Attack"),
				slot(35, 70, "GA", "Goal Attack"),
				slot(50, 88, "GS", "Goal Shooter"),
			},
		},
	},
}

// FormationsFor returns the ordered formation list for a sport. A sport with
// no dedicated entries falls back to the football set so callers always get a
// usable list; in practice every supported sport has at least one entry.
func FormationsFor(sport core.Sport) []core.FormationDefinition {
	if defs, ok := library[sport]; ok && len(defs) > 0 {
		return defs
	}
	return library[core.SportFootball]
}

// Find looks up a formation by sport and id.
func Find(sport core.Sport, id string) (core.FormationDefinition, error) {
	for _, def := range FormationsFor(sport) {
		if def.ID == id {
			return def, nil
		}
	}
	return core.FormationDefinition{}, fmt.Errorf("%w: %q for sport %q", ErrUnknownFormation, id, sport)
}
