// Package tactic builds durable Tactic documents from live placements and
// turns them back into placements on load. Snapshot and Hydrate are pure
// transforms across the editing/persistence boundary: no shared state crosses
// it, so a failed save can never corrupt the board.
package tactic

import (
	"errors"
	"sort"

	"github.com/pitchconnect/tacticboard/internal/metrics"
	"github.com/pitchconnect/tacticboard/pkg/core"
)

// Validation errors. These are recoverable: the caller surfaces a rejected
// save and the in-memory placement is untouched.
var (
	ErrMissingTeamID    = errors.New("tactic: team id is required")
	ErrMissingFormation = errors.New("tactic: formation is required")
)

// SnapshotRequest carries everything a savable document needs beyond the
// placement itself.
type SnapshotRequest struct {
	CoachID        uint
	TeamID         uint
	Name           string
	PlayStyle      string
	DefensiveShape string
	PressType      string
	TempoStyle     string
	BuildUpPlay    string
	AttackingWidth string
	DefensiveLine  string
	Notes          string
	IsDefault      bool
}

// Snapshot copies a live placement into a persistable Tactic. Every placement
// entry is copied verbatim, occupants included. TeamID and formation are the
// two mandatory fields; their absence rejects the save.
func Snapshot(req SnapshotRequest, placement core.Placement) (core.Tactic, error) {
	if req.TeamID == 0 {
		return core.Tactic{}, ErrMissingTeamID
	}
	if placement.FormationID == "" {
		return core.Tactic{}, ErrMissingFormation
	}

	doc := core.Tactic{
		CoachID:        req.CoachID,
		TeamID:         req.TeamID,
		Sport:          placement.Sport,
		Name:           req.Name,
		FormationID:    placement.FormationID,
		PlayStyle:      req.PlayStyle,
		DefensiveShape: req.DefensiveShape,
		PressType:      req.PressType,
		TempoStyle:     req.TempoStyle,
		BuildUpPlay:    req.BuildUpPlay,
		AttackingWidth: req.AttackingWidth,
		DefensiveLine:  req.DefensiveLine,
		Notes:          req.Notes,
		IsDefault:      req.IsDefault,

		PlayerPositions: make([]core.PlayerPosition, len(placement.Entries)),
	}

	for i, e := range placement.Entries {
		doc.PlayerPositions[i] = core.PlayerPosition{
			SlotIndex: e.SlotIndex,
			Occupant:  e.Occupant,
			X:         e.X,
			Y:         e.Y,
		}
	}

	metrics.SnapshotTaken(placement.Sport)
	return doc, nil
}

// Hydrate reconstructs the live placement from a saved document. The
// document's slot indices are authoritative, not the current formation
// definition: formations may have been edited since the save, and stored
// layouts must not shift underneath the coach.
func Hydrate(doc core.Tactic) core.Placement {
	positions := make([]core.PlayerPosition, len(doc.PlayerPositions))
	copy(positions, doc.PlayerPositions)
	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].SlotIndex < positions[j].SlotIndex
	})

	placement := core.Placement{
		Sport:       doc.Sport,
		FormationID: doc.FormationID,
		Entries:     make([]core.PlacementEntry, len(positions)),
	}
	for i, p := range positions {
		placement.Entries[i] = core.PlacementEntry{
			SlotIndex: p.SlotIndex,
			Occupant:  p.Occupant,
			X:         p.X,
			Y:         p.Y,
		}
	}
	return placement
}
