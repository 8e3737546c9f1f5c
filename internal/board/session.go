// Package board owns the live placement state for one tactic editing session.
// A Session is single-editor: one coach, one tactic, one browser session. The
// mutex only guards against the async save worker reading a snapshot while an
// edit lands; there is no multi-writer arbitration.
package board

import (
	"math"
	"sync"

	"github.com/pitchconnect/tacticboard/internal/catalog"
	"github.com/pitchconnect/tacticboard/internal/formation"
	"github.com/pitchconnect/tacticboard/internal/metrics"
	"github.com/pitchconnect/tacticboard/internal/roster"
	"github.com/pitchconnect/tacticboard/pkg/core"
)

// Interactive clamping bounds. Markers are kept away from the surface edge so
// they stay visible and draggable.
const (
	ClampMin = 5.0
	ClampMax = 95.0
)

// State is the session lifecycle state.
type State int

const (
	Uninitialized State = iota
	Seeded
	Editing
)

// Session is the mutable editing state for one tactic. Create with New, feed
// it a squad, then select formations and move players. The session is the
// single owner of its placement; persisted documents are produced by value
// snapshots, never by aliasing.
type Session struct {
	mu sync.RWMutex

	sport  core.Sport
	config core.SportConfig
	squad  []core.Player

	formationDef core.FormationDefinition
	placement    core.Placement
	selectedSlot int // -1 = none
	state        State
}

// New creates a session for a sport. An unknown sport is a programming error
// and fails immediately.
func New(sport core.Sport) (*Session, error) {
	cfg, err := catalog.ConfigFor(sport)
	if err != nil {
		return nil, err
	}
	return &Session{
		sport:        sport,
		config:       cfg,
		selectedSlot: -1,
		state:        Uninitialized,
	}, nil
}

// SetSquad replaces the known roster. It does not re-seed on its own; callers
// follow up with SelectFormation to apply the new squad to the board.
func (s *Session) SetSquad(squad []core.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.squad = make([]core.Player, len(squad))
	copy(s.squad, squad)
}

// SelectFormation re-seeds the board from the named formation and the current
// squad. All in-progress coordinate edits are discarded; operators are
// expected to reposition after switching.
func (s *Session) SelectFormation(formationID string) error {
	def, err := formation.Find(s.sport, formationID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.formationDef = def
	s.placement = roster.Seed(def, s.squad)
	s.selectedSlot = -1
	s.state = Seeded
	return nil
}

// MovePlayer writes clamped coordinates into the slot at slotIndex. An
// out-of-range index or NaN coordinates are ignored: losing a single drag
// gesture beats crashing an interactive session. Infinite coordinates clamp
// to the safe area like any other out-of-bounds value.
func (s *Session) MovePlayer(slotIndex int, rawX, rawY float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slotIndex < 0 || slotIndex >= len(s.placement.Entries) {
		return
	}
	if math.IsNaN(rawX) || math.IsNaN(rawY) {
		return
	}

	s.placement.Entries[slotIndex].X = clamp(rawX)
	s.placement.Entries[slotIndex].Y = clamp(rawY)
	s.state = Editing
	metrics.PlayerMoved(s.sport)
}

// SelectSlot sets UI focus to a slot, or clears it with a negative index.
// Pure focus state, no effect on coordinates.
func (s *Session) SelectSlot(slotIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slotIndex < 0 || slotIndex >= len(s.placement.Entries) {
		s.selectedSlot = -1
		return
	}
	s.selectedSlot = slotIndex
}

// SelectedSlot returns the focused slot index, -1 for none.
func (s *Session) SelectedSlot() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedSlot
}

// ResetToFormationDefaults re-seeds coordinates from the active formation
// without touching strategy selections or notes held elsewhere. Restores the
// Seeded baseline.
func (s *Session) ResetToFormationDefaults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.formationDef.ID == "" {
		return
	}
	s.placement = roster.Seed(s.formationDef, s.squad)
	s.state = Seeded
}

// LoadPlacement replaces the board state with a previously hydrated placement,
// e.g. when a coach re-opens a saved tactic. The stored slot order is
// authoritative; the live formation definition is only used for later resets.
func (s *Session) LoadPlacement(p core.Placement) error {
	def, err := formation.Find(s.sport, p.FormationID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.formationDef = def
	s.placement = p.Clone()
	s.selectedSlot = -1
	s.state = Editing
	return nil
}

// Placement returns a snapshot copy of the current placement.
func (s *Session) Placement() core.Placement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.placement.Clone()
}

// Formation returns the active formation definition.
func (s *Session) Formation() core.FormationDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.formationDef
}

// Sport returns the session's sport.
func (s *Session) Sport() core.Sport {
	return s.sport
}

// Config returns the sport config resolved at session creation.
func (s *Session) Config() core.SportConfig {
	return s.config
}

// State returns the session lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func clamp(v float64) float64 {
	if v < ClampMin {
		return ClampMin
	}
	if v > ClampMax {
		return ClampMax
	}
	return v
}
