// internal/storage/memory/memory.go
package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/pitchconnect/tacticboard/pkg/core"
)

// Gateway stores tactics and rosters in memory. Used by tests and demo mode.
type Gateway struct {
	mu sync.RWMutex

	tactics   map[uint]core.Tactic
	rosters   map[uint][]core.Player
	idCounter uint

	now func() time.Time
}

// New creates a new in-memory gateway.
func New() *Gateway {
	return &Gateway{
		tactics: make(map[uint]core.Tactic),
		rosters: make(map[uint][]core.Player),
		now:     time.Now,
	}
}

// Init initializes the gateway.
func (g *Gateway) Init() error {
	return nil
}

// Close cleans up resources.
func (g *Gateway) Close() error {
	return nil
}

// SeedRoster installs a squad for a team. Demo/test helper; real rosters come
// from the club-management side of the application.
func (g *Gateway) SeedRoster(teamID uint, squad []core.Player) {
	g.mu.Lock()
	defer g.mu.Unlock()
	cp := make([]core.Player, len(squad))
	copy(cp, squad)
	g.rosters[teamID] = cp
}

// ListTactics returns every stored tactic for a team, newest first, matching
// the gorm backend's ordering.
func (g *Gateway) ListTactics(teamID uint) ([]core.Tactic, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var docs []core.Tactic
	for _, doc := range g.tactics {
		if doc.TeamID == teamID {
			docs = append(docs, doc)
		}
	}
	sort.SliceStable(docs, func(i, j int) bool {
		if !docs[i].UpdatedAt.Equal(docs[j].UpdatedAt) {
			return docs[i].UpdatedAt.After(docs[j].UpdatedAt)
		}
		return docs[i].ID > docs[j].ID
	})
	return docs, nil
}

// GetTactic loads one tactic by id.
func (g *Gateway) GetTactic(id uint) (core.Tactic, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	doc, ok := g.tactics[id]
	if !ok {
		return core.Tactic{}, fmt.Errorf("tactic %d not found", id)
	}
	return doc, nil
}

// SaveTactic stores a full snapshot, assigning an id and timestamps on first
// save, and returns the stored copy.
func (g *Gateway) SaveTactic(doc core.Tactic) (core.Tactic, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if doc.ID == 0 {
		g.idCounter++
		doc.ID = g.idCounter
		doc.CreatedAt = now
	} else if existing, ok := g.tactics[doc.ID]; ok {
		doc.CreatedAt = existing.CreatedAt
	}
	doc.UpdatedAt = now

	g.tactics[doc.ID] = doc
	return doc, nil
}

// LoadRoster returns the seeded squad for a team, in order.
func (g *Gateway) LoadRoster(teamID uint) ([]core.Player, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	squad, ok := g.rosters[teamID]
	if !ok {
		return nil, nil
	}
	cp := make([]core.Player, len(squad))
	copy(cp, squad)
	return cp, nil
}
