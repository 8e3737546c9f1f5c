// Package export produces the downloadable tactic document: a flat, one-way
// projection with display labels resolved. Nothing ever reads an export back
// in; the durable Tactic record is the only import path.
package export

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pitchconnect/tacticboard/internal/catalog"
	"github.com/pitchconnect/tacticboard/internal/formation"
	"github.com/pitchconnect/tacticboard/internal/metrics"
	"github.com/pitchconnect/tacticboard/pkg/core"
)

// Config holds export output settings.
type Config struct {
	OutputDir      string
	CompressOutput bool
}

// PlayerEntry is one slot in the export document.
type PlayerEntry struct {
	SlotIndex    int     `json:"slotIndex"`
	Name         string  `json:"name"`
	JerseyNumber int     `json:"jerseyNumber"`
	Role         string  `json:"role"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
}

// Document is the flat export shape.
type Document struct {
	Name           string        `json:"name"`
	Sport          string        `json:"sport"`
	Formation      string        `json:"formation"`
	PlayStyle      string        `json:"playStyle"`
	DefensiveShape string        `json:"defensiveShape"`
	Players        []PlayerEntry `json:"players"`
	Notes          string        `json:"notes"`
	ExportedAt     time.Time     `json:"exportedAt"`
}

// Build projects a Tactic into the export shape, resolving sport, formation
// and strategy ids to display labels. Unresolvable ids degrade to the raw id
// rather than failing: exports of old documents must still render.
func Build(doc core.Tactic, now time.Time) Document {
	sportLabel := string(doc.Sport)
	if cfg, err := catalog.ConfigFor(doc.Sport); err == nil {
		sportLabel = cfg.DisplayName
	}

	formationLabel := doc.FormationID
	if def, err := formation.Find(doc.Sport, doc.FormationID); err == nil {
		formationLabel = def.DisplayName
	}

	out := Document{
		Name:           doc.Name,
		Sport:          sportLabel,
		Formation:      formationLabel,
		PlayStyle:      core.StrategyLabel(core.PlayStyles, doc.PlayStyle),
		DefensiveShape: core.StrategyLabel(core.DefensiveShapes, doc.DefensiveShape),
		Players:        make([]PlayerEntry, len(doc.PlayerPositions)),
		Notes:          doc.Notes,
		ExportedAt:     now.UTC(),
	}

	for i, p := range doc.PlayerPositions {
		out.Players[i] = PlayerEntry{
			SlotIndex:    p.SlotIndex,
			Name:         p.Occupant.DisplayName,
			JerseyNumber: p.Occupant.JerseyNumber,
			Role:         p.Occupant.Role,
			X:            p.X,
			Y:            p.Y,
		}
	}

	metrics.ExportBuilt(doc.Sport)
	return out
}

// Write serializes the document into the configured output directory as JSON,
// gzip-compressed when configured. Returns the written file path.
func Write(cfg Config, doc Document) (string, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	name := fmt.Sprintf("tactic_%s.json", doc.ExportedAt.Format("20060102_150405"))
	if cfg.CompressOutput {
		name += ".gz"
	}
	path := filepath.Join(cfg.OutputDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if cfg.CompressOutput {
		gz := gzip.NewWriter(f)
		defer gz.Close()
		if err := json.NewEncoder(gz).Encode(doc); err != nil {
			return "", fmt.Errorf("failed to encode export: %w", err)
		}
		return path, nil
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("failed to encode export: %w", err)
	}
	return path, nil
}
