// Package gormstore implements the storage.Gateway interface on top of the
// GORM database manager (Postgres, or the local SQLite fallback).
package gormstore

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pitchconnect/tacticboard/internal/database"
	"github.com/pitchconnect/tacticboard/internal/model"
	"github.com/pitchconnect/tacticboard/internal/model/convert"
	"github.com/pitchconnect/tacticboard/pkg/core"
)

// Gateway persists tactics and rosters through GORM.
type Gateway struct {
	mgr *database.Manager
}

// New creates a gateway over an already-connected database manager.
func New(mgr *database.Manager) *Gateway {
	return &Gateway{mgr: mgr}
}

// Init migrates the schema.
func (g *Gateway) Init() error {
	return g.mgr.Migrate()
}

// Close closes the database connection.
func (g *Gateway) Close() error {
	return g.mgr.Close()
}

// ListTactics returns every tactic for a team, position rows included,
// newest first.
func (g *Gateway) ListTactics(teamID uint) ([]core.Tactic, error) {
	var rows []model.Tactic
	err := g.mgr.DB.
		Preload("PlayerPositions", func(db *gorm.DB) *gorm.DB {
			return db.Order("slot_index ASC")
		}).
		Where("team_id = ?", teamID).
		Order("updated_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tactics: %w", err)
	}

	docs := make([]core.Tactic, len(rows))
	for i, row := range rows {
		docs[i] = convert.TacticToCore(row)
	}
	return docs, nil
}

// GetTactic loads one tactic by id.
func (g *Gateway) GetTactic(id uint) (core.Tactic, error) {
	var row model.Tactic
	err := g.mgr.DB.
		Preload("PlayerPositions", func(db *gorm.DB) *gorm.DB {
			return db.Order("slot_index ASC")
		}).
		First(&row, id).Error
	if err != nil {
		return core.Tactic{}, fmt.Errorf("failed to load tactic %d: %w", id, err)
	}
	return convert.TacticToCore(row), nil
}

// SaveTactic persists a full snapshot and returns the authoritative stored
// copy with id and timestamps assigned. Re-saves replace the position rows
// wholesale; there is no partial patch.
func (g *Gateway) SaveTactic(doc core.Tactic) (core.Tactic, error) {
	row := convert.TacticToModel(doc)

	err := g.mgr.DB.Transaction(func(tx *gorm.DB) error {
		if row.ID != 0 {
			if err := tx.Where("tactic_id = ?", row.ID).
				Delete(&model.TacticPosition{}).Error; err != nil {
				return err
			}
			return tx.Save(&row).Error
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return core.Tactic{}, fmt.Errorf("failed to save tactic: %w", err)
	}

	return g.GetTactic(row.ID)
}

// LoadRoster returns a team's squad in roster order.
func (g *Gateway) LoadRoster(teamID uint) ([]core.Player, error) {
	var rows []model.RosterEntry
	err := g.mgr.DB.
		Where("team_id = ?", teamID).
		Order("roster_order ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	squad := make([]core.Player, len(rows))
	for i, row := range rows {
		squad[i] = convert.RosterEntryToCore(row)
	}
	return squad, nil
}
