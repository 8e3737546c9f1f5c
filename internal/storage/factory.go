// internal/storage/factory.go
package storage

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/pitchconnect/tacticboard/internal/database"
	"github.com/pitchconnect/tacticboard/internal/storage/gormstore"
	"github.com/pitchconnect/tacticboard/internal/storage/memory"
)

// NewGateway creates a persistence gateway based on configuration.
func NewGateway(storageType string, log zerolog.Logger) (Gateway, error) {
	switch storageType {
	case "gorm":
		mgr := database.NewManager(log)
		mgr.SqliteFilePath = viper.GetString("db.sqliteFile")
		if err := mgr.Connect(); err != nil {
			return nil, fmt.Errorf("failed to connect database: %w", err)
		}
		return gormstore.New(mgr), nil
	case "memory":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", storageType)
	}
}
