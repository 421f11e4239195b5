// Package migration builds and versions the database schema.
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/corycamp/support-ticket-backend/internal/shared/config"
	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
)

// Manager runs the strategy chosen for a database config.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the configured strategy. SQLite always uses gorm
// AutoMigrate because the versioned scripts are MySQL DDL.
func NewManager(cfg *config.DatabaseConfig, log logger.Interface) (*Manager, error) {
	driver, _, err := cfg.GetDSN()
	if err != nil {
		return nil, err
	}

	var strategy Strategy
	switch {
	case driver == config.DriverSQLite || cfg.MigrationStrategy == config.MigrationAuto || cfg.MigrationStrategy == "":
		strategy = NewGormAutoMigrateStrategy(log)
	case cfg.MigrationStrategy == config.MigrationGoose:
		strategy = NewGooseStrategy(log)
	case cfg.MigrationStrategy == config.MigrationGolangMigrate:
		strategy = NewGolangMigrateStrategy(log)
	default:
		return nil, fmt.Errorf("unknown migration strategy: %s", cfg.MigrationStrategy)
	}

	return NewManagerWithStrategy(strategy, log), nil
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{strategy: strategy, logger: log.With("component", "migration.manager")}
}

func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed", "strategy", m.strategy.GetName())
	return nil
}

// Down rolls back steps versions. AutoMigrate has no history to roll back.
func (m *Manager) Down(db *gorm.DB, steps int) error {
	v, ok := m.strategy.(Versioned)
	if !ok {
		return fmt.Errorf("strategy %s does not support down migrations", m.strategy.GetName())
	}
	return v.MigrateDown(db, steps)
}

// Version reports the applied schema version, or -1 for AutoMigrate.
func (m *Manager) Version(db *gorm.DB) (int64, error) {
	v, ok := m.strategy.(Versioned)
	if !ok {
		return -1, nil
	}
	return v.Version(db)
}

func (m *Manager) Strategy() Strategy {
	return m.strategy
}
