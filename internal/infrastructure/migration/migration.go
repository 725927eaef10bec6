// Package migration keeps the database schema current. Versioned SQL runs
// through goose; GORM AutoMigrate is available for development.
package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/deskhub/deskhub/internal/shared/constants"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

// Manager runs one Strategy and logs around it.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks goose everywhere except when autoMigrate is requested in
// development.
func NewManager(environment, driver string, autoMigrate bool, log logger.Interface) (*Manager, error) {
	if autoMigrate && strings.EqualFold(environment, constants.EnvDevelopment) {
		return NewManagerWithStrategy(NewGormAutoMigrateStrategy(), log), nil
	}
	goose, err := NewGooseStrategy(driver, log)
	if err != nil {
		return nil, err
	}
	return NewManagerWithStrategy(goose, log), nil
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
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

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
