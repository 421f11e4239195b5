// Package storage opens the entity stores for the configured backend.
package storage

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/corycamp/support-ticket-backend/internal/domain/shared/store"
	"github.com/corycamp/support-ticket-backend/internal/domain/ticket"
	"github.com/corycamp/support-ticket-backend/internal/domain/user"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/database"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/memstore"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/migration"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/repository"
	"github.com/corycamp/support-ticket-backend/internal/shared/config"
	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
)

// Backend is one set of stores. All three share the same backend so that a
// ticket and its comments never live in different places.
type Backend struct {
	Name     string
	DB       *gorm.DB
	Tickets  store.Store[ticket.Ticket]
	Comments store.Store[ticket.Comment]
	Users    store.Store[user.User]
}

// Options control how the database backend is prepared.
type Options struct {
	// AutoMigrate runs the configured migration strategy after connecting.
	// SQLite databases are always migrated.
	AutoMigrate bool
}

// Memory returns a fresh set of volatile stores.
func Memory() *Backend {
	return &Backend{
		Name:     config.BackendMemory,
		Tickets:  memstore.NewTicketStore(),
		Comments: memstore.NewCommentStore(),
		Users:    memstore.NewUserStore(),
	}
}

// Open builds the stores selected by storageCfg. A database that cannot be
// opened or migrated is an error unless FallbackToMemory is set.
func Open(storageCfg config.StorageConfig, dbCfg *config.DatabaseConfig, log logger.Interface, opts Options) (*Backend, error) {
	if !storageCfg.UsesDatabase() {
		log.Infow("using in-memory storage, data is lost on restart")
		return Memory(), nil
	}

	b, err := openDatabase(dbCfg, log, opts)
	if err != nil {
		if !storageCfg.FallbackToMemory {
			return nil, err
		}
		log.Warnw("database unavailable, falling back to in-memory storage", "error", err)
		return Memory(), nil
	}
	return b, nil
}

func openDatabase(cfg *config.DatabaseConfig, log logger.Interface, opts Options) (*Backend, error) {
	gdb, err := database.Open(cfg, log)
	if err != nil {
		return nil, err
	}

	b := &Backend{
		Name:     config.BackendDatabase,
		DB:       gdb,
		Tickets:  repository.NewTicketStore(gdb),
		Comments: repository.NewCommentStore(gdb),
		Users:    repository.NewUserStore(gdb),
	}

	driver, _, _ := cfg.GetDSN()
	if opts.AutoMigrate || driver == config.DriverSQLite {
		mgr, err := migration.NewManager(cfg, log)
		if err == nil {
			err = mgr.Migrate(gdb)
		}
		if err != nil {
			_ = b.Close()
			return nil, fmt.Errorf("failed to prepare database schema: %w", err)
		}
	}

	return b, nil
}

// Close releases the database connection, if any.
func (b *Backend) Close() error {
	if b.DB == nil {
		return nil
	}
	sqlDB, err := b.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
