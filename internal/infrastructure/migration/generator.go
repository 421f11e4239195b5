package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
)

var migrationName = regexp.MustCompile(`^[a-z0-9_]+$`)

// Generator writes new migration scripts into the source tree. Both layouts
// are written so the two versioned strategies stay in step.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
	now         func() time.Time
}

// NewGenerator takes the scripts directory holding goose/ and migrate/.
func NewGenerator(scriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.generator"),
		now:         time.Now,
	}
}

// CreateMigration writes a goose script into goose/ and an up/down pair
// into migrate/, returning the pair's paths.
func (g *Generator) CreateMigration(name string) ([]string, error) {
	if !migrationName.MatchString(name) {
		return nil, fmt.Errorf("migration name must be snake_case: %q", name)
	}

	gooseDir := filepath.Join(g.scriptsPath, "goose")
	migrateDir := filepath.Join(g.scriptsPath, "migrate")
	for _, dir := range []string{gooseDir, migrateDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create scripts directory: %w", err)
		}
	}

	if err := goose.Create(nil, gooseDir, name, "sql"); err != nil {
		return nil, fmt.Errorf("failed to create goose migration: %w", err)
	}

	timestamp := g.now().UTC().Format("20060102150405")
	up := filepath.Join(migrateDir, fmt.Sprintf("%s_%s.up.sql", timestamp, name))
	down := filepath.Join(migrateDir, fmt.Sprintf("%s_%s.down.sql", timestamp, name))

	if err := os.WriteFile(up, []byte(fmt.Sprintf("-- Migration: %s\n", name)), 0o644); err != nil {
		return nil, fmt.Errorf("failed to create up migration file: %w", err)
	}
	if err := os.WriteFile(down, []byte(fmt.Sprintf("-- Rollback: %s\n", name)), 0o644); err != nil {
		return nil, fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created", "name", name, "up_file", up, "down_file", down)
	return []string{up, down}, nil
}
