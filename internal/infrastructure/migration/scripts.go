package migration

import "embed"

// Scripts holds the versioned MySQL schema in both on-disk layouts:
// scripts/goose for goose and scripts/migrate for golang-migrate.
//
//go:embed scripts/goose/*.sql scripts/migrate/*.sql
var Scripts embed.FS

const (
	gooseDir   = "scripts/goose"
	migrateDir = "scripts/migrate"
)
