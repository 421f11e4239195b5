package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corycamp/support-ticket-backend/internal/domain/ticket"
	vo "github.com/corycamp/support-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/corycamp/support-ticket-backend/internal/shared/config"
	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
)

func TestOpen_Memory(t *testing.T) {
	b, err := Open(config.StorageConfig{Backend: config.BackendMemory}, &config.DatabaseConfig{}, logger.Discard(), Options{})
	require.NoError(t, err)
	assert.Equal(t, config.BackendMemory, b.Name)
	assert.Nil(t, b.DB)
	assert.NoError(t, b.Close())
}

func TestOpen_SQLiteIsMigrated(t *testing.T) {
	dbCfg := &config.DatabaseConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "desk.db")}

	b, err := Open(config.StorageConfig{Backend: config.BackendDatabase}, dbCfg, logger.Discard(), Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	assert.Equal(t, config.BackendDatabase, b.Name)

	tk, err := ticket.NewTicket("Disk full", "", vo.PriorityHigh, vo.StatusOpen)
	require.NoError(t, err)
	saved, err := b.Tickets.Save(context.Background(), tk)
	require.NoError(t, err)
	assert.Equal(t, uint(1), saved.ID)
}

func TestOpen_DatabaseFailure(t *testing.T) {
	bad := &config.DatabaseConfig{Driver: "oracle"}

	_, err := Open(config.StorageConfig{Backend: config.BackendDatabase}, bad, logger.Discard(), Options{})
	require.Error(t, err)

	b, err := Open(config.StorageConfig{Backend: config.BackendDatabase, FallbackToMemory: true}, bad, logger.Discard(), Options{})
	require.NoError(t, err)
	assert.Equal(t, config.BackendMemory, b.Name)
}
