package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}

func TestNew_FileDatabase(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "recordd.db")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Close())

	// повторное открытие не применяет миграции заново
	s, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, s.Close())
	}()

	var tables int
	err = s.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('users', 'records')`).Scan(&tables)
	require.NoError(t, err)
	assert.Equal(t, 2, tables)
}

func TestNew_InvalidPath(t *testing.T) {
	_, err := New(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "db.sqlite"))
	assert.Error(t, err)
}
