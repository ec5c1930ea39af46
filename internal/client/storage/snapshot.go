package storage

import (
	"context"

	"github.com/iudanet/recordsync/internal/client/table"
)

//go:generate moq -out snapshotstorage_mock.go . SnapshotStorage

// SnapshotStorage хранит локальные копии таблиц вместе с журналом изменений
type SnapshotStorage interface {
	// SaveTable сохраняет или заменяет снимок таблицы
	SaveTable(ctx context.Context, snap *table.Snapshot) error

	// LoadTable возвращает снимок таблицы.
	// Returns ErrTableNotFound if snapshot doesn't exist
	LoadTable(ctx context.Context, name string) (*table.Snapshot, error)

	// DeleteTable удаляет снимок; отсутствие снимка не ошибка
	DeleteTable(ctx context.Context, name string) error

	// ListTables возвращает имена сохраненных таблиц
	ListTables(ctx context.Context) ([]string, error)
}
