package storage

import (
	"context"
	"time"
)

// SyncKind вид операции синхронизации
type SyncKind string

const (
	// SyncFill загрузка записей с сервера
	SyncFill SyncKind = "fill"
	// SyncPush отправка локальных изменений
	SyncPush SyncKind = "push"
)

//go:generate moq -out metadatastorage_mock.go . MetadataStorage

// MetadataStorage хранит время последних синхронизаций по таблицам
type MetadataStorage interface {
	// SaveLastSync сохраняет время последней успешной операции для таблицы
	SaveLastSync(ctx context.Context, table string, kind SyncKind, at time.Time) error

	// GetLastSync возвращает время последней успешной операции.
	// Нулевое время, если операция еще не выполнялась
	GetLastSync(ctx context.Context, table string, kind SyncKind) (time.Time, error)
}
