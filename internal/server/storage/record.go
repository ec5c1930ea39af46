package storage

import (
	"context"

	"github.com/iudanet/recordsync/internal/models"
)

//go:generate moq -out recordstorage_mock.go . RecordStorage

// RecordStorage хранит записи объектов
type RecordStorage interface {
	// CreateRecord сохраняет новую запись и присваивает ей следующий
	// порядковый номер в пределах объекта (record.Number)
	CreateRecord(ctx context.Context, record *models.StoredRecord) error

	// GetRecord returns ErrRecordNotFound if record doesn't exist
	GetRecord(ctx context.Context, identifier, key string) (*models.StoredRecord, error)

	// ListRecords возвращает записи объекта в порядке номеров
	ListRecords(ctx context.Context, identifier string) ([]*models.StoredRecord, error)

	// UpdateRecord заменяет поля записи и updated_at
	// Returns ErrRecordNotFound if record doesn't exist
	UpdateRecord(ctx context.Context, record *models.StoredRecord) error

	// DeleteRecord удаляет запись
	// Returns ErrRecordNotFound if record doesn't exist
	DeleteRecord(ctx context.Context, identifier, key string) error
}
