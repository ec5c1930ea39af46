package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/recordsync/internal/models"
	"github.com/iudanet/recordsync/internal/server/storage"
)

// CreateRecord сохраняет запись и присваивает ей номер MAX(number)+1 в пределах объекта
func (s *Storage) CreateRecord(ctx context.Context, record *models.StoredRecord) error {
	fields, err := encodeFields(record.Fields)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var number int64
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(number), 0) + 1 FROM records WHERE identifier = ?`,
		record.Identifier,
	).Scan(&number)
	if err != nil {
		return fmt.Errorf("failed to allocate record number: %w", err)
	}

	query := `
		INSERT INTO records (identifier, record_key, number, fields, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, query,
		record.Identifier,
		record.Key,
		number,
		fields,
		record.CreatedAt.UnixMilli(),
		record.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit record: %w", err)
	}

	record.Number = number
	return nil
}

// GetRecord retrieves a single record by key
func (s *Storage) GetRecord(ctx context.Context, identifier, key string) (*models.StoredRecord, error) {
	query := `
		SELECT identifier, record_key, number, fields, created_at, updated_at
		FROM records
		WHERE identifier = ? AND record_key = ?
	`

	record, err := scanRecord(s.db.QueryRowContext(ctx, query, identifier, key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return record, nil
}

// ListRecords возвращает записи объекта в порядке номеров
func (s *Storage) ListRecords(ctx context.Context, identifier string) ([]*models.StoredRecord, error) {
	query := `
		SELECT identifier, record_key, number, fields, created_at, updated_at
		FROM records
		WHERE identifier = ?
		ORDER BY number
	`

	rows, err := s.db.QueryContext(ctx, query, identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	records := make([]*models.StoredRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}

	return records, nil
}

// UpdateRecord заменяет поля записи
func (s *Storage) UpdateRecord(ctx context.Context, record *models.StoredRecord) error {
	fields, err := encodeFields(record.Fields)
	if err != nil {
		return err
	}

	query := `
		UPDATE records
		SET fields = ?, updated_at = ?
		WHERE identifier = ? AND record_key = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		fields,
		record.UpdatedAt.UnixMilli(),
		record.Identifier,
		record.Key,
	)
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}

	return checkAffected(result, storage.ErrRecordNotFound)
}

// DeleteRecord удаляет запись
func (s *Storage) DeleteRecord(ctx context.Context, identifier, key string) error {
	query := `DELETE FROM records WHERE identifier = ? AND record_key = ?`

	result, err := s.db.ExecContext(ctx, query, identifier, key)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	return checkAffected(result, storage.ErrRecordNotFound)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*models.StoredRecord, error) {
	record := &models.StoredRecord{}
	var (
		fields               string
		createdAt, updatedAt int64
	)

	if err := row.Scan(
		&record.Identifier,
		&record.Key,
		&record.Number,
		&fields,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(fields), &record.Fields); err != nil {
		return nil, fmt.Errorf("failed to decode record fields: %w", err)
	}
	if record.Fields == nil {
		record.Fields = make(map[string]any)
	}
	record.CreatedAt = time.UnixMilli(createdAt).UTC()
	record.UpdatedAt = time.UnixMilli(updatedAt).UTC()

	return record, nil
}

func encodeFields(fields map[string]any) (string, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to encode record fields: %w", err)
	}
	return string(data), nil
}

func checkAffected(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
