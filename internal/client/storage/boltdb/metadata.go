package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/recordsync/internal/client/storage"
)

// metadataKey ключ вида "<table>/<kind>"
func metadataKey(table string, kind storage.SyncKind) []byte {
	return []byte(table + "/" + string(kind))
}

// SaveLastSync saves the time of the last successful sync operation
func (s *Storage) SaveLastSync(ctx context.Context, table string, kind storage.SyncKind, at time.Time) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Храним UnixNano в big-endian
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(at.UnixNano()))

		if err := bucket.Put(metadataKey(table, kind), buf); err != nil {
			return fmt.Errorf("failed to save last %s time: %w", kind, err)
		}

		return nil
	})
}

// GetLastSync retrieves the time of the last successful sync operation.
// Returns zero time if the operation has not been performed yet
func (s *Storage) GetLastSync(ctx context.Context, table string, kind storage.SyncKind) (time.Time, error) {
	var at time.Time

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		buf := bucket.Get(metadataKey(table, kind))
		if buf == nil {
			return nil
		}
		if len(buf) != 8 {
			return fmt.Errorf("corrupted %s timestamp", kind)
		}

		at = time.Unix(0, int64(binary.BigEndian.Uint64(buf))).UTC()
		return nil
	})

	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last %s time: %w", kind, err)
	}

	return at, nil
}
