package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/recordsync/internal/client/storage"
	"github.com/iudanet/recordsync/internal/client/table"
)

// SaveTable stores a table snapshot under its name
func (s *Storage) SaveTable(ctx context.Context, snap *table.Snapshot) error {
	if snap == nil || snap.Name == "" {
		return fmt.Errorf("snapshot must have a name")
	}

	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTables)
		if bucket == nil {
			return fmt.Errorf("tables bucket not found")
		}

		data, err := json.Marshal(snap)
		if err != nil {
			return fmt.Errorf("failed to marshal table %q: %w", snap.Name, err)
		}

		if err := bucket.Put([]byte(snap.Name), data); err != nil {
			return fmt.Errorf("failed to save table %q: %w", snap.Name, err)
		}
		return nil
	})
}

// LoadTable retrieves a table snapshot by name
func (s *Storage) LoadTable(ctx context.Context, name string) (*table.Snapshot, error) {
	var snap *table.Snapshot

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTables)
		if bucket == nil {
			return fmt.Errorf("tables bucket not found")
		}

		data := bucket.Get([]byte(name))
		if data == nil {
			return fmt.Errorf("%w: %q", storage.ErrTableNotFound, name)
		}

		snap = &table.Snapshot{}
		if err := json.Unmarshal(data, snap); err != nil {
			return fmt.Errorf("failed to unmarshal table %q: %w", name, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return snap, nil
}

// DeleteTable removes a table snapshot
func (s *Storage) DeleteTable(ctx context.Context, name string) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTables)
		if bucket == nil {
			return fmt.Errorf("tables bucket not found")
		}
		if err := bucket.Delete([]byte(name)); err != nil {
			return fmt.Errorf("failed to delete table %q: %w", name, err)
		}
		return nil
	})
}

// ListTables returns names of all stored snapshots in key order
func (s *Storage) ListTables(ctx context.Context) ([]string, error) {
	var names []string

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTables)
		if bucket == nil {
			return fmt.Errorf("tables bucket not found")
		}
		return bucket.ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})

	if err != nil {
		return nil, err
	}
	return names, nil
}
