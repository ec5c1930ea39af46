package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no saved session exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrTableNotFound indicates that no snapshot exists for the table
	ErrTableNotFound = errors.New("table snapshot not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
