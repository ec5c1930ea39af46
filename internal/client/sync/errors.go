package sync

import "errors"

var (
	// ErrNoTable indicates that the set has no table for the engine's inbound shape
	ErrNoTable = errors.New("table not found in set")

	// ErrMapping indicates an incomplete mapping
	ErrMapping = errors.New("invalid mapping")
)
