package interfaces

import "errors"

// Sentinel errors shared by all repository backends
var (
	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrConflict indicates a uniqueness constraint was violated
	ErrConflict = errors.New("record already exists")
)
