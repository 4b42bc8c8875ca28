package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a natural-key collision.
	ErrConflict = errors.New("already exists")
)
