package repository

import "errors"

var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique index rejects an insert.
	ErrDuplicate = errors.New("duplicate record")
)
