package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when the users.email unique constraint
	// rejects an insert.
	ErrDuplicateEmail = errors.New("email already registered")
)
