package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the
// relational or the key-value store.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a unique constraint rejects a write,
// e.g. registering an email that is already taken.
var ErrConflict = errors.New("conflict")
