// Package apperrors defines the sentinel errors shared across layers.
// Repositories and services return these values (possibly wrapped); the
// HTTP handlers map them to response status codes.
package apperrors

import "errors"

var (
	// ErrNotFound is returned when a row scoped to the caller does not exist.
	// An id owned by another user yields the same error as a missing id.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when an insert violates a uniqueness constraint.
	ErrConflict = errors.New("already exists")

	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password, so callers cannot probe for account existence.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken is returned when a session token fails verification.
	ErrInvalidToken = errors.New("invalid token")
)
