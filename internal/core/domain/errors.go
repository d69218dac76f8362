package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidPermutation indicates a reorder request whose ID
	// multiset does not match the collection's current contents.
	// The collection is left untouched when this is returned.
	ErrInvalidPermutation = errors.New("order is not a permutation of the current collection")

	// ErrExecutionInProgress indicates an execute request arrived
	// while another one is still outstanding. Requests are rejected,
	// never queued.
	ErrExecutionInProgress = errors.New("an operation is already running")

	// ErrEmptyCollection indicates an execute request against a
	// collection with no entries.
	ErrEmptyCollection = errors.New("collection is empty")

	// ErrWorkerUnavailable indicates the worker process could not be
	// started or reached.
	ErrWorkerUnavailable = errors.New("worker unavailable")
)

// DuplicateError reports a rejected add whose candidate collides with
// an existing entry on the (display name, byte size) key. It is user
// feedback, not a fault.
type DuplicateError struct {
	// ExistingID is the entry the candidate collided with.
	ExistingID string

	// DisplayName is the colliding display name.
	DisplayName string
}

// Error implements the error interface.
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%q is already in the collection", e.DisplayName)
}

// IsDuplicate reports whether err is a DuplicateError.
func IsDuplicate(err error) bool {
	var dup *DuplicateError
	return errors.As(err, &dup)
}
