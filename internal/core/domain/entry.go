package domain

import "time"

// PageCountUnknown marks an entry whose page count has not been
// resolved yet. Zero is a real (if degenerate) page count, so the
// sentinel is negative.
const PageCountUnknown = -1

// EntryStatus tracks an entry through its processing lifecycle.
type EntryStatus string

// Entry lifecycle states.
const (
	// StatusPending means the entry was added but its metadata has
	// not been resolved yet.
	StatusPending EntryStatus = "pending"

	// StatusProcessing means the entry is part of an in-flight
	// merge or split execution.
	StatusProcessing EntryStatus = "processing"

	// StatusReady means metadata resolution succeeded.
	StatusReady EntryStatus = "ready"

	// StatusError means metadata resolution or execution failed.
	StatusError EntryStatus = "error"
)

// IsValid returns true if the status is recognised.
func (s EntryStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusReady, StatusError:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s EntryStatus) String() string {
	return string(s)
}

// DocumentEntry is one document reference tracked in a Collection.
type DocumentEntry struct {
	// ID is the unique identifier, assigned at insertion and stable
	// for the entry's lifetime. Display order is never derived from it.
	ID string

	// DisplayName is the name surfaced by the originating file
	// reference. Immutable after creation.
	DisplayName string

	// SourceRef is the handle to the underlying file (a path).
	// Immutable after creation.
	SourceRef string

	// ByteSize is the file size in bytes, known at insertion.
	ByteSize int64

	// PageCount is the resolved page count, or PageCountUnknown
	// until resolution completes.
	PageCount int

	// Status is the entry's processing state.
	Status EntryStatus

	// ErrorDetail holds the failure description when Status is error.
	ErrorDetail string

	// AddedAt is when the entry was inserted into the collection.
	AddedAt time.Time
}

// HasPageCount returns true once the page count has been resolved.
func (e *DocumentEntry) HasPageCount() bool {
	return e.PageCount != PageCountUnknown
}

// DuplicateKey identifies a candidate for duplicate detection.
// Two entries collide when both display name and byte size match.
type DuplicateKey struct {
	DisplayName string
	ByteSize    int64
}

// Key returns the entry's duplicate-detection key.
func (e *DocumentEntry) Key() DuplicateKey {
	return DuplicateKey{DisplayName: e.DisplayName, ByteSize: e.ByteSize}
}

// Candidate describes a document the user wants to add to a
// collection, before an ID or status has been assigned.
type Candidate struct {
	// DisplayName is the name shown to the user.
	DisplayName string

	// SourceRef is the path to the underlying file.
	SourceRef string

	// ByteSize is the file size in bytes.
	ByteSize int64
}

// Key returns the candidate's duplicate-detection key.
func (c Candidate) Key() DuplicateKey {
	return DuplicateKey{DisplayName: c.DisplayName, ByteSize: c.ByteSize}
}
