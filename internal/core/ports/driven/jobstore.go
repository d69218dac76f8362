package driven

import (
	"context"
	"time"
)

// JobKind distinguishes recorded job types.
type JobKind string

// Recorded job kinds.
const (
	JobKindMerge JobKind = "merge"
	JobKindSplit JobKind = "split"
)

// JobRecord is one completed (or failed) worker execution. Collection
// contents are never persisted; history records finished jobs only.
type JobRecord struct {
	// ID is the unique record identifier.
	ID string

	// Kind is merge or split.
	Kind JobKind

	// Inputs are the source file paths involved.
	Inputs []string

	// Outputs are the files the worker reported producing.
	Outputs []string

	// Pages is the total page count processed, when known.
	Pages int

	// SizeBytes is the total input size in bytes.
	SizeBytes int64

	// Success records whether the worker reported success.
	Success bool

	// Error is the worker's failure description, if any.
	Error string

	// FinishedAt is when the job completed.
	FinishedAt time.Time
}

// JobStore persists completed-job history.
type JobStore interface {
	// SaveJob stores a job record.
	SaveJob(ctx context.Context, rec *JobRecord) error

	// ListJobs returns the most recent records, newest first,
	// capped at limit. limit <= 0 returns everything.
	ListJobs(ctx context.Context, limit int) ([]JobRecord, error)

	// Clear removes all records.
	Clear(ctx context.Context) error
}
