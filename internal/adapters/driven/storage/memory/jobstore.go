package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
)

// Ensure JobStore implements the interface.
var _ driven.JobStore = (*JobStore)(nil)

// JobStore is an in-memory implementation of driven.JobStore.
type JobStore struct {
	mu   sync.RWMutex
	jobs []driven.JobRecord
}

// NewJobStore creates a new in-memory job store.
func NewJobStore() *JobStore {
	return &JobStore{}
}

// SaveJob stores a job record.
func (s *JobStore) SaveJob(_ context.Context, rec *driven.JobRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, *rec)
	return nil
}

// ListJobs returns records newest first, capped at limit.
func (s *JobStore) ListJobs(_ context.Context, limit int) ([]driven.JobRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]driven.JobRecord, len(s.jobs))
	copy(out, s.jobs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FinishedAt.After(out[j].FinishedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Clear removes all records.
func (s *JobStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = nil
	return nil
}
