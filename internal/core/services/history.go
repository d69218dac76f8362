package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driving"
)

// Ensure History implements the interface.
var _ driving.HistoryService = (*History)(nil)

// History records completed worker jobs. A nil store disables
// recording without failing callers.
type History struct {
	store driven.JobStore
}

// NewHistory creates a history service.
func NewHistory(store driven.JobStore) *History {
	return &History{store: store}
}

// Record stores a finished job, assigning an ID if missing.
func (h *History) Record(ctx context.Context, rec *driven.JobRecord) error {
	if h.store == nil || rec == nil {
		return nil
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	return h.store.SaveJob(ctx, rec)
}

// List returns recent jobs, newest first.
func (h *History) List(ctx context.Context, limit int) ([]driven.JobRecord, error) {
	if h.store == nil {
		return nil, nil
	}
	return h.store.ListJobs(ctx, limit)
}

// Clear removes all recorded jobs.
func (h *History) Clear(ctx context.Context) error {
	if h.store == nil {
		return nil
	}
	return h.store.Clear(ctx)
}
