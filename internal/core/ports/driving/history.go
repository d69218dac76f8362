package driving

import (
	"context"

	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
)

// HistoryService records and lists completed worker jobs.
type HistoryService interface {
	// Record stores a finished job. A nil store makes this a no-op.
	Record(ctx context.Context, rec *driven.JobRecord) error

	// List returns recent jobs, newest first.
	List(ctx context.Context, limit int) ([]driven.JobRecord, error)

	// Clear removes all recorded jobs.
	Clear(ctx context.Context) error
}
