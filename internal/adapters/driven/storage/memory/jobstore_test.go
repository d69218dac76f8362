package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
)

func TestJobStore_SaveAndList(t *testing.T) {
	store := NewJobStore()
	ctx := context.Background()

	older := &driven.JobRecord{
		ID:         "job-1",
		Kind:       driven.JobKindMerge,
		Success:    true,
		FinishedAt: time.Now().Add(-time.Hour),
	}
	newer := &driven.JobRecord{
		ID:         "job-2",
		Kind:       driven.JobKindSplit,
		Success:    false,
		Error:      "file is encrypted",
		FinishedAt: time.Now(),
	}

	require.NoError(t, store.SaveJob(ctx, older))
	require.NoError(t, store.SaveJob(ctx, newer))

	jobs, err := store.ListJobs(ctx, 0)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "job-2", jobs[0].ID)
	assert.Equal(t, "job-1", jobs[1].ID)
}

func TestJobStore_ListLimit(t *testing.T) {
	store := NewJobStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.SaveJob(ctx, &driven.JobRecord{
			ID:         string(rune('a' + i)),
			FinishedAt: time.Now().Add(time.Duration(i) * time.Minute),
		}))
	}

	jobs, err := store.ListJobs(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func TestJobStore_Clear(t *testing.T) {
	store := NewJobStore()
	ctx := context.Background()

	require.NoError(t, store.SaveJob(ctx, &driven.JobRecord{ID: "x"}))
	require.NoError(t, store.Clear(ctx))

	jobs, err := store.ListJobs(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}
