package driving

import (
	"context"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
)

// EventType identifies a collection change notification.
type EventType string

// Collection change notifications.
const (
	// EventAdded means an entry was appended.
	EventAdded EventType = "added"

	// EventRemoved means an entry was removed.
	EventRemoved EventType = "removed"

	// EventCleared means the collection was emptied.
	EventCleared EventType = "cleared"

	// EventReordered means the display order changed.
	EventReordered EventType = "reordered"

	// EventMetadata means an entry's page count resolved or failed.
	EventMetadata EventType = "metadata"

	// EventExecution means an execute request started or finished.
	EventExecution EventType = "execution"
)

// CollectionEvent is delivered to subscribers after a collection
// mutation. EntryID is empty for collection-wide events.
type CollectionEvent struct {
	Type    EventType
	EntryID string
}

// ExecuteResult carries the worker's reported outputs after a
// successful execution.
type ExecuteResult struct {
	// Output is the produced file for a merge.
	Output string

	// Files are the produced files for a split.
	Files []string
}

// CollectionTotals aggregates the collection for preview display.
type CollectionTotals struct {
	// FileCount is the number of entries.
	FileCount int

	// ByteSize is the sum of all entry byte sizes.
	ByteSize int64

	// Pages sums the resolved page counts. Unresolved entries are
	// excluded, not counted as zero.
	Pages int

	// PagesLowerBound is true while any entry's page count is still
	// unresolved, marking Pages as a lower bound.
	PagesLowerBound bool
}

// MergeNaming holds the user's output-name components for a merge.
type MergeNaming struct {
	Prefix   string
	BaseName string
	Suffix   string
}

// SessionService is the authoritative owner of the document
// collection for the current session. All mutation is funnelled
// through it; the renderer is never the source of truth for
// membership, only for proposed order.
type SessionService interface {
	// AddPath stats the file at path and adds it as a new entry.
	// A (display name, byte size) duplicate returns a
	// *domain.DuplicateError and leaves the collection unchanged.
	// Page-count resolution is dispatched fire-and-forget.
	AddPath(ctx context.Context, path string) (*domain.DocumentEntry, error)

	// Add inserts a prepared candidate. Same semantics as AddPath.
	Add(ctx context.Context, cand domain.Candidate) (*domain.DocumentEntry, error)

	// Remove deletes an entry. Removing an unknown ID is a no-op
	// returning false. In-flight metadata resolution for the entry
	// is not cancelled; its callback is discarded on arrival.
	Remove(id string) bool

	// Clear empties the collection unconditionally.
	Clear()

	// Entries returns the current entries in display order.
	Entries() []domain.DocumentEntry

	// Get returns one entry, or nil if absent.
	Get(id string) *domain.DocumentEntry

	// Totals returns the collection's aggregate size and page sums.
	Totals() CollectionTotals

	// Reorder reconciles an observed rendered order into the
	// canonical order. If the observed order is a true permutation
	// it is applied and (entries, true) is returned; otherwise the
	// gesture is discarded and the live order is returned with
	// false so the renderer can re-sync. A rejected reorder is
	// normal concurrent flow, not a fault.
	Reorder(observed []string) ([]domain.DocumentEntry, bool)

	// ExecuteMerge sends the collection to the worker as a merge
	// request. Rejects with domain.ErrExecutionInProgress while
	// another execution is outstanding and domain.ErrEmptyCollection
	// when there is nothing to merge.
	ExecuteMerge(ctx context.Context, naming MergeNaming) (*ExecuteResult, error)

	// ExecuteSplit sends one entry and a validated range spec to the
	// worker as a split request. Same in-flight rejection rules as
	// ExecuteMerge.
	ExecuteSplit(ctx context.Context, entryID string, spec domain.RangeSpec, baseName string) (*ExecuteResult, error)

	// Executing reports whether an execute request is outstanding.
	Executing() bool

	// Subscribe registers a change observer and returns an
	// unsubscribe function. Observers are called synchronously
	// after each mutation.
	Subscribe(fn func(CollectionEvent)) func()
}
