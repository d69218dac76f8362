package driving

import "github.com/bindery-labs/bindery-cli/internal/core/domain"

// MergePreview is the derived, user-facing summary of a pending merge.
type MergePreview struct {
	// FinalName is the derived output file name.
	FinalName string

	// FileCount is the number of entries in the collection.
	FileCount int

	// EstimatedSize is the sum of all entry byte sizes.
	EstimatedSize int64

	// EstimatedSizeHuman is EstimatedSize formatted for display.
	EstimatedSizeHuman string

	// EstimatedPages sums the resolved page counts. Entries without
	// a resolved count are excluded, not treated as zero.
	EstimatedPages int

	// PagesLowerBound is true while any entry's page count is still
	// unresolved, marking EstimatedPages as a lower bound.
	PagesLowerBound bool
}

// SplitPreview is the derived, user-facing summary of a pending split.
type SplitPreview struct {
	// Spec is the parsed range specification.
	Spec domain.RangeSpec

	// Validation is the bounds-check result against the document.
	Validation domain.ValidationResult

	// Names are the derived output names, one per input item.
	Names []string

	// PageTotal counts every selected page, duplicates included.
	PageTotal int
}

// PreviewService derives user-facing text from collection and range
// state. All methods are pure with respect to application state.
type PreviewService interface {
	// Merge computes the merge preview for the current collection.
	Merge(naming MergeNaming) MergePreview

	// Split parses rangeText and computes the split preview against
	// the entry's page count. Parse failures are returned as-is for
	// the caller to surface as validation feedback.
	Split(rangeText, baseName string, maxPages int) (*SplitPreview, error)
}
