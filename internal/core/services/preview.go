package services

import (
	"github.com/dustin/go-humanize"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driving"
)

// Ensure Preview implements the interface.
var _ driving.PreviewService = (*Preview)(nil)

// Preview derives user-facing output names and size estimates from
// collection and range state. It holds no state of its own.
type Preview struct {
	session driving.SessionService
}

// NewPreview creates a preview service over the session.
func NewPreview(session driving.SessionService) *Preview {
	return &Preview{session: session}
}

// Merge computes the merge preview for the current collection. The
// sums come from the session's totals, which the collection owns.
func (p *Preview) Merge(naming driving.MergeNaming) driving.MergePreview {
	totals := p.session.Totals()

	return driving.MergePreview{
		FinalName:          domain.MergeOutputName(naming.Prefix, naming.BaseName, naming.Suffix),
		FileCount:          totals.FileCount,
		EstimatedSize:      totals.ByteSize,
		EstimatedSizeHuman: humanize.Bytes(uint64(totals.ByteSize)),
		EstimatedPages:     totals.Pages,
		PagesLowerBound:    totals.PagesLowerBound,
	}
}

// Split parses and validates rangeText and derives output names.
func (p *Preview) Split(rangeText, baseName string, maxPages int) (*driving.SplitPreview, error) {
	spec, err := domain.ParseRanges(rangeText)
	if err != nil {
		return nil, err
	}

	return &driving.SplitPreview{
		Spec:       spec,
		Validation: spec.Validate(maxPages),
		Names:      domain.SplitOutputNames(baseName, spec),
		PageTotal:  len(spec.Expand()),
	}, nil
}
