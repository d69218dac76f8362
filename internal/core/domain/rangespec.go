package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse failure reasons.
const (
	// ParseReasonEmpty means the input text contained no items.
	ParseReasonEmpty = "empty"

	// ParseReasonMalformedItem means an item matched neither the
	// single-page nor the interval grammar.
	ParseReasonMalformedItem = "malformed-item"
)

// Validation failure reasons.
const (
	// ValidateReasonStartExceedsEnd means an interval has start > end.
	ValidateReasonStartExceedsEnd = "start-exceeds-end"

	// ValidateReasonOutOfBounds means an interval's end exceeds the
	// document's page count.
	ValidateReasonOutOfBounds = "out-of-bounds"
)

// PageRange is one closed interval of 1-indexed pages. A single-page
// item N is stored as [N,N] with Single set, so output naming can
// distinguish "7" from "7-7" as the user wrote it.
type PageRange struct {
	// Start is the first page of the interval, 1-indexed.
	Start int

	// End is the last page of the interval, inclusive.
	End int

	// Single is true when the user wrote a bare page number rather
	// than a hyphenated interval.
	Single bool
}

// Pages returns the number of pages the range covers. Negative-width
// ranges (start > end, caught by Validate) report zero.
func (r PageRange) Pages() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// String renders the range the way the user would write it.
func (r PageRange) String() string {
	if r.Single {
		return strconv.Itoa(r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// RangeSpec is a parsed sequence of page ranges in input order.
type RangeSpec struct {
	// Ranges holds the parsed items in the order the user wrote them.
	Ranges []PageRange
}

// ParseError reports the first non-conforming item in a range text.
// No partial spec is produced.
type ParseError struct {
	// Reason is one of the ParseReason constants.
	Reason string

	// Item is the offending item text, trimmed.
	Item string

	// Position is the zero-based item index within the input.
	Position int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Reason == ParseReasonEmpty {
		return "page selection is empty"
	}
	return fmt.Sprintf("invalid page selection %q at position %d", e.Item, e.Position+1)
}

// ValidationResult reports whether a spec fits within a document.
type ValidationResult struct {
	// OK is true when every interval passed validation.
	OK bool

	// Provisional is true when bounds could not be checked because
	// the page count is still unknown. Provisional results must be
	// re-validated once the page count resolves.
	Provisional bool

	// Reason is one of the ValidateReason constants when OK is false.
	Reason string

	// Interval is the first failing range when OK is false.
	Interval PageRange
}

// ParseRanges parses free-text page selections of the form
// "<item>(,<item>)*" where an item is a positive integer N or an
// interval N-M. Whitespace around items is ignored. The first
// malformed item aborts the parse; empty input, a dangling comma, or
// an empty item between commas are all failures. Pages are 1-indexed,
// so zero, negative, and decimal numbers are malformed.
func ParseRanges(text string) (RangeSpec, error) {
	if strings.TrimSpace(text) == "" {
		return RangeSpec{}, &ParseError{Reason: ParseReasonEmpty}
	}

	items := strings.Split(text, ",")
	spec := RangeSpec{Ranges: make([]PageRange, 0, len(items))}

	for pos, raw := range items {
		item := strings.TrimSpace(raw)
		if item == "" {
			return RangeSpec{}, &ParseError{
				Reason:   ParseReasonMalformedItem,
				Item:     item,
				Position: pos,
			}
		}

		r, ok := parseItem(item)
		if !ok {
			return RangeSpec{}, &ParseError{
				Reason:   ParseReasonMalformedItem,
				Item:     item,
				Position: pos,
			}
		}
		spec.Ranges = append(spec.Ranges, r)
	}

	return spec, nil
}

// parseItem matches one item against the single-page or interval
// grammar.
func parseItem(item string) (PageRange, bool) {
	if start, end, found := strings.Cut(item, "-"); found {
		s, err := parsePage(strings.TrimSpace(start))
		if err != nil {
			return PageRange{}, false
		}
		e, err := parsePage(strings.TrimSpace(end))
		if err != nil {
			return PageRange{}, false
		}
		// start > end is a validation failure, not a parse failure.
		return PageRange{Start: s, End: e}, true
	}

	n, err := parsePage(item)
	if err != nil {
		return PageRange{}, false
	}
	return PageRange{Start: n, End: n, Single: true}, true
}

// parsePage parses a strictly positive decimal integer.
func parsePage(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("page %d is not positive", n)
	}
	return n, nil
}

// Validate checks every interval against the document's page count.
// maxPages <= 0 means the page count is unknown; bounds checks then
// pass but the result is flagged provisional. start > end fails with
// start-exceeds-end regardless of maxPages.
func (s RangeSpec) Validate(maxPages int) ValidationResult {
	for _, r := range s.Ranges {
		if r.Start > r.End {
			return ValidationResult{
				Reason:   ValidateReasonStartExceedsEnd,
				Interval: r,
			}
		}
		if maxPages > 0 && r.End > maxPages {
			return ValidationResult{
				Reason:   ValidateReasonOutOfBounds,
				Interval: r,
			}
		}
	}
	return ValidationResult{OK: true, Provisional: maxPages <= 0}
}

// Expand returns every selected page in interval order. Overlapping
// intervals deliberately emit pages more than once: the expansion is
// literal user intent, never deduplicated or sorted.
func (s RangeSpec) Expand() []int {
	var pages []int
	for _, r := range s.Ranges {
		for p := r.Start; p <= r.End; p++ {
			pages = append(pages, p)
		}
	}
	return pages
}

// Intervals returns the spec as [start,end] pairs for the worker
// request payload.
func (s RangeSpec) Intervals() [][2]int {
	out := make([][2]int, len(s.Ranges))
	for i, r := range s.Ranges {
		out[i] = [2]int{r.Start, r.End}
	}
	return out
}

// String renders the spec the way the user would write it.
func (s RangeSpec) String() string {
	parts := make([]string, len(s.Ranges))
	for i, r := range s.Ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}
