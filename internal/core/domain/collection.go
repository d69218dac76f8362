package domain

import (
	"time"

	"github.com/google/uuid"
)

// Collection is the ordered, deduplicated set of document entries
// under manipulation in the current session. Insertion order is
// significant for merge output; order changes only through Add
// (append) and ReorderTo (full permutation).
//
// Collection is a pure state machine and is not safe for concurrent
// use; the owning service funnels all mutation through itself.
type Collection struct {
	entries []DocumentEntry
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entries in display order.
func (c *Collection) Entries() []DocumentEntry {
	out := make([]DocumentEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// IDs returns the entry IDs in display order.
func (c *Collection) IDs() []string {
	ids := make([]string, len(c.entries))
	for i := range c.entries {
		ids[i] = c.entries[i].ID
	}
	return ids
}

// Get returns the entry with the given ID, or nil if absent.
func (c *Collection) Get(id string) *DocumentEntry {
	if i := c.indexOf(id); i >= 0 {
		entry := c.entries[i]
		return &entry
	}
	return nil
}

// Add appends a new entry for the candidate and returns it. If an
// existing entry matches the candidate's (display name, byte size)
// key, the collection is unchanged and a *DuplicateError identifying
// the existing entry is returned.
//
// The new entry starts with status pending and an unknown page count;
// metadata resolution is the caller's concern.
func (c *Collection) Add(cand Candidate) (*DocumentEntry, error) {
	key := cand.Key()
	for i := range c.entries {
		if c.entries[i].Key() == key {
			return nil, &DuplicateError{
				ExistingID:  c.entries[i].ID,
				DisplayName: cand.DisplayName,
			}
		}
	}

	entry := DocumentEntry{
		ID:          uuid.NewString(),
		DisplayName: cand.DisplayName,
		SourceRef:   cand.SourceRef,
		ByteSize:    cand.ByteSize,
		PageCount:   PageCountUnknown,
		Status:      StatusPending,
		AddedAt:     time.Now(),
	}
	c.entries = append(c.entries, entry)

	added := entry
	return &added, nil
}

// ResolveMetadata records a successful page-count resolution for the
// entry. If the entry no longer exists (it was removed while the
// resolution was in flight) this is a silent no-op returning false.
func (c *Collection) ResolveMetadata(id string, pageCount int) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.entries[i].PageCount = pageCount
	c.entries[i].Status = StatusReady
	c.entries[i].ErrorDetail = ""
	return true
}

// FailMetadata records a failed metadata resolution for the entry.
// Missing entries are a silent no-op returning false.
func (c *Collection) FailMetadata(id, detail string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.entries[i].Status = StatusError
	c.entries[i].ErrorDetail = detail
	return true
}

// SetStatus updates the status of the entry if present.
func (c *Collection) SetStatus(id string, status EntryStatus) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.entries[i].Status = status
	if status != StatusError {
		c.entries[i].ErrorDetail = ""
	}
	return true
}

// SetStatusAll updates the status of every entry.
func (c *Collection) SetStatusAll(status EntryStatus) {
	for i := range c.entries {
		c.entries[i].Status = status
		if status != StatusError {
			c.entries[i].ErrorDetail = ""
		}
	}
}

// Remove deletes the entry with the given ID. Removing an absent ID
// is a no-op returning false, covering resolution callbacks racing
// against user deletes.
func (c *Collection) Remove(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	return true
}

// Clear removes all entries unconditionally.
func (c *Collection) Clear() {
	c.entries = nil
}

// ReorderTo replaces the display order with newOrder. The operation
// is all-or-nothing: if newOrder is not an exact permutation of the
// current IDs (stale gesture, concurrent add or remove landed), the
// collection is left byte-for-byte unchanged and ErrInvalidPermutation
// is returned.
func (c *Collection) ReorderTo(newOrder []string) error {
	if len(newOrder) != len(c.entries) {
		return ErrInvalidPermutation
	}

	index := make(map[string]int, len(c.entries))
	for i := range c.entries {
		index[c.entries[i].ID] = i
	}

	reordered := make([]DocumentEntry, 0, len(newOrder))
	seen := make(map[string]bool, len(newOrder))
	for _, id := range newOrder {
		i, ok := index[id]
		if !ok || seen[id] {
			return ErrInvalidPermutation
		}
		seen[id] = true
		reordered = append(reordered, c.entries[i])
	}

	c.entries = reordered
	return nil
}

// TotalByteSize returns the sum of all entry byte sizes.
func (c *Collection) TotalByteSize() int64 {
	var total int64
	for i := range c.entries {
		total += c.entries[i].ByteSize
	}
	return total
}

// KnownPageCount returns the sum of resolved page counts and whether
// the sum is a lower bound because some entries are still unresolved.
// Unresolved entries are excluded from the sum, not counted as zero.
func (c *Collection) KnownPageCount() (pages int, lowerBound bool) {
	for i := range c.entries {
		if c.entries[i].HasPageCount() {
			pages += c.entries[i].PageCount
		} else {
			lowerBound = true
		}
	}
	return pages, lowerBound
}

// SourceRefs returns the entry source paths in display order.
func (c *Collection) SourceRefs() []string {
	refs := make([]string, len(c.entries))
	for i := range c.entries {
		refs[i] = c.entries[i].SourceRef
	}
	return refs
}

// indexOf returns the position of the entry with the given ID, or -1.
func (c *Collection) indexOf(id string) int {
	for i := range c.entries {
		if c.entries[i].ID == id {
			return i
		}
	}
	return -1
}
