package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(name string, size int64) Candidate {
	return Candidate{
		DisplayName: name,
		SourceRef:   "/tmp/" + name,
		ByteSize:    size,
	}
}

func TestCollection_Add(t *testing.T) {
	c := NewCollection()

	entry, err := c.Add(candidate("a.pdf", 100))
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "a.pdf", entry.DisplayName)
	assert.Equal(t, int64(100), entry.ByteSize)
	assert.Equal(t, StatusPending, entry.Status)
	assert.Equal(t, PageCountUnknown, entry.PageCount)
	assert.False(t, entry.HasPageCount())
	assert.Equal(t, 1, c.Len())
}

func TestCollection_Add_AppendsInOrder(t *testing.T) {
	c := NewCollection()

	a, err := c.Add(candidate("a.pdf", 100))
	require.NoError(t, err)
	b, err := c.Add(candidate("b.pdf", 200))
	require.NoError(t, err)

	assert.Equal(t, []string{a.ID, b.ID}, c.IDs())
}

func TestCollection_Add_RejectsDuplicateKey(t *testing.T) {
	c := NewCollection()

	first, err := c.Add(candidate("a.pdf", 100))
	require.NoError(t, err)

	_, err = c.Add(candidate("a.pdf", 100))
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))

	var dup *DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, first.ID, dup.ExistingID)

	// No mutation on rejection.
	assert.Equal(t, 1, c.Len())
}

func TestCollection_Add_SameNameDifferentSizeAllowed(t *testing.T) {
	c := NewCollection()

	_, err := c.Add(candidate("a.pdf", 100))
	require.NoError(t, err)
	_, err = c.Add(candidate("a.pdf", 101))
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
}

func TestCollection_Add_AssignsUniqueIDs(t *testing.T) {
	c := NewCollection()
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		entry, err := c.Add(candidate("doc", int64(i)))
		require.NoError(t, err)
		assert.False(t, seen[entry.ID], "id reused: %s", entry.ID)
		seen[entry.ID] = true
	}
}

func TestCollection_ResolveMetadata(t *testing.T) {
	c := NewCollection()
	entry, err := c.Add(candidate("a.pdf", 100))
	require.NoError(t, err)

	ok := c.ResolveMetadata(entry.ID, 10)
	assert.True(t, ok)

	got := c.Get(entry.ID)
	require.NotNil(t, got)
	assert.Equal(t, 10, got.PageCount)
	assert.Equal(t, StatusReady, got.Status)
	assert.True(t, got.HasPageCount())
}

func TestCollection_ResolveMetadata_AfterRemoveIsNoOp(t *testing.T) {
	c := NewCollection()
	entry, err := c.Add(candidate("a.pdf", 100))
	require.NoError(t, err)
	keeper, err := c.Add(candidate("b.pdf", 200))
	require.NoError(t, err)

	require.True(t, c.Remove(entry.ID))
	before := c.Entries()

	// The in-flight callback lands against a removed entry.
	ok := c.ResolveMetadata(entry.ID, 10)
	assert.False(t, ok)
	assert.Equal(t, before, c.Entries())
	assert.NotNil(t, c.Get(keeper.ID))
}

func TestCollection_FailMetadata(t *testing.T) {
	c := NewCollection()
	entry, err := c.Add(candidate("a.pdf", 100))
	require.NoError(t, err)

	ok := c.FailMetadata(entry.ID, "file is encrypted")
	assert.True(t, ok)

	got := c.Get(entry.ID)
	require.NotNil(t, got)
	assert.Equal(t, StatusError, got.Status)
	assert.Equal(t, "file is encrypted", got.ErrorDetail)
	assert.False(t, got.HasPageCount())
}

func TestCollection_FailMetadata_MissingEntryIsNoOp(t *testing.T) {
	c := NewCollection()
	assert.False(t, c.FailMetadata("nope", "whatever"))
}

func TestCollection_Remove(t *testing.T) {
	c := NewCollection()
	a, err := c.Add(candidate("a.pdf", 100))
	require.NoError(t, err)
	b, err := c.Add(candidate("b.pdf", 200))
	require.NoError(t, err)

	assert.True(t, c.Remove(a.ID))
	assert.Equal(t, []string{b.ID}, c.IDs())

	// Removing again is a no-op, not an error.
	assert.False(t, c.Remove(a.ID))
	assert.Equal(t, 1, c.Len())
}

func TestCollection_Clear(t *testing.T) {
	c := NewCollection()
	_, err := c.Add(candidate("a.pdf", 100))
	require.NoError(t, err)
	_, err = c.Add(candidate("b.pdf", 200))
	require.NoError(t, err)

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Entries())
}

func TestCollection_ReorderTo(t *testing.T) {
	c := NewCollection()
	a, _ := c.Add(candidate("a.pdf", 1))
	b, _ := c.Add(candidate("b.pdf", 2))
	d, _ := c.Add(candidate("c.pdf", 3))

	err := c.ReorderTo([]string{d.ID, a.ID, b.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{d.ID, a.ID, b.ID}, c.IDs())

	names := make([]string, 0, 3)
	for _, e := range c.Entries() {
		names = append(names, e.DisplayName)
	}
	assert.Equal(t, []string{"c.pdf", "a.pdf", "b.pdf"}, names)
}

func TestCollection_ReorderTo_RejectsNonPermutations(t *testing.T) {
	c := NewCollection()
	a, _ := c.Add(candidate("a.pdf", 1))
	b, _ := c.Add(candidate("b.pdf", 2))

	tests := []struct {
		name  string
		order []string
	}{
		{"missing entry", []string{a.ID}},
		{"extra entry", []string{a.ID, b.ID, "ghost"}},
		{"unknown id", []string{a.ID, "ghost"}},
		{"duplicated id", []string{a.ID, a.ID}},
		{"empty order", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := c.Entries()
			err := c.ReorderTo(tt.order)
			require.ErrorIs(t, err, ErrInvalidPermutation)
			// All-or-nothing: order byte-for-byte unchanged.
			assert.Equal(t, before, c.Entries())
		})
	}
}

func TestCollection_ReorderTo_StaleOrderAfterRemove(t *testing.T) {
	c := NewCollection()
	a, _ := c.Add(candidate("a.pdf", 1))
	b, _ := c.Add(candidate("b.pdf", 2))
	d, _ := c.Add(candidate("c.pdf", 3))

	// A remove lands mid-drag; the gesture's order is now stale.
	stale := []string{d.ID, b.ID, a.ID}
	require.True(t, c.Remove(b.ID))

	err := c.ReorderTo(stale)
	require.ErrorIs(t, err, ErrInvalidPermutation)
	assert.Equal(t, []string{a.ID, d.ID}, c.IDs())
}

func TestCollection_ReorderTo_SecondStaleGestureRejected(t *testing.T) {
	c := NewCollection()
	a, _ := c.Add(candidate("a.pdf", 1))
	b, _ := c.Add(candidate("b.pdf", 2))

	// Two gestures computed against the same starting order.
	first := []string{b.ID, a.ID}
	second := []string{a.ID, b.ID}

	require.NoError(t, c.ReorderTo(first))
	// The second gesture is still a valid permutation of the same id
	// set, so it applies; a gesture that references removed entries
	// would not (covered above). Last writer wins.
	require.NoError(t, c.ReorderTo(second))
	assert.Equal(t, []string{a.ID, b.ID}, c.IDs())
}

func TestCollection_IDMultisetMatchesAddsMinusRemoves(t *testing.T) {
	c := NewCollection()
	live := make(map[string]bool)

	var ids []string
	for i := 0; i < 10; i++ {
		e, err := c.Add(candidate("doc", int64(i)))
		require.NoError(t, err)
		ids = append(ids, e.ID)
		live[e.ID] = true
	}
	for _, i := range []int{1, 3, 5} {
		require.True(t, c.Remove(ids[i]))
		delete(live, ids[i])
	}

	got := c.IDs()
	assert.Len(t, got, len(live))
	for _, id := range got {
		assert.True(t, live[id])
	}
}

func TestCollection_Totals(t *testing.T) {
	c := NewCollection()
	a, _ := c.Add(candidate("a.pdf", 500000))
	b, _ := c.Add(candidate("b.pdf", 300000))

	assert.Equal(t, int64(800000), c.TotalByteSize())

	pages, lower := c.KnownPageCount()
	assert.Equal(t, 0, pages)
	assert.True(t, lower)

	c.ResolveMetadata(a.ID, 10)
	pages, lower = c.KnownPageCount()
	assert.Equal(t, 10, pages)
	assert.True(t, lower)

	c.ResolveMetadata(b.ID, 5)
	pages, lower = c.KnownPageCount()
	assert.Equal(t, 15, pages)
	assert.False(t, lower)
}

func TestCollection_Get_ReturnsCopy(t *testing.T) {
	c := NewCollection()
	a, _ := c.Add(candidate("a.pdf", 1))

	got := c.Get(a.ID)
	require.NotNil(t, got)
	got.DisplayName = "mutated"

	assert.Equal(t, "a.pdf", c.Get(a.ID).DisplayName)
}
