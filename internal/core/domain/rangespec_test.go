package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRanges(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []PageRange
	}{
		{
			name: "single page",
			text: "7",
			want: []PageRange{{Start: 7, End: 7, Single: true}},
		},
		{
			name: "single interval",
			text: "5-10",
			want: []PageRange{{Start: 5, End: 10}},
		},
		{
			name: "mixed items",
			text: "1,3,5-10",
			want: []PageRange{
				{Start: 1, End: 1, Single: true},
				{Start: 3, End: 3, Single: true},
				{Start: 5, End: 10},
			},
		},
		{
			name: "whitespace around items",
			text: " 1 , 3 , 5 - 10 ",
			want: []PageRange{
				{Start: 1, End: 1, Single: true},
				{Start: 3, End: 3, Single: true},
				{Start: 5, End: 10},
			},
		},
		{
			name: "degenerate interval equals single page span",
			text: "4-4",
			want: []PageRange{{Start: 4, End: 4}},
		},
		{
			name: "reversed interval parses, fails validation later",
			text: "3-1",
			want: []PageRange{{Start: 3, End: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseRanges(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, spec.Ranges)
		})
	}
}

func TestParseRanges_Failures(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantReason string
		wantPos    int
	}{
		{"empty text", "", ParseReasonEmpty, 0},
		{"whitespace only", "   ", ParseReasonEmpty, 0},
		{"lone comma", ",", ParseReasonMalformedItem, 0},
		{"trailing comma", "1,", ParseReasonMalformedItem, 1},
		{"leading comma", ",2", ParseReasonMalformedItem, 0},
		{"empty middle item", "1,,2", ParseReasonMalformedItem, 1},
		{"zero page", "0", ParseReasonMalformedItem, 0},
		{"negative page", "-3", ParseReasonMalformedItem, 0},
		{"decimal page", "1.5", ParseReasonMalformedItem, 0},
		{"letters", "abc", ParseReasonMalformedItem, 0},
		{"interval with letters", "1-x", ParseReasonMalformedItem, 0},
		{"zero in interval", "0-5", ParseReasonMalformedItem, 0},
		{"later malformed item", "1,3,bad,7", ParseReasonMalformedItem, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseRanges(tt.text)
			require.Error(t, err)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.wantReason, perr.Reason)
			if tt.wantReason == ParseReasonMalformedItem {
				assert.Equal(t, tt.wantPos, perr.Position)
			}
			// No partial results on failure.
			assert.Empty(t, spec.Ranges)
		})
	}
}

func TestRangeSpec_Validate(t *testing.T) {
	parse := func(t *testing.T, text string) RangeSpec {
		t.Helper()
		spec, err := ParseRanges(text)
		require.NoError(t, err)
		return spec
	}

	t.Run("within bounds", func(t *testing.T) {
		res := parse(t, "1,3,5-10").Validate(10)
		assert.True(t, res.OK)
		assert.False(t, res.Provisional)
	})

	t.Run("out of bounds", func(t *testing.T) {
		res := parse(t, "5-12").Validate(10)
		assert.False(t, res.OK)
		assert.Equal(t, ValidateReasonOutOfBounds, res.Reason)
		assert.Equal(t, PageRange{Start: 5, End: 12}, res.Interval)
	})

	t.Run("single page out of bounds", func(t *testing.T) {
		res := parse(t, "11").Validate(10)
		assert.False(t, res.OK)
		assert.Equal(t, ValidateReasonOutOfBounds, res.Reason)
	})

	t.Run("start exceeds end", func(t *testing.T) {
		res := parse(t, "3-1").Validate(10)
		assert.False(t, res.OK)
		assert.Equal(t, ValidateReasonStartExceedsEnd, res.Reason)
		assert.Equal(t, PageRange{Start: 3, End: 1}, res.Interval)
	})

	t.Run("start exceeds end checked before bounds", func(t *testing.T) {
		res := parse(t, "3-1").Validate(0)
		assert.False(t, res.OK)
		assert.Equal(t, ValidateReasonStartExceedsEnd, res.Reason)
	})

	t.Run("unknown page count is provisional", func(t *testing.T) {
		res := parse(t, "5-12").Validate(PageCountUnknown)
		assert.True(t, res.OK)
		assert.True(t, res.Provisional)
	})

	t.Run("provisional spec fails once page count resolves", func(t *testing.T) {
		spec := parse(t, "5-12")
		require.True(t, spec.Validate(0).Provisional)

		res := spec.Validate(10)
		assert.False(t, res.OK)
		assert.Equal(t, ValidateReasonOutOfBounds, res.Reason)
	})

	t.Run("end equals page count is legal", func(t *testing.T) {
		res := parse(t, "1-10").Validate(10)
		assert.True(t, res.OK)
	})
}

func TestRangeSpec_Expand(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{"mixed items", "1,3,5-10", []int{1, 3, 5, 6, 7, 8, 9, 10}},
		{"single page", "4", []int{4}},
		{"degenerate interval", "4-4", []int{4}},
		{"interval order preserved", "5-7,1-2", []int{5, 6, 7, 1, 2}},
		{"overlaps kept literal", "1-3,2-4", []int{1, 2, 3, 2, 3, 4}},
		{"repeated page kept", "2,2", []int{2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseRanges(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, spec.Expand())
		})
	}
}

func TestRangeSpec_Intervals(t *testing.T) {
	spec, err := ParseRanges("1,5-10")
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 1}, {5, 10}}, spec.Intervals())
}

func TestRangeSpec_String(t *testing.T) {
	spec, err := ParseRanges(" 1 , 5-10 , 7 ")
	require.NoError(t, err)
	assert.Equal(t, "1,5-10,7", spec.String())
}

func TestPageRange_Pages(t *testing.T) {
	assert.Equal(t, 1, PageRange{Start: 4, End: 4}.Pages())
	assert.Equal(t, 6, PageRange{Start: 5, End: 10}.Pages())
	assert.Equal(t, 0, PageRange{Start: 3, End: 1}.Pages())
}
