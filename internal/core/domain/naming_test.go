package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeOutputName(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		base   string
		suffix string
		want   string
	}{
		{"base only", "", "out", "", "out.pdf"},
		{"all components", "2024_", "report", "_final", "2024_report_final.pdf"},
		{"components trimmed", "  2024_ ", " report ", " _v2  ", "2024_report_v2.pdf"},
		{"extension appended once", "", "out.pdf", "", "out.pdf"},
		{"extension on suffix stripped", "", "out", "_v2.pdf", "out_v2.pdf"},
		{"uppercase extension stripped", "", "OUT.PDF", "", "OUT.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeOutputName(tt.prefix, tt.base, tt.suffix))
		})
	}
}

func TestSplitOutputNames(t *testing.T) {
	spec, err := ParseRanges("7,5-10,2-2")
	require.NoError(t, err)

	names := SplitOutputNames("report", spec)

	// One name per input item, interval tokens kept literal.
	assert.Equal(t, []string{
		"report_7.pdf",
		"report_5-10.pdf",
		"report_2-2.pdf",
	}, names)
}

func TestSplitOutputNames_StripsBaseExtension(t *testing.T) {
	spec, err := ParseRanges("1")
	require.NoError(t, err)

	names := SplitOutputNames("report.pdf", spec)
	assert.Equal(t, []string{"report_1.pdf"}, names)
}
