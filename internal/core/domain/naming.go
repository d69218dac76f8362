package domain

import (
	"fmt"
	"strings"
)

// PDFExtension is the output file extension. It is appended exactly
// once regardless of whether any name component already carries it.
const PDFExtension = ".pdf"

// MergeOutputName derives the merged file name from the user's prefix,
// base name, and suffix. Each component is trimmed, the extension is
// stripped from any component that carries it, and a single extension
// is appended.
func MergeOutputName(prefix, baseName, suffix string) string {
	name := stripExtension(strings.TrimSpace(prefix)) +
		stripExtension(strings.TrimSpace(baseName)) +
		stripExtension(strings.TrimSpace(suffix))
	return name + PDFExtension
}

// SplitOutputNames derives one output name per input item, keeping
// interval tokens literal: "report" with spec "7,5-10" yields
// ["report_7.pdf", "report_5-10.pdf"]. Each item as written by the
// user maps to exactly one produced file.
func SplitOutputNames(baseName string, spec RangeSpec) []string {
	base := stripExtension(strings.TrimSpace(baseName))
	names := make([]string, len(spec.Ranges))
	for i, r := range spec.Ranges {
		names[i] = fmt.Sprintf("%s_%s%s", base, r, PDFExtension)
	}
	return names
}

// stripExtension removes a trailing .pdf, case-insensitively.
func stripExtension(name string) string {
	if strings.EqualFold(strings.TrimSpace(nameExt(name)), PDFExtension) {
		return name[:len(name)-len(PDFExtension)]
	}
	return name
}

// nameExt returns the trailing extension-sized slice of name, or ""
// when the name is shorter than the extension.
func nameExt(name string) string {
	if len(name) < len(PDFExtension) {
		return ""
	}
	return name[len(name)-len(PDFExtension):]
}
