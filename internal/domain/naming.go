package domain

import "strings"

const (
	mergedBaseName = "merged.pdf"
	mergedSuffix   = "_merged.pdf"
	pdfExt         = ".pdf"
)

// DefaultOutputName derives the default merge output name from the first
// item's display name: "<base>_merged.pdf" with a trailing case-insensitive
// ".pdf" stripped, or "merged.pdf" for an empty item list.
//
// This is an explicit pure function; callers re-derive whenever the item
// list changes instead of relying on implicit recomputation.
func DefaultOutputName(items []SourceItem) string {
	if len(items) == 0 {
		return mergedBaseName
	}
	base := items[0].DisplayName
	if len(base) >= len(pdfExt) && strings.EqualFold(base[len(base)-len(pdfExt):], pdfExt) {
		base = base[:len(base)-len(pdfExt)]
	}
	if base == "" {
		return mergedBaseName
	}
	return base + mergedSuffix
}
