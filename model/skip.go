package model

// SkipReason identifies why a page produced no section.
type SkipReason string

const (
	// SkipNoHeader means no semester/section header matched on the page,
	// even after the whole-page fallback pass.
	SkipNoHeader SkipReason = "no section header found"

	// SkipZeroEntries means a header was recognized but the row-to-entry
	// mapper produced nothing, which indicates a layout mismatch rather
	// than a missing header.
	SkipZeroEntries SkipReason = "0 entries extracted"
)

// SkipReport is a per-page diagnostic for a page that yielded no section.
type SkipReport struct {
	Page   int        `json:"page"`
	Reason SkipReason `json:"reason"`
	// Sample is a short excerpt of the page text to make layout
	// mismatches debuggable.
	Sample string `json:"sample,omitempty"`
	// Partial is the in-progress section for zero-entry pages, nil when no
	// header was found at all.
	Partial *Section `json:"section,omitempty"`
}
