package grid

import (
	"github.com/tsawler/timegrid/model"
)

// ColumnBoundary is the inclusive x-range claimed by one of the six
// time-slot columns.
type ColumnBoundary struct {
	Left  float64
	Right float64
}

// Contains reports whether an x coordinate falls inside the column span.
// Boundaries are inclusive on both edges.
func (b ColumnBoundary) Contains(x float64) bool {
	return x >= b.Left && x <= b.Right
}

// ColumnResolver derives the six time-slot column spans from a page's
// fragments. Resolvers report ok=false when the page does not carry the
// geometry the strategy depends on, so the caller can fall through to the
// next strategy.
type ColumnResolver interface {
	// Name returns the resolver's identifier.
	Name() string

	// Resolve returns the six column spans in left-to-right slot order.
	Resolve(fragments []model.TextFragment) (cols []ColumnBoundary, ok bool)
}

// DefaultResolvers returns the resolution strategies in priority order:
// printed time headers, then BREAK/LUNCH letter columns, then the static
// span table.
func DefaultResolvers() []ColumnResolver {
	return []ColumnResolver{
		NewTimeHeaderResolver(),
		NewBreakLunchResolver(),
		NewStaticResolver(),
	}
}

// Resolve tries each default strategy in order and returns the first set of
// spans produced. The static fallback always succeeds, so Resolve never
// returns nil.
func Resolve(fragments []model.TextFragment) []ColumnBoundary {
	for _, r := range DefaultResolvers() {
		if cols, ok := r.Resolve(fragments); ok {
			return cols
		}
	}
	// Unreachable: the static resolver always succeeds.
	cols, _ := NewStaticResolver().Resolve(fragments)
	return cols
}

// roundingGapMax is the widest inter-column gap still treated as a rounding
// artifact of integer boundary construction. Wider gaps are real page gaps
// (the BREAK/LUNCH strips) and their x-positions stay unassigned.
const roundingGapMax = 2

// ColumnIndex returns the index of the column containing x, or -1 when x
// falls in no column span. An x inside a rounding-width gap between two
// spans belongs to the column on its left; anything in a wider gap is
// typically BREAK/LUNCH strip text and is dropped by the caller.
func ColumnIndex(cols []ColumnBoundary, x float64) int {
	for i, col := range cols {
		if col.Contains(x) {
			return i
		}
		if i < len(cols)-1 && x > col.Right && x < cols[i+1].Left &&
			cols[i+1].Left-col.Right <= roundingGapMax {
			return i
		}
	}
	return -1
}

// columnCount is fixed by the document format: six slot columns per page.
const columnCount = model.SlotCount
