package layout

import (
	"math"
	"sort"

	"github.com/tsawler/timegrid/model"
)

// Default row tolerances. Header rows sit on tight baselines; day rows in the
// grid may wrap over two or three baselines and need a wider band.
const (
	HeaderRowTolerance = 5
	DayRowTolerance    = 12
)

// RowGrouper clusters page fragments into rows by vertical proximity.
type RowGrouper struct {
	// Tolerance is the maximum |dY| between a fragment and the anchor of
	// the current row (in page units).
	Tolerance float64
}

// NewRowGrouper creates a grouper with the given vertical tolerance.
func NewRowGrouper(tolerance float64) *RowGrouper {
	return &RowGrouper{Tolerance: tolerance}
}

// GroupRows sorts fragments by (Y descending, X ascending) and sweeps once,
// starting a new row whenever the next fragment's Y differs from the current
// row's anchor Y by more than the tolerance. The anchor is the Y of the
// row's first fragment, so a slowly drifting baseline cannot drag a row
// across the whole page.
func (g *RowGrouper) GroupRows(fragments []model.TextFragment) [][]model.TextFragment {
	if len(fragments) == 0 {
		return nil
	}

	sorted := make([]model.TextFragment, len(fragments))
	copy(sorted, fragments)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var rows [][]model.TextFragment
	current := []model.TextFragment{sorted[0]}
	anchorY := sorted[0].Y

	for _, frag := range sorted[1:] {
		if math.Abs(frag.Y-anchorY) > g.Tolerance {
			rows = append(rows, current)
			current = []model.TextFragment{frag}
			anchorY = frag.Y
		} else {
			current = append(current, frag)
		}
	}
	rows = append(rows, current)

	// Re-sort each row left to right; the global sort interleaves X order
	// across baselines within the tolerance band.
	for _, row := range rows {
		sort.Slice(row, func(i, j int) bool { return row[i].X < row[j].X })
	}

	return rows
}

// Band returns all fragments within tolerance of the given Y, sorted left to
// right. It is used to collect a day row's full contents around the day
// label's baseline.
func Band(fragments []model.TextFragment, y, tolerance float64) []model.TextFragment {
	var band []model.TextFragment
	for _, frag := range fragments {
		if math.Abs(frag.Y-y) <= tolerance {
			band = append(band, frag)
		}
	}
	sort.Slice(band, func(i, j int) bool { return band[i].X < band[j].X })
	return band
}
