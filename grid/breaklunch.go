package grid

import (
	"math"
	"strings"

	"github.com/tsawler/timegrid/model"
)

// BreakLunchResolver infers column spans from the vertically printed "BREAK"
// and "LUNCH" strips that separate the slot columns. Each strip renders as a
// stack of single-letter fragments sharing an x-position.
type BreakLunchResolver struct {
	// MinLetters is the minimum number of strip letters required before a
	// strip's position is trusted.
	MinLetters int

	// ConflationGap excludes BREAK letters that sit close to the LUNCH
	// strip's x, so the two strips are never conflated. (The letter sets
	// are disjoint, but a page can carry more than one BREAK strip.)
	ConflationGap float64

	// StripWidth is the estimated width of a letter strip, used as the gap
	// between a strip and its neighboring columns.
	StripWidth float64
}

// NewBreakLunchResolver creates a resolver with defaults tuned for typical
// timetable renders.
func NewBreakLunchResolver() *BreakLunchResolver {
	return &BreakLunchResolver{
		MinLetters:    3,
		ConflationGap: 60,
		StripWidth:    20,
	}
}

// Name returns "break-lunch".
func (r *BreakLunchResolver) Name() string { return "break-lunch" }

// Resolve locates the BREAK and LUNCH strips and derives the six spans
// algebraically: the strip positions fix the two column-pair boundaries, and
// a slot width estimated from the strip distance lays out the pairs on
// either side.
func (r *BreakLunchResolver) Resolve(fragments []model.TextFragment) ([]ColumnBoundary, bool) {
	var breakXs, lunchXs []float64
	for _, frag := range fragments {
		text := strings.TrimSpace(frag.Text)
		if len(text) != 1 {
			continue
		}
		switch {
		case strings.Contains("BREAK", text):
			breakXs = append(breakXs, frag.X)
		case strings.Contains("LUNCH", text):
			lunchXs = append(lunchXs, frag.X)
		}
	}

	if len(lunchXs) < r.MinLetters {
		return nil, false
	}
	lunchX := mean(lunchXs)

	// Drop BREAK letters near the LUNCH strip before averaging.
	var kept []float64
	for _, x := range breakXs {
		if math.Abs(x-lunchX) > r.ConflationGap {
			kept = append(kept, x)
		}
	}
	if len(kept) < r.MinLetters {
		return nil, false
	}
	breakX := mean(kept)

	if lunchX <= breakX {
		return nil, false
	}

	// Columns 3 and 4 fill the space between the two strips; the same
	// estimated width lays out columns 1-2 to the left of BREAK and 5-6 to
	// the right of LUNCH.
	gap := r.StripWidth
	slotW := (lunchX - breakX - gap) / 2

	lefts := [columnCount]float64{
		breakX - 2*slotW,
		breakX - slotW,
		breakX + gap,
		breakX + gap + slotW,
		lunchX + gap,
		lunchX + gap + slotW,
	}

	cols := make([]ColumnBoundary, columnCount)
	for i, left := range lefts {
		cols[i] = ColumnBoundary{Left: left, Right: left + slotW - gap/2}
	}

	return cols, true
}

// mean computes the arithmetic mean of a slice of float64 values.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
