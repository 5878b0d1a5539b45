package grid

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/timegrid/model"
)

// clockPrefix matches the start of a printed slot header such as "09.00" or
// "11:10". Slot labels use a 12-hour clock, so only hours 09-12 and 01-04
// occur.
var clockPrefix = regexp.MustCompile(`^(09|10|11|12|01|02|03|04)[.:][0-9]{2}`)

// TimeHeaderResolver infers column spans from the x-positions of the printed
// clock-time column headers above the grid.
type TimeHeaderResolver struct {
	// MinHeaderY is the Y above which a clock-time fragment is treated as a
	// column header rather than grid content.
	MinHeaderY float64

	// ClusterGap is the maximum distance between two header x-positions
	// that still belong to the same column.
	ClusterGap float64

	// LeftMargin widens each column slightly to the left of its header.
	LeftMargin float64

	// GapMargin keeps each column's right edge just short of the next
	// column's header.
	GapMargin float64

	// FirstExtra and LastExtra widen the outer edges of the first and last
	// columns, whose content often hangs outside the header span.
	FirstExtra float64
	LastExtra  float64
}

// NewTimeHeaderResolver creates a resolver with thresholds tuned for
// timetable pages rendered at typical scale.
func NewTimeHeaderResolver() *TimeHeaderResolver {
	return &TimeHeaderResolver{
		MinHeaderY: 500,
		ClusterGap: 40,
		LeftMargin: 4,
		GapMargin:  6,
		FirstExtra: 10,
		LastExtra:  90,
	}
}

// Name returns "time-header".
func (r *TimeHeaderResolver) Name() string { return "time-header" }

// Resolve clusters the x-positions of clock-time header fragments and builds
// one span per cluster. It fails when fewer than six header positions are
// found, letting the caller fall through to the BREAK/LUNCH strategy.
func (r *TimeHeaderResolver) Resolve(fragments []model.TextFragment) ([]ColumnBoundary, bool) {
	var xs []float64
	for _, frag := range fragments {
		if frag.Y <= r.MinHeaderY {
			continue
		}
		if clockPrefix.MatchString(strings.TrimSpace(frag.Text)) {
			xs = append(xs, frag.X)
		}
	}

	lefts := clusterPositions(xs, r.ClusterGap)
	if len(lefts) < columnCount {
		return nil, false
	}
	lefts = lefts[:columnCount]

	cols := make([]ColumnBoundary, columnCount)
	for i, left := range lefts {
		cols[i].Left = left - r.LeftMargin
		if i == 0 {
			cols[i].Left -= r.FirstExtra
		}
		if i < columnCount-1 {
			cols[i].Right = lefts[i+1] - r.GapMargin
		} else {
			cols[i].Right = left + r.LastExtra
		}
	}

	return cols, true
}

// clusterPositions sorts x-positions and merges any two within gap of each
// other, returning one representative (the cluster minimum) per cluster.
func clusterPositions(xs []float64, gap float64) []float64 {
	if len(xs) == 0 {
		return nil
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	clustered := []float64{sorted[0]}
	last := sorted[0]
	for _, x := range sorted[1:] {
		if x-last > gap {
			clustered = append(clustered, x)
		}
		last = x
	}

	return clustered
}
