package layout

import (
	"math"
	"sort"

	"github.com/tsawler/timegrid/model"
)

// FragmentMerger repairs tokens that the page render split across adjacent
// fragments, such as "285"+"2" -> "2852" or "(R.No.80"+"3"+")" -> "(R.No.803)".
type FragmentMerger struct {
	// YTolerance is the maximum vertical offset between two fragments that
	// can still be parts of one token (in page units).
	YTolerance float64

	// MaxGap is the maximum horizontal gap between the right edge of the
	// left fragment and the left edge of the right fragment. Negative gaps
	// (slight overlap) down to -MaxGap are also accepted.
	MaxGap float64

	// ShortTokenLen is the maximum length of a fragment that "looks split".
	// At least one side of a merge must be this short, which prevents
	// merging unrelated adjacent words such as "DEPARTMENT" and "OF".
	ShortTokenLen int
}

// NewFragmentMerger creates a merger with the default thresholds.
func NewFragmentMerger() *FragmentMerger {
	return &FragmentMerger{
		YTolerance:    2,
		MaxGap:        3,
		ShortTokenLen: 3,
	}
}

// Merge combines adjacent fragments in a row when they represent one
// logically split token. Merging is left-to-right and greedy: a merged
// fragment immediately becomes the left side of the next candidate pair, so
// a token split into many pieces collapses in a single pass.
func (m *FragmentMerger) Merge(row []model.TextFragment) []model.TextFragment {
	if len(row) < 2 {
		return row
	}

	sorted := make([]model.TextFragment, len(row))
	copy(sorted, row)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	merged := []model.TextFragment{sorted[0]}
	for _, next := range sorted[1:] {
		last := merged[len(merged)-1]
		if m.shouldMerge(last, next) {
			merged[len(merged)-1] = last.Merge(next)
		} else {
			merged = append(merged, next)
		}
	}

	return merged
}

// shouldMerge reports whether two horizontally adjacent fragments are parts
// of one split token.
func (m *FragmentMerger) shouldMerge(left, right model.TextFragment) bool {
	if math.Abs(left.Y-right.Y) > m.YTolerance {
		return false
	}

	gap := right.X - left.Right()
	if gap < -m.MaxGap || gap > m.MaxGap {
		return false
	}

	// At least one side must look like a fragment rather than a whole word.
	return len(left.Text) <= m.ShortTokenLen || len(right.Text) <= m.ShortTokenLen
}
