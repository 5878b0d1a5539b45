package grid

import "github.com/tsawler/timegrid/model"

// StaticResolver is the last-resort strategy: a hardcoded table of six
// column spans tuned from observed typical layouts. It is fragile to any
// change in the source document's rendering scale, which is why it sits
// last in the chain.
type StaticResolver struct {
	Spans []ColumnBoundary
}

// NewStaticResolver creates a resolver carrying the default span table.
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{
		Spans: []ColumnBoundary{
			{Left: 50, Right: 185},
			{Left: 190, Right: 325},
			{Left: 360, Right: 495},
			{Left: 500, Right: 635},
			{Left: 668, Right: 800},
			{Left: 805, Right: 940},
		},
	}
}

// Name returns "static".
func (r *StaticResolver) Name() string { return "static" }

// Resolve returns the configured span table. It always succeeds.
func (r *StaticResolver) Resolve(_ []model.TextFragment) ([]ColumnBoundary, bool) {
	cols := make([]ColumnBoundary, len(r.Spans))
	copy(cols, r.Spans)
	return cols, true
}
