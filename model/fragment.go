package model

// TextFragment is one atomic piece of extracted text with its position on the
// page. Fragments are produced once per page render and are never mutated,
// except by the fragment merger, which may concatenate two fragments' text
// and extend the width to the union span.
type TextFragment struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Width float64 `json:"width"`
	Text  string  `json:"text"`
}

// Right returns the right edge X coordinate of the fragment.
func (f TextFragment) Right() float64 {
	return f.X + f.Width
}

// Merge combines f with the fragment to its right, concatenating text and
// extending the width so the merged fragment spans both originals.
func (f TextFragment) Merge(right TextFragment) TextFragment {
	merged := f
	merged.Text = f.Text + right.Text
	if right.Right() > f.Right() {
		merged.Width = right.Right() - f.X
	}
	return merged
}
