package header

import "testing"

func TestNormalizeRoman(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"IV", "I V SEMESTER", "IV SEMESTER"},
		{"VI", "V I SEMESTER", "VI SEMESTER"},
		{"II", "I I SEMESTER", "II SEMESTER"},
		{"VII", "V I I SEMESTER", "VII SEMESTER"},
		{"VIII", "V I I I SEMESTER", "VIII SEMESTER"},
		{"III", "I I I SEMESTER", "III SEMESTER"},
		{"already joined", "IV SEMESTER", "IV SEMESTER"},
		{"embedded in a header", "B.TECH I V SEMESTER [SECTION-A1]", "B.TECH IV SEMESTER [SECTION-A1]"},
		{"no roman content", "DEPARTMENT OF PHYSICS", "DEPARTMENT OF PHYSICS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRoman(tt.in); got != tt.want {
				t.Errorf("NormalizeRoman(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// "I V" must collapse to "IV" as a whole, not be half-eaten by the shorter
// "I I" pattern.
func TestNormalizeRomanChecksLongerPatternsFirst(t *testing.T) {
	if got := NormalizeRoman("I V"); got != "IV" {
		t.Errorf(`NormalizeRoman("I V") = %q, want "IV"`, got)
	}
	if got := NormalizeRoman("V I I I"); got != "VIII" {
		t.Errorf(`NormalizeRoman("V I I I") = %q, want "VIII"`, got)
	}
}
