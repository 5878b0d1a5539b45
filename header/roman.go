package header

import "strings"

// romanCollapses lists spaced roman-numeral sequences and their collapsed
// forms, longest first. Order matters: "I V" must be checked before the
// shorter "I I" family so a fragmented "IV" is never half-collapsed.
var romanCollapses = []struct {
	spaced    string
	collapsed string
}{
	{"V I I I", "VIII"},
	{"V I I", "VII"},
	{"I I I", "III"},
	{"I V", "IV"},
	{"V I", "VI"},
	{"I I", "II"},
	{"I X", "IX"},
}

// NormalizeRoman collapses roman numerals that the page render split into
// single-letter fragments, such as "I V SEMESTER" -> "IV SEMESTER". It must
// run before any header pattern matching.
func NormalizeRoman(s string) string {
	for _, c := range romanCollapses {
		for {
			idx := indexWord(s, c.spaced)
			if idx < 0 {
				break
			}
			s = s[:idx] + c.collapsed + s[idx+len(c.spaced):]
		}
	}
	return s
}

// indexWord finds sub in s at word boundaries: the match may not be flanked
// by additional roman letters, so the "I V" in "XI VI" is left alone.
func indexWord(s, sub string) int {
	from := 0
	for {
		idx := strings.Index(s[from:], sub)
		if idx < 0 {
			return -1
		}
		idx += from

		beforeOK := idx == 0 || !isRomanLetter(s[idx-1])
		afterOK := idx+len(sub) == len(s) || !isRomanLetter(s[idx+len(sub)])
		if beforeOK && afterOK {
			return idx
		}
		from = idx + 1
	}
}

func isRomanLetter(b byte) bool {
	return b == 'I' || b == 'V' || b == 'X'
}
