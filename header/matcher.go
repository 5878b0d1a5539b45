package header

import (
	"regexp"
	"strings"
)

// Match holds the fields recovered from a semester/section header.
type Match struct {
	// YearSem is the normalized semester tag, e.g. "IV Semester".
	YearSem string

	// SectionID is the section code, e.g. "A1". For bracket-only headers
	// it is synthesized from the department abbreviation.
	SectionID string

	// Family names the pattern family that matched, for diagnostics.
	Family string
}

// matcher is one pattern family. Families are tried in fixed priority
// order; the first match wins, which makes ambiguous pages deterministic.
type matcher struct {
	family string
	re     *regexp.Regexp
	build  func(r *Recognizer, m []string, text, department string) (Match, bool)
}

// sectionToken matches a stand-alone "Section-A1" style token anywhere in
// the text. The prose and generic families use it to pick up a section code
// printed away from the semester line.
var sectionToken = regexp.MustCompile(`(?i)\bSECTION\s*[-–]\s*([A-Za-z]?\d+|[A-Za-z]\d*)\b`)

// trailingNumber matches a bare number at the end of a header line, the
// weakest section indicator accepted by the generic fallback family.
var trailingNumber = regexp.MustCompile(`\b(\d{1,2})\s*$`)

// Recognizer extracts department, semester, section, and default-room
// metadata from page text. It is stateless and safe for reuse across pages.
type Recognizer struct {
	matchers []matcher
}

// NewRecognizer creates a recognizer with the built-in pattern families in
// priority order: bracketed, parenthesized, dash, prose, bracket-only, and
// the generic fallback.
func NewRecognizer() *Recognizer {
	r := &Recognizer{}
	r.matchers = []matcher{
		{
			// IV SEMESTER [SECTION-A1]
			family: "bracketed",
			re:     regexp.MustCompile(`(?i)\b([IVX]+)\s*SEMESTER\s*\[\s*SECTION\s*[-–]\s*([A-Za-z]?\d+|[A-Za-z]\d*)\s*\]`),
			build:  buildSemSection,
		},
		{
			// IV SEMESTER (SECTION-A1) or IV SEMESTER (A1)
			family: "parenthesized",
			re:     regexp.MustCompile(`(?i)\b([IVX]+)\s*SEMESTER\s*\(\s*(?:SECTION\s*[-–]\s*)?([A-Za-z]?\d+|[A-Za-z]\d*)\s*\)`),
			build:  buildSemSection,
		},
		{
			// IV Sem – Section – A1
			family: "dash",
			re:     regexp.MustCompile(`(?i)\b([IVX]+)\s*SEM(?:ESTER)?\.?\s*[-–—]\s*SECTION\s*[-–—]\s*([A-Za-z]?\d+|[A-Za-z]\d*)\b`),
			build:  buildSemSection,
		},
		{
			// B.Tech IV Semester, with an optional Section-A1 elsewhere
			family: "prose",
			re:     regexp.MustCompile(`(?i)\bB\.?\s*TECH\.?,?\s*([IVX]+)\s*SEMESTER\b`),
			build: func(r *Recognizer, m []string, text, department string) (Match, bool) {
				match := Match{YearSem: yearSem(m[1])}
				if tok := sectionToken.FindStringSubmatch(text); tok != nil {
					match.SectionID = strings.ToUpper(tok[1])
				} else {
					match.SectionID = synthesizeSection(department)
				}
				return match, match.SectionID != ""
			},
		},
		{
			// [ IV SEMESTER ] with no section; synthesized as <dept>-1
			family: "bracket-only",
			re:     regexp.MustCompile(`(?i)\[\s*([IVX]+)\s*SEMESTER\s*\]`),
			build: func(r *Recognizer, m []string, text, department string) (Match, bool) {
				match := Match{
					YearSem:   yearSem(m[1]),
					SectionID: synthesizeSection(department),
				}
				return match, match.SectionID != ""
			},
		},
		{
			// Any "<SEM> Sem(ester)" co-occurring with a Section token or
			// a bare trailing number.
			family: "generic",
			re:     regexp.MustCompile(`(?i)\b([IVX]+)\s*SEM(?:ESTER)?\b`),
			build: func(r *Recognizer, m []string, text, department string) (Match, bool) {
				match := Match{YearSem: yearSem(m[1])}
				if tok := sectionToken.FindStringSubmatch(text); tok != nil {
					match.SectionID = strings.ToUpper(tok[1])
					return match, true
				}
				if tok := trailingNumber.FindStringSubmatch(strings.TrimSpace(text)); tok != nil {
					match.SectionID = tok[1]
					return match, true
				}
				return Match{}, false
			},
		},
	}
	return r
}

// Recognize tries every pattern family in priority order against the given
// text, which may be a single grouped row or, on the fallback pass, the
// whole page. The department (possibly empty) is used to synthesize section
// codes for section-less header forms. Roman numerals split by the page
// render are normalized before matching.
func (r *Recognizer) Recognize(text, department string) (Match, bool) {
	text = NormalizeRoman(text)

	for _, m := range r.matchers {
		sub := m.re.FindStringSubmatch(text)
		if sub == nil {
			continue
		}
		match, ok := m.build(r, sub, text, department)
		if !ok {
			continue
		}
		match.Family = m.family
		return match, true
	}

	return Match{}, false
}

// buildSemSection is the build step shared by the families whose regex
// captures both semester and section directly.
func buildSemSection(_ *Recognizer, m []string, _, _ string) (Match, bool) {
	return Match{
		YearSem:   yearSem(m[1]),
		SectionID: strings.ToUpper(m[2]),
	}, true
}

// yearSem normalizes a roman semester tag to its canonical form,
// e.g. "iv" -> "IV Semester".
func yearSem(roman string) string {
	return strings.ToUpper(roman) + " Semester"
}

// synthesizeSection derives a section code for header forms that carry
// none: the department abbreviation with a "-1" suffix, e.g. "CSE-1".
func synthesizeSection(department string) string {
	abbrev := Abbreviate(department)
	if abbrev == "" {
		return ""
	}
	return abbrev + "-1"
}

// Abbreviate reduces a department name to its initials, skipping
// connectives, e.g. "COMPUTER SCIENCE AND ENGINEERING" -> "CSE".
func Abbreviate(department string) string {
	var b strings.Builder
	for _, word := range strings.Fields(department) {
		switch strings.ToUpper(word) {
		case "AND", "OF", "THE", "&":
			continue
		}
		b.WriteByte(strings.ToUpper(word)[0])
	}
	return b.String()
}
