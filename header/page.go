package header

import (
	"regexp"
	"strings"
)

var (
	departmentLine = regexp.MustCompile(`(?i)\bDEPARTMENT\s+OF\s+(.+)`)

	// roomNumber captures the digits of "Room No. 803" style lines. The
	// digit run may be space-split by the page render and is rejoined.
	roomNumber = regexp.MustCompile(`(?i)\bROOM\s*NO\s*[.:]?\s*((?:\d\s*)+)`)

	// namedRoom is the fallback for rooms identified by name rather than
	// number, e.g. "Room CC Lab".
	namedRoom = regexp.MustCompile(`(?i)\bROOM\s+([A-Za-z]+)\s+LAB\b`)
)

// departmentTrailers are keywords that terminate a department name when the
// render ran the heading into the text that follows it.
var departmentTrailers = []string{
	"TIME TABLE",
	"TIMETABLE",
	"ACADEMIC",
	"FACULTY",
	"W.E.F",
	"ROOM",
}

// Department extracts the department name from a line matching
// "DEPARTMENT OF <rest>", taking the remainder up to a line break or a known
// trailing keyword.
func Department(line string) (string, bool) {
	m := departmentLine.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}

	rest := m[1]
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		rest = rest[:idx]
	}
	upper := strings.ToUpper(rest)
	for _, trailer := range departmentTrailers {
		if idx := strings.Index(upper, trailer); idx >= 0 {
			rest = rest[:idx]
			upper = upper[:idx]
		}
	}

	rest = strings.Trim(strings.TrimSpace(rest), ",.-–")
	if rest == "" {
		return "", false
	}
	return rest, true
}

// DefaultRoom extracts the page-level default room from a "Room No. <digits>"
// line, rejoining digit runs the render split apart. When the numeric token
// is absent it falls back to named rooms of the "Room <alpha> Lab" form.
func DefaultRoom(line string) (string, bool) {
	if m := roomNumber.FindStringSubmatch(line); m != nil {
		digits := strings.Join(strings.Fields(m[1]), "")
		if digits != "" {
			return digits, true
		}
	}

	if m := namedRoom.FindStringSubmatch(line); m != nil {
		return strings.ToUpper(m[1]) + " Lab", true
	}

	return "", false
}
