package extract

import (
	"regexp"
	"strings"

	"github.com/tsawler/timegrid/header"
	"github.com/tsawler/timegrid/model"
)

var (
	dayLine = regexp.MustCompile(`^(MON|TUE|WED|THU|FRI|SAT)\b[.:]?\s*(.*)$`)

	roomHeaderLine = regexp.MustCompile(`(?i)^ROOM\b`)

	// timestampLine matches schedule-footer times such as "09.00 AM",
	// which terminate a day's continuation scan.
	timestampLine = regexp.MustCompile(`(?i)\b\d{1,2}[.:]\d{2}\s*(AM|PM)\b`)

	// roomOnlyLine is a consumed line carrying nothing but an "(R.No.N)"
	// style reference; it overrides the room of the immediately preceding
	// subject entry. "Room No." lines are page-level headers and
	// terminate the day scan instead.
	roomOnlyLine = regexp.MustCompile(`(?i)^\(?\s*R\.?\s*NO\s*[.:]?\s*(\d+)\s*\)?$`)

	// inlineRoomSuffix is a subject line with a trailing "(R.No.N)".
	inlineRoomSuffix = regexp.MustCompile(`(?i)^(.*?)\s*\(\s*R\.?\s*NO\s*[.:]?\s*(\d+)\s*\)$`)

	// labSubjectLine is a two-word "<X> LAB" subject occupying one cell.
	labSubjectLine = regexp.MustCompile(`^(\S+\s+LAB)$`)
)

// contentTerminators are keywords that end a day's continuation scan
// without being consumed as data.
var contentTerminators = []string{"HOUR", "FACULTY", "ACADEMIC", "TIME TABLE", "TIMETABLE"}

// LineExtractor recovers sections from plain reading-order text through
// pattern matching over consecutive lines: header detection, day-row
// accumulation, then positional mapping onto the six slots.
type LineExtractor struct {
	Recognizer *header.Recognizer
}

// NewLineExtractor creates an extractor with a default header recognizer.
func NewLineExtractor() *LineExtractor {
	return &LineExtractor{Recognizer: header.NewRecognizer()}
}

// ExtractText parses a single line-oriented text dump.
func (e *LineExtractor) ExtractText(text string) *Result {
	return e.ExtractPageTexts([]string{text})
}

// ExtractPageTexts parses each page's text in order, sharing department and
// default-room state across pages the way the geometry strategy does. Headers
// may appear anywhere in a page; each semester/section header flushes the
// section before it.
func (e *LineExtractor) ExtractPageTexts(texts []string) *Result {
	result := &Result{}
	asm := newAssembler(result)

	for i, text := range texts {
		e.extractPage(asm, i+1, text)
	}
	asm.Flush()

	return result
}

// extractPage parses one page's lines. If no single line matches a header
// family, every pattern is retried against the whole page text, which
// recovers headers whose phrase was split across lines. A page with neither
// a header match nor day content for an in-progress section is reported.
func (e *LineExtractor) extractPage(asm *assembler, page int, text string) {
	lines := splitLines(text)
	matched := false

	if !e.hasLineHeader(lines) {
		e.scanMetadata(asm, lines)
		if match, ok := e.Recognizer.Recognize(text, asm.department); ok {
			asm.Begin(match, page, sampleText(text))
			matched = true
		}
	}

	before := asm.added
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if line == "" {
			continue
		}

		if dept, ok := header.Department(line); ok {
			asm.SetDepartment(dept)
			continue
		}
		if match, ok := e.Recognizer.Recognize(line, asm.department); ok {
			asm.Begin(match, page, sampleText(text))
			matched = true
			continue
		}
		if roomHeaderLine.MatchString(line) {
			if room, ok := header.DefaultRoom(line); ok {
				asm.SetDefaultRoom(room)
				if asm.Active() && asm.current.DefaultRoom == "" {
					asm.current.DefaultRoom = room
					asm.current.AddRoom(room)
				}
				continue
			}
		}

		if m := dayLine.FindStringSubmatch(line); m != nil {
			content, next := e.collectDay(lines, i, m[2])
			e.mapDay(asm, m[1], content)
			i = next - 1
		}
	}

	if !matched && asm.added == before {
		asm.SkipPage(page, sampleText(text))
	}
}

// hasLineHeader reports whether any single line matches a header family.
func (e *LineExtractor) hasLineHeader(lines []string) bool {
	dept := e.findDepartment(lines)
	for _, line := range lines {
		if _, ok := e.Recognizer.Recognize(line, dept); ok {
			return true
		}
	}
	return false
}

// findDepartment scans for the department heading without consuming it.
func (e *LineExtractor) findDepartment(lines []string) string {
	for _, line := range lines {
		if dept, ok := header.Department(line); ok {
			return dept
		}
	}
	return ""
}

// scanMetadata applies department and room headings ahead of a whole-text
// header match, so the synthesized section inherits them.
func (e *LineExtractor) scanMetadata(asm *assembler, lines []string) {
	for _, line := range lines {
		if dept, ok := header.Department(line); ok {
			asm.SetDepartment(dept)
		}
		if roomHeaderLine.MatchString(line) {
			if room, ok := header.DefaultRoom(line); ok {
				asm.SetDefaultRoom(room)
			}
		}
	}
}

// collectDay consumes the day label's own remainder plus subsequent lines
// until a terminator, which is left unconsumed. It returns the content
// lines and the index of the first unconsumed line.
func (e *LineExtractor) collectDay(lines []string, start int, remainder string) ([]string, int) {
	var content []string
	if rem := strings.TrimSpace(remainder); rem != "" {
		content = append(content, rem)
	}

	i := start + 1
	for ; i < len(lines); i++ {
		line := lines[i]
		if line == "" {
			continue
		}
		if e.isTerminator(line) {
			break
		}
		content = append(content, line)
	}

	return content, i
}

// isTerminator reports whether a line ends the current day's continuation
// scan: a new day label, a new section or department header, a room header,
// a timestamp, or a known non-content keyword.
func (e *LineExtractor) isTerminator(line string) bool {
	if dayLine.MatchString(line) {
		return true
	}
	if _, ok := header.Department(line); ok {
		return true
	}
	if _, ok := e.Recognizer.Recognize(line, ""); ok {
		return true
	}
	if roomHeaderLine.MatchString(line) {
		return true
	}
	if timestampLine.MatchString(line) {
		return true
	}

	upper := strings.ToUpper(line)
	for _, keyword := range contentTerminators {
		if strings.Contains(upper, keyword) {
			return true
		}
	}
	return false
}

// subjectRoom is one classified (subject, room) pair, zipped positionally
// against the six canonical slots.
type subjectRoom struct {
	subject string
	room    string
}

// mapDay classifies a day's content lines into an ordered subject list and
// zips it against the slot columns: list index j maps to slot j.
func (e *LineExtractor) mapDay(asm *assembler, code string, content []string) {
	day, ok := model.DayFromCode(code)
	if !ok || !asm.Active() {
		return
	}

	var pairs []subjectRoom
	for _, line := range content {
		switch {
		case roomOnlyLine.MatchString(line):
			// A room-only line overrides the room of the preceding
			// subject; it never creates a new entry, but the room
			// still joins the section's room set.
			room := roomOnlyLine.FindStringSubmatch(line)[1]
			asm.AddRoom(room)
			if len(pairs) > 0 {
				pairs[len(pairs)-1].room = room
			}
		case bareRoom.MatchString(line):
			asm.AddRoom(line)
			if len(pairs) > 0 {
				pairs[len(pairs)-1].room = line
			}
		case inlineRoomSuffix.MatchString(line):
			m := inlineRoomSuffix.FindStringSubmatch(line)
			asm.AddRoom(m[2])
			if subject := strings.TrimSpace(m[1]); subject != "" {
				pairs = append(pairs, subjectRoom{subject: subject, room: m[2]})
			}
		case labSubjectLine.MatchString(line):
			pairs = append(pairs, subjectRoom{subject: line})
		default:
			for _, token := range strings.Fields(line) {
				pairs = append(pairs, subjectRoom{subject: token})
			}
		}
	}

	for j, pair := range pairs {
		if j >= model.SlotCount {
			break
		}
		room := pair.room
		if room == "" {
			room = asm.defaultRoom
		}
		asm.AddEntry(model.ScheduleEntry{
			Day:        day,
			TimeSlot:   model.TimeSlots[j],
			RoomNumber: room,
			Subject:    pair.subject,
		})
	}
}

// splitLines trims each line of a text dump, preserving order.
func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
