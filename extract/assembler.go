package extract

import (
	"github.com/tsawler/timegrid/header"
	"github.com/tsawler/timegrid/model"
)

// Result is the output of one extraction run: the emitted sections in
// document order, plus a parallel list of per-page skip diagnostics.
type Result struct {
	Sections []model.Section
	Skipped  []model.SkipReport
}

// assembler carries the mutable state threaded through row processing: the
// department and default room persist until overwritten, while the section
// identity resets whenever a new semester/section header matches.
type assembler struct {
	department  string
	defaultRoom string

	current *model.Section
	// page is the page the current section began on, for skip reports.
	page   int
	sample string

	// added counts entries accepted over the whole run, letting callers
	// detect pages that contributed nothing.
	added int

	result *Result
}

func newAssembler(result *Result) *assembler {
	return &assembler{result: result}
}

// SetDepartment records a new department heading. A changed department
// starts a new timetable block, so any in-progress section is flushed;
// pages repeating the current department leave it in progress.
func (a *assembler) SetDepartment(department string) {
	if department == a.department {
		return
	}
	a.Flush()
	a.department = department
}

// SetDefaultRoom records the page-level default room.
func (a *assembler) SetDefaultRoom(room string) {
	a.defaultRoom = room
}

// Begin flushes the in-progress section and starts a new one from a header
// match, inheriting the persistent department and default room.
func (a *assembler) Begin(match header.Match, page int, sample string) {
	a.Flush()
	a.current = &model.Section{
		Department:  a.department,
		YearSem:     match.YearSem,
		SectionID:   match.SectionID,
		DefaultRoom: a.defaultRoom,
	}
	a.page = page
	a.sample = sample
	if a.defaultRoom != "" {
		a.current.AddRoom(a.defaultRoom)
	}
}

// Active reports whether a section is in progress.
func (a *assembler) Active() bool {
	return a.current != nil
}

// AddRoom records a room identifier in the in-progress section's room set.
// Every room encountered on a page belongs in the set, including overrides
// parsed from cells that never produce an entry.
func (a *assembler) AddRoom(number string) {
	if a.current == nil {
		return
	}
	a.current.AddRoom(number)
}

// AddEntry appends a schedule entry to the in-progress section and records
// its room in the section's room set.
func (a *assembler) AddEntry(entry model.ScheduleEntry) {
	if a.current == nil {
		return
	}
	a.current.Entries = append(a.current.Entries, entry)
	a.current.AddRoom(entry.RoomNumber)
	a.added++
}

// Flush pushes the in-progress section to the output if it meets the
// emission invariant; otherwise it is reported as a zero-entry page and
// discarded. Flushing with no section in progress is a no-op.
func (a *assembler) Flush() {
	if a.current == nil {
		return
	}

	if a.current.Valid() {
		a.result.Sections = append(a.result.Sections, *a.current)
	} else {
		a.result.Skipped = append(a.result.Skipped, model.SkipReport{
			Page:    a.page,
			Reason:  model.SkipZeroEntries,
			Sample:  a.sample,
			Partial: a.current,
		})
	}
	a.current = nil
	a.sample = ""
}

// SkipPage records a page that produced no header match at all.
func (a *assembler) SkipPage(page int, sample string) {
	a.result.Skipped = append(a.result.Skipped, model.SkipReport{
		Page:   page,
		Reason: model.SkipNoHeader,
		Sample: sample,
	})
}

// sampleText returns the first sampleLen runes of a page's text for skip
// diagnostics.
func sampleText(text string) string {
	const sampleLen = 120
	runes := []rune(text)
	if len(runes) <= sampleLen {
		return text
	}
	return string(runes[:sampleLen])
}
