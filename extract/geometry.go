package extract

import (
	"math"
	"regexp"
	"strings"

	"github.com/tsawler/timegrid/grid"
	"github.com/tsawler/timegrid/header"
	"github.com/tsawler/timegrid/layout"
	"github.com/tsawler/timegrid/model"
)

var (
	// roomOverrideHead matches an explicit in-grid room annotation such as
	// "Room No: 804" or "(R.No.803)".
	roomOverrideHead = regexp.MustCompile(`(?i)^\(?\s*(?:ROOM\s*NO|R\.?\s*NO)\s*[.:]?\s*(\d+)\s*\)?$`)

	// bareRoom matches a bare 3-4 digit token. It only counts as a room
	// override when it sits off the day label's baseline, where subjects
	// never print.
	bareRoom = regexp.MustCompile(`^\d{3,4}$`)

	moocToken = regexp.MustCompile(`(?i)^\(\s*MOOC\s*\)$`)

	// twoHourSubject marks subjects that occupy two consecutive slots:
	// any whole-word LAB, plus the QAVA and CP activity blocks.
	twoHourSubject = regexp.MustCompile(`\bLAB\b`)
)

// GeometryExtractor recovers sections from positioned text fragments by
// spatial reasoning: rows by vertical proximity, columns from the resolved
// time-slot boundaries, cells by x-containment.
type GeometryExtractor struct {
	// Merger repairs split tokens before any pattern matching.
	Merger *layout.FragmentMerger

	// Recognizer extracts header metadata.
	Recognizer *header.Recognizer

	// Resolvers are the column-boundary strategies, tried in order.
	Resolvers []grid.ColumnResolver

	// DayBandTolerance is the vertical band around a day label that still
	// belongs to that day's row.
	DayBandTolerance float64

	// BaselineOffset is the minimum |dY| from the day label at which a
	// bare numeric token is read as a room override rather than content.
	BaselineOffset float64
}

// NewGeometryExtractor creates an extractor with default components.
func NewGeometryExtractor() *GeometryExtractor {
	return &GeometryExtractor{
		Merger:           layout.NewFragmentMerger(),
		Recognizer:       header.NewRecognizer(),
		Resolvers:        grid.DefaultResolvers(),
		DayBandTolerance: layout.DayRowTolerance,
		BaselineOffset:   4,
	}
}

// ExtractPages parses each page's fragments independently and assembles the
// emitted sections. Department and default room persist across pages until
// overwritten; a page whose header cannot be recognized is reported and
// skipped without aborting the remaining pages.
func (e *GeometryExtractor) ExtractPages(pages [][]model.TextFragment) *Result {
	result := &Result{}
	asm := newAssembler(result)

	for i, fragments := range pages {
		e.extractPage(asm, i+1, fragments)
	}
	asm.Flush()

	return result
}

// extractPage processes one page: merge rows, recognize the header, resolve
// columns, then map day rows to entries.
func (e *GeometryExtractor) extractPage(asm *assembler, page int, fragments []model.TextFragment) {
	if len(fragments) == 0 {
		asm.SkipPage(page, "")
		return
	}

	rows := e.mergedRows(fragments)

	rowTexts := make([]string, len(rows))
	for i, row := range rows {
		parts := make([]string, 0, len(row))
		for _, frag := range row {
			parts = append(parts, frag.Text)
		}
		rowTexts[i] = strings.Join(parts, " ")
	}
	pageText := strings.Join(rowTexts, "\n")

	// Department and default room persist across pages, so they are read
	// even when the section header later fails to match.
	for _, text := range rowTexts {
		if dept, ok := header.Department(text); ok {
			asm.SetDepartment(dept)
			break
		}
	}
	for _, text := range rowTexts {
		if room, ok := header.DefaultRoom(text); ok {
			asm.SetDefaultRoom(room)
			break
		}
	}

	// Per-row pass first; if a logical phrase was split across two row
	// groups, the whole-page pass recovers it.
	match, ok := e.recognizeHeader(rowTexts, pageText, asm.department)
	if !ok {
		asm.SkipPage(page, sampleText(pageText))
		return
	}
	asm.Begin(match, page, sampleText(pageText))

	cols := e.resolveColumns(fragments)
	merged := e.mergeAll(rows)

	for _, label := range e.dayLabels(merged) {
		e.mapDayRow(asm, merged, cols, label)
	}
}

// recognizeHeader tries every grouped row in order, then the concatenated
// page text as a fallback pass.
func (e *GeometryExtractor) recognizeHeader(rowTexts []string, pageText, department string) (header.Match, bool) {
	for _, text := range rowTexts {
		if match, ok := e.Recognizer.Recognize(text, department); ok {
			return match, true
		}
	}
	return e.Recognizer.Recognize(pageText, department)
}

// mergedRows groups the page into header-tolerance rows and repairs split
// tokens within each row.
func (e *GeometryExtractor) mergedRows(fragments []model.TextFragment) [][]model.TextFragment {
	grouper := layout.NewRowGrouper(layout.HeaderRowTolerance)
	rows := grouper.GroupRows(fragments)
	for i, row := range rows {
		rows[i] = e.Merger.Merge(row)
	}
	return rows
}

// mergeAll flattens merged rows back to a single fragment list for band
// collection.
func (e *GeometryExtractor) mergeAll(rows [][]model.TextFragment) []model.TextFragment {
	var all []model.TextFragment
	for _, row := range rows {
		all = append(all, row...)
	}
	return all
}

// resolveColumns runs the strategy chain for this page.
func (e *GeometryExtractor) resolveColumns(fragments []model.TextFragment) []grid.ColumnBoundary {
	for _, r := range e.Resolvers {
		if cols, ok := r.Resolve(fragments); ok {
			return cols
		}
	}
	return nil
}

// dayLabels finds the fragments that anchor day rows.
func (e *GeometryExtractor) dayLabels(fragments []model.TextFragment) []model.TextFragment {
	var labels []model.TextFragment
	for _, frag := range fragments {
		if _, ok := model.DayFromCode(strings.TrimSpace(frag.Text)); ok {
			labels = append(labels, frag)
		}
	}
	return labels
}

// cell accumulates one column's content while a day row is mapped.
type cell struct {
	subjects []string
	room     string
	mooc     bool
	// filled marks a column claimed by a two-hour duplicate so it is not
	// reprocessed.
	filled bool
}

// mapDayRow collects the fragments in the day label's band, assigns each to
// a column, and emits one entry per occupied column, duplicating two-hour
// subjects into the following empty column.
func (e *GeometryExtractor) mapDayRow(asm *assembler, fragments []model.TextFragment, cols []grid.ColumnBoundary, label model.TextFragment) {
	day, _ := model.DayFromCode(strings.TrimSpace(label.Text))

	band := layout.Band(fragments, label.Y, e.DayBandTolerance)
	band = e.Merger.Merge(band)

	cells := make([]cell, model.SlotCount)
	for _, frag := range band {
		text := strings.TrimSpace(frag.Text)
		if text == "" {
			continue
		}
		if _, ok := model.DayFromCode(text); ok {
			continue
		}
		if isStripLetter(text) {
			continue
		}

		col := grid.ColumnIndex(cols, frag.X)
		if col < 0 {
			// Likely BREAK/LUNCH gap text.
			continue
		}

		switch {
		case roomOverrideHead.MatchString(text):
			// The room set records every room seen, even when the
			// cell's subject list stays empty.
			room := roomOverrideHead.FindStringSubmatch(text)[1]
			cells[col].room = room
			asm.AddRoom(room)
		case bareRoom.MatchString(text) && math.Abs(frag.Y-label.Y) > e.BaselineOffset:
			cells[col].room = text
			asm.AddRoom(text)
		case moocToken.MatchString(text):
			cells[col].mooc = true
		default:
			cells[col].subjects = append(cells[col].subjects, text)
		}
	}

	for i := range cells {
		if cells[i].filled {
			continue
		}
		subject := strings.TrimSpace(strings.Join(cells[i].subjects, " "))
		if subject == "" {
			continue
		}

		room := cells[i].room
		if room == "" {
			room = asm.defaultRoom
		}

		asm.AddEntry(model.ScheduleEntry{
			Day:        day,
			TimeSlot:   model.TimeSlots[i],
			RoomNumber: room,
			Subject:    subject,
			MOOC:       cells[i].mooc,
		})

		// Two-hour blocks spill into the next slot when it is empty.
		if i+1 < len(cells) && isTwoHour(subject) && len(cells[i+1].subjects) == 0 && !cells[i+1].filled {
			nextRoom := cells[i+1].room
			if nextRoom == "" {
				nextRoom = room
			}
			asm.AddEntry(model.ScheduleEntry{
				Day:        day,
				TimeSlot:   model.TimeSlots[i+1],
				RoomNumber: nextRoom,
				Subject:    subject,
				MOOC:       cells[i].mooc,
			})
			cells[i+1].filled = true
		}
	}
}

// isStripLetter reports whether a fragment is a single letter from the
// vertical BREAK/LUNCH strips.
func isStripLetter(text string) bool {
	if len(text) != 1 {
		return false
	}
	return strings.Contains("BREAK", text) || strings.Contains("LUNCH", text)
}

// isTwoHour reports whether a subject occupies two consecutive slots.
func isTwoHour(subject string) bool {
	upper := strings.ToUpper(subject)
	return twoHourSubject.MatchString(upper) || upper == "QAVA" || upper == "CP"
}
