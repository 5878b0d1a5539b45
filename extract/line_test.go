package extract

import (
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/timegrid/model"
)

const lineDump = `DEPARTMENT OF INFORMATION TECHNOLOGY
IV Sem - Section - A1
Room No. 102
MON
DBMS OS CN
DSP LAB (R.No.204)
TUE ES IoT
(R.No.210)
WED M&C
09.00 AM
FACULTY LOAD DISTRIBUTION`

func TestLineExtract(t *testing.T) {
	e := NewLineExtractor()

	result := e.ExtractText(lineDump)
	if len(result.Skipped) != 0 {
		t.Fatalf("unexpected skips: %+v", result.Skipped)
	}
	if len(result.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(result.Sections))
	}

	section := result.Sections[0]
	if section.Department != "INFORMATION TECHNOLOGY" {
		t.Errorf("Department = %q", section.Department)
	}
	if section.YearSem != "IV Semester" {
		t.Errorf("YearSem = %q, want %q", section.YearSem, "IV Semester")
	}
	if section.SectionID != "A1" {
		t.Errorf("SectionID = %q, want %q", section.SectionID, "A1")
	}
	if section.DefaultRoom != "102" {
		t.Errorf("DefaultRoom = %q, want %q", section.DefaultRoom, "102")
	}

	want := []model.ScheduleEntry{
		// Monday: three bare tokens, then a lab with an inline room.
		{Day: "Monday", TimeSlot: "09:00-09:55", RoomNumber: "102", Subject: "DBMS"},
		{Day: "Monday", TimeSlot: "09:55-10:50", RoomNumber: "102", Subject: "OS"},
		{Day: "Monday", TimeSlot: "11:10-12:05", RoomNumber: "102", Subject: "CN"},
		{Day: "Monday", TimeSlot: "12:05-01:00", RoomNumber: "204", Subject: "DSP LAB"},
		// Tuesday: the room-only line overrides the entry before it.
		{Day: "Tuesday", TimeSlot: "09:00-09:55", RoomNumber: "102", Subject: "ES"},
		{Day: "Tuesday", TimeSlot: "09:55-10:50", RoomNumber: "210", Subject: "IoT"},
		// Wednesday is cut short by the timestamp line.
		{Day: "Wednesday", TimeSlot: "09:00-09:55", RoomNumber: "102", Subject: "M&C"},
	}
	if !reflect.DeepEqual(section.Entries, want) {
		t.Errorf("entries mismatch:\ngot  %+v\nwant %+v", section.Entries, want)
	}
}

// A bare 3-4 digit line after a subject overrides that subject's room, the
// same way an "(R.No.N)" line does.
func TestLineBareRoomOverride(t *testing.T) {
	e := NewLineExtractor()

	result := e.ExtractText(strings.Join([]string{
		"IV Sem - Section - A1",
		"MON DBMS",
		"305",
	}, "\n"))

	if len(result.Sections) != 1 {
		t.Fatalf("got %d sections, want 1: %+v", len(result.Sections), result.Skipped)
	}
	entries := result.Sections[0].Entries
	if len(entries) != 1 || entries[0].RoomNumber != "305" {
		t.Errorf("entries = %+v, want one DBMS entry in room 305", entries)
	}
}

// A room line with no preceding subject pair creates no entry, but the room
// still joins the section's room set.
func TestLineOrphanRoomLine(t *testing.T) {
	e := NewLineExtractor()

	result := e.ExtractText(strings.Join([]string{
		"IV Sem - Section - A1",
		"MON",
		"(R.No.210)",
		"DBMS",
	}, "\n"))

	if len(result.Sections) != 1 {
		t.Fatalf("got %d sections, want 1: %+v", len(result.Sections), result.Skipped)
	}
	section := result.Sections[0]
	if len(section.Entries) != 1 || section.Entries[0].Subject != "DBMS" {
		t.Fatalf("entries = %+v, want only the DBMS entry", section.Entries)
	}

	found := false
	for _, r := range section.Rooms {
		if r.Number == "210" {
			found = true
		}
	}
	if !found {
		t.Errorf("room 210 from the orphan room line missing from room set: %+v", section.Rooms)
	}
}

// A new header line flushes the section before it.
func TestLineMultipleSections(t *testing.T) {
	e := NewLineExtractor()

	result := e.ExtractText(strings.Join([]string{
		"DEPARTMENT OF INFORMATION TECHNOLOGY",
		"IV Sem - Section - A1",
		"MON DBMS OS",
		"VI Sem - Section - B2",
		"MON CN ES",
	}, "\n"))

	if len(result.Sections) != 2 {
		t.Fatalf("got %d sections, want 2: %+v", len(result.Sections), result.Skipped)
	}
	if result.Sections[0].SectionID != "A1" || result.Sections[1].SectionID != "B2" {
		t.Errorf("section ids = %q, %q", result.Sections[0].SectionID, result.Sections[1].SectionID)
	}
	if result.Sections[1].YearSem != "VI Semester" {
		t.Errorf("YearSem = %q, want %q", result.Sections[1].YearSem, "VI Semester")
	}
	if len(result.Sections[0].Entries) != 2 || len(result.Sections[1].Entries) != 2 {
		t.Errorf("entry counts = %d, %d, want 2 each",
			len(result.Sections[0].Entries), len(result.Sections[1].Entries))
	}
	// Department persists across the second header.
	if result.Sections[1].Department != "INFORMATION TECHNOLOGY" {
		t.Errorf("second section lost the department: %q", result.Sections[1].Department)
	}
}

// A header phrase split across lines matches nothing line-by-line, so the
// whole text is retried before the document is declared header-less.
func TestLineWholeTextFallback(t *testing.T) {
	e := NewLineExtractor()

	result := e.ExtractText(strings.Join([]string{
		"DEPARTMENT OF COMPUTER SCIENCE AND ENGINEERING",
		"IV SEMESTER",
		"[SECTION-A1]",
		"Room No. 803",
		"MON",
		"DBMS OS",
	}, "\n"))

	if len(result.Sections) != 1 {
		t.Fatalf("got %d sections, want 1: %+v", len(result.Sections), result.Skipped)
	}
	section := result.Sections[0]
	if section.SectionID != "A1" || section.YearSem != "IV Semester" {
		t.Errorf("header not recovered from whole text: %+v", section)
	}
	if section.DefaultRoom != "803" {
		t.Errorf("DefaultRoom = %q, want %q", section.DefaultRoom, "803")
	}
	if len(section.Entries) != 2 {
		t.Errorf("got %d entries, want 2", len(section.Entries))
	}
}

func TestLineSkipNoHeader(t *testing.T) {
	e := NewLineExtractor()

	result := e.ExtractText("FACULTY LOAD DISTRIBUTION\n09.00 AM")

	if len(result.Sections) != 0 {
		t.Fatalf("got %d sections, want 0", len(result.Sections))
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("got %d skips, want 1", len(result.Skipped))
	}
	skip := result.Skipped[0]
	if skip.Reason != model.SkipNoHeader {
		t.Errorf("reason = %q, want %q", skip.Reason, model.SkipNoHeader)
	}
	if !strings.Contains(skip.Sample, "FACULTY LOAD") {
		t.Errorf("sample %q should carry the page text", skip.Sample)
	}
}

func TestLineSkipZeroEntries(t *testing.T) {
	e := NewLineExtractor()

	result := e.ExtractText(strings.Join([]string{
		"DEPARTMENT OF INFORMATION TECHNOLOGY",
		"IV Sem - Section - A1",
		"FACULTY LOAD DISTRIBUTION",
	}, "\n"))

	if len(result.Sections) != 0 {
		t.Fatalf("got %d sections, want 0", len(result.Sections))
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("got %d skips, want 1", len(result.Skipped))
	}
	skip := result.Skipped[0]
	if skip.Reason != model.SkipZeroEntries {
		t.Errorf("reason = %q, want %q", skip.Reason, model.SkipZeroEntries)
	}
	if skip.Partial == nil || skip.Partial.SectionID != "A1" {
		t.Errorf("zero-entry skip should carry the partial section: %+v", skip.Partial)
	}
}

// Day content longer than the slot count is truncated, never wrapped.
func TestLineExcessSubjectsTruncated(t *testing.T) {
	e := NewLineExtractor()

	result := e.ExtractText(strings.Join([]string{
		"IV Sem - Section - A1",
		"MON A B C D E F G H",
	}, "\n"))

	if len(result.Sections) != 1 {
		t.Fatalf("got %d sections, want 1: %+v", len(result.Sections), result.Skipped)
	}
	entries := result.Sections[0].Entries
	if len(entries) != model.SlotCount {
		t.Fatalf("got %d entries, want %d", len(entries), model.SlotCount)
	}
	if entries[len(entries)-1].Subject != "F" {
		t.Errorf("last entry = %+v, want subject F in the final slot", entries[len(entries)-1])
	}
}
