package model

import "strings"

// RoomType classifies a room identifier.
const (
	RoomTypeClassroom = "classroom"
	RoomTypeLab       = "lab"
)

// Room is a room identifier observed on a timetable page.
type Room struct {
	Number string `json:"number"`
	Type   string `json:"type"`
}

// NewRoom builds a Room from an identifier, classifying anything matching
// "lab" (case-insensitive) as a lab and everything else as a classroom.
func NewRoom(number string) Room {
	roomType := RoomTypeClassroom
	if strings.Contains(strings.ToLower(number), "lab") {
		roomType = RoomTypeLab
	}
	return Room{Number: number, Type: roomType}
}

// ScheduleEntry is one subject occupying one (day, time slot) cell. A
// (day, slot) pair may appear twice within a section only when a two-hour
// subject has been deliberately duplicated into the following slot.
type ScheduleEntry struct {
	Day        string `json:"day"`
	TimeSlot   string `json:"time_slot"`
	RoomNumber string `json:"room_number"`
	Subject    string `json:"subject"`
	MOOC       bool   `json:"mooc,omitempty"`
}

// Section is one department/semester/section timetable block as printed on a
// page. A Section is only emitted when it has a non-empty SectionID and at
// least one entry.
type Section struct {
	Department  string          `json:"department"`
	YearSem     string          `json:"year_sem"`
	SectionID   string          `json:"section"`
	DefaultRoom string          `json:"default_room,omitempty"`
	Rooms       []Room          `json:"rooms"`
	Entries     []ScheduleEntry `json:"entries"`
}

// AddRoom records a room identifier in the section's room set, ignoring
// blanks and duplicates.
func (s *Section) AddRoom(number string) {
	number = strings.TrimSpace(number)
	if number == "" {
		return
	}
	for _, r := range s.Rooms {
		if r.Number == number {
			return
		}
	}
	s.Rooms = append(s.Rooms, NewRoom(number))
}

// Valid reports whether the section meets the emission invariant: a section
// identifier is present and at least one entry was extracted.
func (s *Section) Valid() bool {
	return s.SectionID != "" && len(s.Entries) > 0
}
