// Package header recognizes the metadata block of a timetable page:
// department, semester, section, and default room.
//
// Different academic departments print the semester/section header in
// different conventions. The [Recognizer] models them as a prioritized list
// of pattern families tried in fixed order, so a page matching more than one
// family always resolves the same way. Callers run it once per grouped row
// and, if nothing matches, once more against the whole page text to recover
// phrases the row grouper split across two groups.
package header
