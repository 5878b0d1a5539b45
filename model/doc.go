// Package model provides the data types shared between timetable extraction
// and its consumers.
//
// The parser-facing input type is [TextFragment], one positioned piece of
// text from a page render. The output types are [Section], one
// department/semester/section timetable block, and its [ScheduleEntry] cells
// keyed by canonical day names and the six canonical [TimeSlots].
//
// A [Section] is only ever emitted when it carries a non-empty section
// identifier and at least one entry; pages that fail extraction are described
// by a [SkipReport] instead.
package model
