package model

import "strings"

// TimeSlots are the six canonical class periods in a day, used verbatim as
// map keys and storage values. The order is the left-to-right column order
// of the printed grid.
var TimeSlots = [6]string{
	"09:00-09:55",
	"09:55-10:50",
	"11:10-12:05",
	"12:05-01:00",
	"02:15-03:10",
	"03:10-04:05",
}

// SlotCount is the number of columns in the timetable grid.
const SlotCount = len(TimeSlots)

// Days are the canonical day names in printed order. Saturday appears only
// in some department formats.
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// dayCodes maps the 3-letter day labels used in timetable grids (MON, TUE,
// ...) to the canonical names in Days.
var dayCodes = buildDayCodes()

func buildDayCodes() map[string]string {
	codes := make(map[string]string, len(Days))
	for _, day := range Days {
		codes[strings.ToUpper(day[:3])] = day
	}
	return codes
}

// DayFromCode resolves a 3-letter day label (MON, TUE, ...) to its canonical
// day name. The second return value reports whether the code is a day label.
func DayFromCode(code string) (string, bool) {
	day, ok := dayCodes[code]
	return day, ok
}
