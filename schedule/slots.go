package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tsawler/timegrid/model"
)

// Slot is one canonical class period with its boundaries resolved to
// minutes since midnight.
type Slot struct {
	Label string
	Start int
	End   int
}

// slots is built once from the canonical labels in model.TimeSlots.
var slots = mustBuildSlots()

// Slots returns the six canonical slots in column order.
func Slots() []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	return out
}

func mustBuildSlots() []Slot {
	built := make([]Slot, 0, model.SlotCount)
	for _, label := range model.TimeSlots {
		parts := strings.SplitN(label, "-", 2)
		start, err := ParseClock(parts[0])
		if err != nil {
			panic(err)
		}
		end, err := ParseClock(parts[1])
		if err != nil {
			panic(err)
		}
		built = append(built, Slot{Label: label, Start: start, End: end})
	}
	return built
}

// ParseClock converts an "HH:MM" or "HH.MM" wall-clock string to minutes
// since midnight. Slot labels use a 12-hour clock without AM/PM markers, so
// hours 1-4 are treated as PM; this is the deliberate ambiguity-resolution
// rule for afternoon periods.
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	sep := strings.IndexAny(s, ":.")
	if sep < 0 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}

	hour, err := strconv.Atoi(s[:sep])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	minute, err := strconv.Atoi(s[sep+1:])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}

	if hour >= 1 && hour <= 4 {
		hour += 12
	}

	return hour*60 + minute, nil
}

// Overlapping returns every canonical slot that overlaps the [from, to)
// wall-clock range: slot.Start < to && slot.End > from.
func Overlapping(from, to string) ([]Slot, error) {
	fromMin, err := ParseClock(from)
	if err != nil {
		return nil, err
	}
	toMin, err := ParseClock(to)
	if err != nil {
		return nil, err
	}

	var overlapping []Slot
	for _, slot := range slots {
		if slot.Start < toMin && slot.End > fromMin {
			overlapping = append(overlapping, slot)
		}
	}
	return overlapping, nil
}
