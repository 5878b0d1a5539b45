package schedule

import (
	"sort"

	"github.com/tsawler/timegrid/model"
)

// FreeRooms returns the rooms from the given room set with no schedule entry
// in any canonical slot overlapping the [from, to) range on the given day. A
// room occupied in even one overlapping slot is not free.
func FreeRooms(rooms []model.Room, entries []model.ScheduleEntry, day, from, to string) ([]string, error) {
	overlapping, err := Overlapping(from, to)
	if err != nil {
		return nil, err
	}

	slotSet := make(map[string]bool, len(overlapping))
	for _, slot := range overlapping {
		slotSet[slot.Label] = true
	}

	occupied := make(map[string]bool)
	for _, entry := range entries {
		if entry.Day == day && slotSet[entry.TimeSlot] {
			occupied[entry.RoomNumber] = true
		}
	}

	free := make([]string, 0, len(rooms))
	seen := make(map[string]bool, len(rooms))
	for _, room := range rooms {
		if occupied[room.Number] || seen[room.Number] {
			continue
		}
		seen[room.Number] = true
		free = append(free, room.Number)
	}
	sort.Strings(free)

	return free, nil
}
