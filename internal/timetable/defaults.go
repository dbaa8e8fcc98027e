package timetable

import "time"

// Default tables for the current term. These are configuration, not
// logic: every component takes its tables as a constructor argument so
// a new term only touches this file.

// DefaultWeekEntries is the week-key → start-date table for the term
// running 2026-02-16 through 2026-03-29.
func DefaultWeekEntries() []WeekEntry {
	return []WeekEntry{
		{Key: "WEEK -6", Start: time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)},
		{Key: "WEEK -7", Start: time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)},
		{Key: "WEEK -8", Start: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		{Key: "WEEK -9", Start: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)},
		{Key: "WEEK -10", Start: time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)},
		{Key: "WEEK -11", Start: time.Date(2026, 3, 23, 0, 0, 0, 0, time.UTC)},
	}
}

// DefaultWeekCalendar builds the calendar for the current term.
// The table is static, so a construction error is a programming error.
func DefaultWeekCalendar() *WeekCalendar {
	cal, err := NewWeekCalendar(DefaultWeekEntries())
	if err != nil {
		panic("timetable: invalid default week calendar: " + err.Error())
	}
	return cal
}

// DefaultSpecialLabels is the fixed vocabulary of special-day markers.
// Matching is case-insensitive on trimmed cell content.
func DefaultSpecialLabels() []string {
	return []string{"HOLI", "ID-UL-FITR", "END TERM EXAM"}
}

// DefaultSlotTimes returns the slot time ranges for both timing
// tracks. Odd sections (1,3,5) run on track A, even sections (2,4,6)
// on track B.
func DefaultSlotTimes() SlotTimes {
	return SlotTimes{
		GroupA: {
			1: "10:30 – 12:00 hrs",
			2: "12:15 – 13:45 hrs",
			3: "14:45 – 16:15 hrs",
			4: "16:30 – 18:00 hrs",
		},
		GroupB: {
			1: "10:00 – 11:30 hrs",
			2: "11:45 – 13:15 hrs",
			3: "14:15 – 15:45 hrs",
			4: "16:30 – 18:00 hrs",
		},
	}
}

// DefaultVenues maps section codes to their rooms.
func DefaultVenues() map[string]string {
	return map[string]string{
		"1": "Room-101",
		"2": "Room-102",
		"3": "Room-103",
		"4": "Room-G07",
		"5": "Room-201",
		"6": "Room-G02",
	}
}

// DefaultLayout describes the column roles of the source grid:
// column 0 carries the week marker, column 2 the day name, and
// columns 3-6 the four slot cells.
func DefaultLayout() GridLayout {
	return GridLayout{
		WeekCol:  0,
		DayCol:   2,
		SlotCols: [SlotCount]int{3, 4, 5, 6},
	}
}
