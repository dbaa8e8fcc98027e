// Package timetable implements the weekly class timetable domain:
// the week calendar, the grid parser, the free-text query interpreter
// and the schedule resolver. All state is built once at startup and
// read-only afterwards, so it is safe to share across request handlers
// without locking.
package timetable

import "time"

// Canonical weekday names as they appear in day rows. Lookup keys
// everywhere in this package use this exact casing.
var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday",
	"Friday", "Saturday", "Sunday",
}

// SlotMap maps a slot index (1..4) to the subject codes scheduled in
// that slot, in order of appearance in the source cell. It is a list,
// not a set: duplicates from the source are preserved.
type SlotMap map[int][]string

// DaySchedule holds one day's data within a week. A day is either
// special (Special is the non-empty label, Sections is ignored) or
// regular (Special is empty), never both.
type DaySchedule struct {
	Special  string
	Sections map[string]SlotMap // section code "1".."6" → slots
}

// Timetable maps week keys to day schedules. It is constructed by
// Parser.Parse and must not be mutated afterwards; all access goes
// through the read-only methods below.
type Timetable struct {
	weeks map[string]map[string]*DaySchedule
}

// Day returns the schedule for the given week key and weekday name.
// The second return value reports whether an entry exists.
func (t *Timetable) Day(weekKey, weekday string) (*DaySchedule, bool) {
	if t == nil || t.weeks == nil {
		return nil, false
	}
	week, ok := t.weeks[weekKey]
	if !ok {
		return nil, false
	}
	day, ok := week[weekday]
	return day, ok
}

// HasWeek reports whether the timetable contains any data for the week.
func (t *Timetable) HasWeek(weekKey string) bool {
	if t == nil {
		return false
	}
	_, ok := t.weeks[weekKey]
	return ok
}

// WeekCount returns the number of parsed week blocks. Used by the
// readiness probe to report whether the source yielded any data.
func (t *Timetable) WeekCount() int {
	if t == nil {
		return 0
	}
	return len(t.weeks)
}

// Empty reports whether the timetable holds no data at all, which is
// the degraded state after a source load failure.
func (t *Timetable) Empty() bool {
	return t.WeekCount() == 0
}

// dateOnly truncates a timestamp to its civil date. All calendar
// comparisons in this package operate on dates, never clock times.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekdayName returns the canonical name for a date's weekday.
func weekdayName(t time.Time) string {
	return t.Weekday().String()
}
