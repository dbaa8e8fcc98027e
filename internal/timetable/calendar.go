package timetable

import (
	"fmt"
	"time"
)

// WeekEntry pairs a week key with the first calendar day of that week.
// A week spans Start .. Start+6 days.
type WeekEntry struct {
	Key   string
	Start time.Time
}

// WeekCalendar is the static mapping between week keys and calendar
// date ranges. It is built once from a fixed configuration table and
// defines the only valid query span [FirstDate, LastDate].
type WeekCalendar struct {
	entries []WeekEntry
	first   time.Time
	last    time.Time
}

// NewWeekCalendar builds a calendar from (key, start date) pairs.
// Entries must be ordered by start date and contiguous: each week
// starts exactly 7 days after the previous one, so spans never overlap
// and leave no gaps.
func NewWeekCalendar(entries []WeekEntry) (*WeekCalendar, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("week calendar: no entries")
	}

	normalized := make([]WeekEntry, len(entries))
	for i, e := range entries {
		if e.Key == "" {
			return nil, fmt.Errorf("week calendar: entry %d has empty key", i)
		}
		normalized[i] = WeekEntry{Key: e.Key, Start: dateOnly(e.Start)}
		if i > 0 {
			want := normalized[i-1].Start.AddDate(0, 0, 7)
			if !normalized[i].Start.Equal(want) {
				return nil, fmt.Errorf(
					"week calendar: %s starts %s, want %s (weeks must be contiguous and ordered)",
					e.Key, normalized[i].Start.Format("2006-01-02"), want.Format("2006-01-02"),
				)
			}
		}
	}

	return &WeekCalendar{
		entries: normalized,
		first:   normalized[0].Start,
		last:    normalized[len(normalized)-1].Start.AddDate(0, 0, 6),
	}, nil
}

// WeekFor returns the key of the week whose 7-day span contains the
// given date. The second return value is false when no week matches.
func (c *WeekCalendar) WeekFor(date time.Time) (string, bool) {
	d := dateOnly(date)
	for _, e := range c.entries {
		end := e.Start.AddDate(0, 0, 6)
		if !d.Before(e.Start) && !d.After(end) {
			return e.Key, true
		}
	}
	return "", false
}

// InRange reports whether the date falls within the overall term span.
func (c *WeekCalendar) InRange(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(c.first) && !d.After(c.last)
}

// FirstDate returns the first calendar day of the earliest week.
func (c *WeekCalendar) FirstDate() time.Time { return c.first }

// LastDate returns the last calendar day of the latest week.
func (c *WeekCalendar) LastDate() time.Time { return c.last }
