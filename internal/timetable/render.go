package timetable

import (
	"fmt"
	"strings"
)

// Render formats a schedule result as the plain-text reply the
// transport layer delivers verbatim.
func Render(r Result) string {
	switch r.Kind {
	case SpecialDay:
		return fmt.Sprintf(
			"📅 %s – %s\n\n%s\nNo regular classes.",
			r.Date.Format("02 January 2006"), r.Weekday, r.Label,
		)

	case OutOfRange:
		if r.Bound == TooEarly {
			return fmt.Sprintf("Invalid date — timetable starts from %s", r.BoundDate.Format("02 Jan 2006"))
		}
		return fmt.Sprintf("No data — timetable ends on %s", r.BoundDate.Format("02 Jan 2006"))

	case NoData:
		return "No timetable data for this date."

	default:
		return renderRegularDay(r)
	}
}

func renderRegularDay(r Result) string {
	header := fmt.Sprintf(
		"📅 %s – %s\nSection %s (Room %s)",
		r.Date.Format("02 January 2006"), r.Weekday, r.Section, r.Venue,
	)

	if r.AllFree() {
		return fmt.Sprintf(
			"%s\n\nAll periods free.\nNo classes scheduled for Section %s on this day.",
			header, r.Section,
		)
	}

	lines := make([]string, 0, len(r.Slots))
	for _, slot := range r.Slots {
		subjects := "Free"
		if len(slot.Subjects) > 0 {
			subjects = strings.Join(slot.Subjects, " / ")
		}
		lines = append(lines, fmt.Sprintf("%s\n%s", slot.TimeRange, subjects))
	}

	return header + "\n\n" + strings.Join(lines, "\n\n")
}
