package timetable

import "time"

// Group identifies one of the two parallel timing tracks.
type Group string

// Timing tracks. Odd sections run on A, even sections on B.
const (
	GroupA Group = "A"
	GroupB Group = "B"
)

// SlotTimes maps each timing track to its slot time ranges.
type SlotTimes map[Group]map[int]string

// GroupForSection returns the timing track for a section code.
func GroupForSection(section string) Group {
	switch section {
	case "1", "3", "5":
		return GroupA
	default:
		return GroupB
	}
}

// ResultKind discriminates the outcomes of a schedule lookup.
type ResultKind int

const (
	// RegularDay carries per-slot subjects for the requested section.
	RegularDay ResultKind = iota
	// SpecialDay carries a special-day label; no regular classes.
	SpecialDay
	// OutOfRange means the date falls outside the term span.
	OutOfRange
	// NoData means the date is in range but nothing is recorded for it.
	NoData
)

// Bound names the violated term boundary for OutOfRange results.
type Bound int

const (
	TooEarly Bound = iota
	TooLate
)

// SlotResult is one slot line of a regular day. Empty Subjects means
// the slot is free.
type SlotResult struct {
	Slot      int
	TimeRange string
	Subjects  []string
}

// Result is the outcome of resolving a query against the timetable.
// Which fields are meaningful depends on Kind.
type Result struct {
	Kind    ResultKind
	Date    time.Time
	Weekday string

	// RegularDay
	Section string
	Venue   string
	Slots   []SlotResult

	// SpecialDay
	Label string

	// OutOfRange
	Bound     Bound
	BoundDate time.Time
}

// AllFree reports whether a regular day has no scheduled slot at all.
func (r Result) AllFree() bool {
	for _, s := range r.Slots {
		if len(s.Subjects) > 0 {
			return false
		}
	}
	return true
}

// Resolver answers schedule queries against an immutable timetable and
// week calendar using fixed slot-time and venue tables.
type Resolver struct {
	times  SlotTimes
	venues map[string]string
}

// NewResolver creates a resolver with the given lookup tables.
func NewResolver(times SlotTimes, venues map[string]string) *Resolver {
	return &Resolver{times: times, venues: venues}
}

// Resolve produces the schedule result for a query. Order of checks:
// term bounds, week lookup, special-day marker, then per-slot data.
// A special marker always wins over section data.
func (r *Resolver) Resolve(tt *Timetable, cal *WeekCalendar, q Query) Result {
	date := dateOnly(q.Date)

	if date.Before(cal.FirstDate()) {
		return Result{Kind: OutOfRange, Date: date, Bound: TooEarly, BoundDate: cal.FirstDate()}
	}
	if date.After(cal.LastDate()) {
		return Result{Kind: OutOfRange, Date: date, Bound: TooLate, BoundDate: cal.LastDate()}
	}

	weekKey, ok := cal.WeekFor(date)
	if !ok || !tt.HasWeek(weekKey) {
		return Result{Kind: NoData, Date: date, Weekday: weekdayName(date)}
	}

	weekday := weekdayName(date)
	day, ok := tt.Day(weekKey, weekday)
	if !ok {
		return Result{Kind: NoData, Date: date, Weekday: weekday}
	}

	if day.Special != "" {
		return Result{Kind: SpecialDay, Date: date, Weekday: weekday, Label: day.Special}
	}

	times := r.times[GroupForSection(q.Section)]
	sectionSlots := day.Sections[q.Section]

	slots := make([]SlotResult, 0, SlotCount)
	for slot := 1; slot <= SlotCount; slot++ {
		slots = append(slots, SlotResult{
			Slot:      slot,
			TimeRange: times[slot],
			Subjects:  sectionSlots[slot],
		})
	}

	return Result{
		Kind:    RegularDay,
		Date:    date,
		Weekday: weekday,
		Section: q.Section,
		Venue:   r.venues[q.Section],
		Slots:   slots,
	}
}
