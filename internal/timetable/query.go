package timetable

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// Interpretation failures. Both are user errors surfaced as
// clarification prompts, never as internal errors.
var (
	ErrDateUnresolved    = errors.New("could not resolve a date from the text")
	ErrSectionUnresolved = errors.New("could not resolve a section from the text")
)

// Query is a fully resolved (date, section) request. It is only
// constructed when both parts resolved unambiguously.
type Query struct {
	Date    time.Time
	Section string // "1".."6"
}

var (
	isoDatePattern = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)
	sectionPattern = regexp.MustCompile(`(?i)(?:s|sec|section)\s*(\d)`)
)

// weekdayTokens maps recognized weekday words (full names and standard
// abbreviations) to Go weekdays. Ordered so full names are tried before
// their abbreviations.
var weekdayTokens = []struct {
	token string
	day   time.Weekday
}{
	{"monday", time.Monday}, {"mon", time.Monday},
	{"tuesday", time.Tuesday}, {"tue", time.Tuesday},
	{"wednesday", time.Wednesday}, {"wed", time.Wednesday},
	{"thursday", time.Thursday}, {"thur", time.Thursday}, {"thu", time.Thursday},
	{"friday", time.Friday}, {"fri", time.Friday},
	{"saturday", time.Saturday}, {"sat", time.Saturday},
	{"sunday", time.Sunday}, {"sun", time.Sunday},
}

// dateStrategy attempts one way of reading a date out of the text.
// Strategies are pure: they report failure instead of erroring.
type dateStrategy func(text string, now time.Time) (time.Time, bool)

// Interpreter turns free-text requests into structured queries. Date
// resolution tries its strategies in priority order and the first
// success wins; section resolution is independent of it.
type Interpreter struct {
	dateStrategies []dateStrategy
}

// NewInterpreter creates an interpreter with the standard strategy
// order: relative keywords, ISO dates, weekday names.
func NewInterpreter() *Interpreter {
	return &Interpreter{
		dateStrategies: []dateStrategy{
			relativeKeywordDate,
			isoDate,
			weekdayDate,
		},
	}
}

// Interpret resolves text against the reference time "now". It returns
// ErrDateUnresolved or ErrSectionUnresolved when the respective part is
// missing; the date failure is reported first when both are missing.
func (in *Interpreter) Interpret(text string, now time.Time) (Query, error) {
	lowered := strings.ToLower(strings.TrimSpace(text))

	var date time.Time
	resolved := false
	for _, strategy := range in.dateStrategies {
		if d, ok := strategy(lowered, now); ok {
			date = dateOnly(d)
			resolved = true
			break
		}
	}
	if !resolved {
		return Query{}, ErrDateUnresolved
	}

	section, ok := parseSection(lowered)
	if !ok {
		return Query{}, ErrSectionUnresolved
	}

	return Query{Date: date, Section: section}, nil
}

// relativeKeywordDate resolves "today", "tomorrow" and "yesterday" by
// substring match.
func relativeKeywordDate(text string, now time.Time) (time.Time, bool) {
	switch {
	case strings.Contains(text, "today"):
		return now, true
	case strings.Contains(text, "tomorrow"):
		return now.AddDate(0, 0, 1), true
	case strings.Contains(text, "yesterday"):
		return now.AddDate(0, 0, -1), true
	}
	return time.Time{}, false
}

// isoDate resolves an embedded YYYY-MM-DD token. Tokens that look like
// a date but name an invalid calendar day fail the strategy without
// surfacing an error.
func isoDate(text string, _ time.Time) (time.Time, bool) {
	m := isoDatePattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	d, err := time.Parse("2006-01-02", m[1])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// weekdayDate resolves an embedded weekday name to its next occurrence
// strictly after now. Naming today's weekday always rolls forward a
// full week, never to today itself.
func weekdayDate(text string, now time.Time) (time.Time, bool) {
	for _, wt := range weekdayTokens {
		if !strings.Contains(text, wt.token) {
			continue
		}
		offset := (int(wt.day) - int(now.Weekday()) + 7) % 7
		if offset == 0 {
			offset = 7
		}
		return now.AddDate(0, 0, offset), true
	}
	return time.Time{}, false
}

// parseSection matches an "s"/"sec"/"section" token followed by a
// single digit. Digits outside 1..6 do not resolve.
func parseSection(text string) (string, bool) {
	m := sectionPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	if m[1] < "1" || m[1] > "6" {
		return "", false
	}
	return m[1], true
}
