package timetable

import (
	"regexp"
	"strings"
)

// SlotCount is the number of daily time periods.
const SlotCount = 4

// weekMarkerPrefix introduces a new week block in the source grid.
const weekMarkerPrefix = "WEEK"

// GridLayout fixes the column roles of the source grid.
type GridLayout struct {
	WeekCol  int
	DayCol   int
	SlotCols [SlotCount]int
}

// ParseStats summarizes a parse run. Row and entry skips are non-fatal
// and only surface here and in metrics, never as errors.
type ParseStats struct {
	WeeksParsed    int
	DaysParsed     int
	RowsSkipped    int
	EntriesDropped int
}

// slotEntryPattern matches one slot-cell entry: subject letters
// followed by a parenthesized section designator with an optional "S"
// prefix, e.g. "MATH(1)" or "PHY(S2)".
var slotEntryPattern = regexp.MustCompile(`^([A-Z]+)\(S?(\d)\)$`)

// Parser converts a raw 2-D cell grid into a Timetable. It holds only
// immutable configuration and is safe to reuse.
type Parser struct {
	layout  GridLayout
	special map[string]string // normalized marker → label as written
}

// NewParser creates a parser for the given column layout and
// special-day vocabulary.
func NewParser(layout GridLayout, specialLabels []string) *Parser {
	special := make(map[string]string, len(specialLabels))
	for _, label := range specialLabels {
		special[normalizeCell(label)] = label
	}
	return &Parser{layout: layout, special: special}
}

// rowKind classifies a grid row. Classification is total: every row is
// one of these, and nothing a row contains can abort the parse.
type rowKind int

const (
	rowWeekMarker rowKind = iota
	rowDay
	rowSkipped
)

// Parse walks the grid row by row, top to bottom. A row whose week
// column starts with the marker token opens a new week block; day rows
// inside a block contribute slot data; everything else is skipped.
// Rows before the first marker are ignored.
func (p *Parser) Parse(grid [][]string) (*Timetable, ParseStats) {
	tt := &Timetable{weeks: make(map[string]map[string]*DaySchedule)}
	var stats ParseStats

	currentWeek := ""
	for _, row := range grid {
		kind, weekKey, weekday := p.classifyRow(row, currentWeek != "")
		switch kind {
		case rowWeekMarker:
			currentWeek = weekKey
			if _, ok := tt.weeks[currentWeek]; !ok {
				tt.weeks[currentWeek] = make(map[string]*DaySchedule)
				stats.WeeksParsed++
			}
		case rowDay:
			week := tt.weeks[currentWeek]
			day, ok := week[weekday]
			if !ok {
				day = &DaySchedule{}
				week[weekday] = day
			}
			p.parseDayRow(row, day, &stats)
			stats.DaysParsed++
		default:
			stats.RowsSkipped++
		}
	}

	return tt, stats
}

// classifyRow decides what a row is. Day rows are only recognized
// inside a week block and only when the day cell, case-normalized,
// is one of the seven canonical weekday names.
func (p *Parser) classifyRow(row []string, inWeek bool) (rowKind, string, string) {
	if marker := cellAt(row, p.layout.WeekCol); strings.HasPrefix(strings.TrimSpace(marker), weekMarkerPrefix) {
		return rowWeekMarker, strings.TrimSpace(marker), ""
	}
	if !inWeek {
		return rowSkipped, "", ""
	}
	if weekday, ok := canonicalWeekday(cellAt(row, p.layout.DayCol)); ok {
		return rowDay, "", weekday
	}
	return rowSkipped, "", ""
}

// parseDayRow merges one row's four slot cells into the day's
// schedule. Repeated rows for the same weekday within a week block
// accumulate into one DaySchedule. A special marker in any slot cell
// claims the whole day: accumulated slot content is discarded and
// later rows for the day are ignored, so a day is never both special
// and regular.
func (p *Parser) parseDayRow(row []string, day *DaySchedule, stats *ParseStats) {
	var cells [SlotCount]string
	for i, col := range p.layout.SlotCols {
		cells[i] = cellAt(row, col)
	}

	for _, cell := range cells {
		if label, ok := p.special[normalizeCell(cell)]; ok {
			day.Special = label
			day.Sections = nil
			return
		}
	}

	if day.Special != "" {
		return
	}

	if day.Sections == nil {
		day.Sections = make(map[string]SlotMap)
	}
	for i, cell := range cells {
		slot := i + 1
		for _, entry := range splitSlotCell(cell) {
			subject, section, ok := parseSlotEntry(entry)
			if !ok {
				stats.EntriesDropped++
				continue
			}
			slots, exists := day.Sections[section]
			if !exists {
				slots = make(SlotMap)
				day.Sections[section] = slots
			}
			slots[slot] = append(slots[slot], subject)
		}
	}
}

// splitSlotCell splits a slot cell on "/" delimiters with optional
// surrounding whitespace, discarding blank entries.
func splitSlotCell(cell string) []string {
	var entries []string
	for _, part := range strings.Split(cell, "/") {
		if part = strings.TrimSpace(part); part != "" {
			entries = append(entries, part)
		}
	}
	return entries
}

// parseSlotEntry matches a single entry against the subject(section)
// pattern. Entries that do not match, or whose section digit is
// outside 1..6, are dropped by the caller.
func parseSlotEntry(entry string) (subject, section string, ok bool) {
	m := slotEntryPattern.FindStringSubmatch(entry)
	if m == nil {
		return "", "", false
	}
	if m[2] < "1" || m[2] > "6" {
		return "", "", false
	}
	return m[1], m[2], true
}

// canonicalWeekday normalizes a day cell and matches it against the
// seven canonical weekday names.
func canonicalWeekday(cell string) (string, bool) {
	cell = strings.TrimSpace(cell)
	for _, name := range weekdayNames {
		if strings.EqualFold(cell, name) {
			return name, true
		}
	}
	return "", false
}

// cellAt returns the trimmed cell at the given column, or "" when the
// row is too short. Ragged rows are routine in exported spreadsheets.
func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// normalizeCell prepares a cell for special-label comparison.
func normalizeCell(cell string) string {
	return strings.ToUpper(strings.TrimSpace(cell))
}
