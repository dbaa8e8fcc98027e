package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// now is a Wednesday used as the reference time throughout.
var testNow = time.Date(2026, 3, 4, 14, 30, 0, 0, time.UTC)

func TestInterpretRelativeKeywords(t *testing.T) {
	t.Parallel()

	in := NewInterpreter()

	tests := []struct {
		text string
		want time.Time
	}{
		{"today s3", date(2026, 3, 4)},
		{"Tomorrow section 4", date(2026, 3, 5)},
		{"yesterday s1", date(2026, 3, 3)},
		{"what about TODAY sec2", date(2026, 3, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()
			q, err := in.Interpret(tc.text, testNow)
			require.NoError(t, err)
			assert.Equal(t, tc.want, q.Date)
		})
	}
}

func TestInterpretISODate(t *testing.T) {
	t.Parallel()

	in := NewInterpreter()

	q, err := in.Interpret("2026-03-05 s1", testNow)
	require.NoError(t, err)
	assert.Equal(t, date(2026, 3, 5), q.Date)
	assert.Equal(t, "1", q.Section)
}

func TestInterpretInvalidISODateFallsThrough(t *testing.T) {
	t.Parallel()

	in := NewInterpreter()

	// 2026-02-30 is not a calendar day; the ISO strategy fails without
	// erroring and the weekday strategy picks up "friday".
	q, err := in.Interpret("2026-02-30 friday s2", testNow)
	require.NoError(t, err)
	assert.Equal(t, date(2026, 3, 6), q.Date)

	// With nothing else to fall back on, the date stays unresolved.
	_, err = in.Interpret("2026-02-30 s2", testNow)
	assert.ErrorIs(t, err, ErrDateUnresolved)
}

func TestInterpretISODateWinsOverWeekday(t *testing.T) {
	t.Parallel()

	in := NewInterpreter()

	q, err := in.Interpret("2026-03-20 fri s2", testNow)
	require.NoError(t, err)
	assert.Equal(t, date(2026, 3, 20), q.Date)
}

func TestInterpretWeekdayNames(t *testing.T) {
	t.Parallel()

	in := NewInterpreter()

	tests := []struct {
		text string
		want time.Time
	}{
		{"friday s2", date(2026, 3, 6)},
		{"Fri s2", date(2026, 3, 6)},
		{"thursday s1", date(2026, 3, 5)},
		{"thur s1", date(2026, 3, 5)},
		{"monday s5", date(2026, 3, 9)},
		{"sun s6", date(2026, 3, 8)},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()
			q, err := in.Interpret(tc.text, testNow)
			require.NoError(t, err)
			assert.Equal(t, tc.want, q.Date)
		})
	}
}

func TestInterpretWeekdayRollover(t *testing.T) {
	t.Parallel()

	in := NewInterpreter()

	// testNow is a Wednesday: naming Wednesday must mean next week's,
	// never today.
	q, err := in.Interpret("wednesday s3", testNow)
	require.NoError(t, err)
	assert.Equal(t, date(2026, 3, 11), q.Date)
	assert.Equal(t, testNow.AddDate(0, 0, 7).Format("2006-01-02"), q.Date.Format("2006-01-02"))
}

func TestInterpretSections(t *testing.T) {
	t.Parallel()

	in := NewInterpreter()

	valid := []struct {
		text string
		want string
	}{
		{"today s3", "3"},
		{"today S3", "3"},
		{"today sec 4", "4"},
		{"today section 6", "6"},
		{"today section1", "1"},
	}
	for _, tc := range valid {
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()
			q, err := in.Interpret(tc.text, testNow)
			require.NoError(t, err)
			assert.Equal(t, tc.want, q.Section)
		})
	}

	invalid := []string{"today s0", "today s7", "today s9", "today sx", "today"}
	for _, text := range invalid {
		t.Run(text, func(t *testing.T) {
			t.Parallel()
			_, err := in.Interpret(text, testNow)
			assert.ErrorIs(t, err, ErrSectionUnresolved)
		})
	}
}

func TestInterpretFailuresAreIndependent(t *testing.T) {
	t.Parallel()

	in := NewInterpreter()

	// Date missing, section present.
	_, err := in.Interpret("next class s3", testNow)
	assert.ErrorIs(t, err, ErrDateUnresolved)

	// Date present, section missing.
	_, err = in.Interpret("today please", testNow)
	assert.ErrorIs(t, err, ErrSectionUnresolved)

	// Both missing: the date failure is reported first.
	_, err = in.Interpret("hello there", testNow)
	assert.ErrorIs(t, err, ErrDateUnresolved)
}
