package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerJSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithOptions("info", &buf, Options{})
	log.WithModule("schedule").WithField("week", "WEEK -6").Info("timetable parsed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "timetable parsed", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "schedule", entry["module"])
	assert.Equal(t, "WEEK -6", entry["week"])
	assert.NotEmpty(t, entry["timestamp"])
}

func TestLoggerLevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithOptions("warn", &buf, Options{})

	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("visible")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warning", entry["level"])
}

func TestFormattedHelpers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithOptions("debug", &buf, Options{})

	log.Warnf("too many events: %d", 150)
	log.Debugf("postback data %q", "schedule:help")
	log.Infof("weeks parsed: %d", 6)
	log.Errorf("load failed: %s", "missing file")

	levels := make([]string, 0, 4)
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		levels = append(levels, entry["level"].(string))
	}
	assert.Equal(t, []string{"warning", "debug", "info", "error"}, levels)
	assert.Contains(t, buf.String(), "too many events: 150")
	assert.Contains(t, buf.String(), "weeks parsed: 6")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for input, want := range tests {
		assert.Equal(t, want, parseLevel(input), "level %q", input)
	}
}

func TestFanoutHandlerDispatchesToAll(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	handler := newFanoutHandler(
		slog.NewJSONHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
		nil, // nil handlers are filtered out
	)

	log := slog.New(handler)
	log.Info("fan out")

	assert.Contains(t, a.String(), "fan out")
	assert.Contains(t, b.String(), "fan out")
}
