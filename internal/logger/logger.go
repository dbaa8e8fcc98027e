// Package logger wraps log/slog with JSON output and the small set of
// field helpers the rest of the application uses. When a Better Stack
// token is configured, records are also shipped there.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogbetterstack "github.com/samber/slog-betterstack"
)

// Logger is the application logger.
type Logger struct {
	*slog.Logger
}

// Options configures optional logging destinations.
type Options struct {
	// BetterStackToken enables log shipping to Better Stack when set.
	BetterStackToken string
	// BetterStackEndpoint overrides the ingest endpoint (optional).
	BetterStackEndpoint string
}

// New creates a JSON logger writing to stdout.
func New(level string) *Logger {
	return NewWithOptions(level, os.Stdout, Options{})
}

// NewWithOptions creates a logger writing JSON to w, optionally fanned
// out to Better Stack.
func NewWithOptions(level string, w io.Writer, opts Options) *Logger {
	logLevel := parseLevel(level)

	handlerOpts := &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				a.Key = "timestamp"
			case slog.LevelKey:
				a.Key = "level"
				a.Value = slog.StringValue(levelString(a.Value.String()))
			case slog.MessageKey:
				a.Key = "message"
			}
			return a
		},
	}

	var handler slog.Handler = slog.NewJSONHandler(w, handlerOpts)

	if opts.BetterStackToken != "" {
		bsOpt := slogbetterstack.Option{
			Token: opts.BetterStackToken,
			Level: logLevel,
		}
		if opts.BetterStackEndpoint != "" {
			bsOpt.Endpoint = opts.BetterStackEndpoint
		}
		handler = newFanoutHandler(handler, bsOpt.NewBetterstackHandler())
	}

	return &Logger{Logger: slog.New(handler)}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func levelString(level string) string {
	if level == "WARN" {
		return "warning"
	}
	return strings.ToLower(level)
}

// WithModule returns a logger tagged with a module name.
func (l *Logger) WithModule(module string) *Logger {
	return &Logger{Logger: l.With("module", module)}
}

// WithRequestID returns a logger tagged with a request ID.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{Logger: l.With("request_id", requestID)}
}

// WithError returns a logger tagged with an error field.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{Logger: l.With("error", err)}
}

// WithField returns a logger tagged with one extra field.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{Logger: l.With(key, value)}
}

// Infof logs a formatted message at info level.
func (l *Logger) Infof(format string, args ...any) {
	l.Info(fmt.Sprintf(format, args...))
}

// Warnf logs a formatted message at warn level.
func (l *Logger) Warnf(format string, args ...any) {
	l.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs a formatted message at error level.
func (l *Logger) Errorf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...))
}

// Debugf logs a formatted message at debug level.
func (l *Logger) Debugf(format string, args ...any) {
	l.Debug(fmt.Sprintf(format, args...))
}
