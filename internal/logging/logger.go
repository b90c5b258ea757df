// Package logging wraps zerolog for the linreg command-line tool.
//
// Library packages never log; only cmd/linreg creates a Logger.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Logger wraps zerolog.Logger with key/value convenience methods.
type Logger struct {
	zl zerolog.Logger
}

// New creates a logger writing to w.
//
// Parameters:
//   - w: Destination, usually os.Stderr
//   - level: zerolog level name (debug, info, warn, error, disabled)
//   - format: FormatConsole for human-readable output, FormatJSON for one JSON object per line
//
// Returns:
//   - *Logger: Configured logger
//   - error: Unknown level or format
func New(w io.Writer, level, format string) (*Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	switch format {
	case FormatJSON:
	case FormatConsole:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}

	return NewWithWriter(w, lvl), nil
}

// NewWithWriter creates a JSON logger with a custom writer and level.
func NewWithWriter(w io.Writer, level zerolog.Level) *Logger {
	zl := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Logger{zl: zl}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// Debug logs a debug message with alternating key/value fields.
func (l *Logger) Debug(msg string, fields ...any) {
	addFields(l.zl.Debug(), fields).Msg(msg)
}

// Info logs an info message with alternating key/value fields.
func (l *Logger) Info(msg string, fields ...any) {
	addFields(l.zl.Info(), fields).Msg(msg)
}

// Warn logs a warning message with alternating key/value fields.
func (l *Logger) Warn(msg string, fields ...any) {
	addFields(l.zl.Warn(), fields).Msg(msg)
}

// Error logs an error message with alternating key/value fields.
func (l *Logger) Error(msg string, fields ...any) {
	addFields(l.zl.Error(), fields).Msg(msg)
}

// With returns a child logger that adds the given key/value fields to every entry.
func (l *Logger) With(fields ...any) *Logger {
	ctx := l.zl.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		ctx = ctx.Interface(key, fields[i+1])
	}

	return &Logger{zl: ctx.Logger()}
}

// addFields appends key/value pairs to e. Errors are logged by message; keys that
// are not strings and a trailing odd value are ignored.
func addFields(e *zerolog.Event, fields []any) *zerolog.Event {
	if e == nil {
		return nil
	}

	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}

		switch v := fields[i+1].(type) {
		case error:
			e = e.AnErr(key, v)
		case string:
			e = e.Str(key, v)
		case int:
			e = e.Int(key, v)
		case float64:
			e = e.Float64(key, v)
		default:
			e = e.Interface(key, v)
		}
	}

	return e
}
