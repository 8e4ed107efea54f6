// Package logging provides a shared, structured logger for rulecalc.
//
// It wraps [log/slog] with a [github.com/lmittmann/tint] handler and provides
// a single initialization point so all components share the same output and
// level. The level is read from RULECALC_LOG_LEVEL (debug, info, warn,
// error; default info).
//
// Usage:
//
//	log := logging.New("config")
//	log.Info("saved config", "path", p)
//
// Output goes to stderr, or to the file named by RULECALC_LOG_FILE when it
// is set, so logs can be kept out of the terminal UI entirely. Colour is
// only used when the destination is a terminal.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

const (
	envLevel = "RULECALC_LOG_LEVEL"
	envFile  = "RULECALC_LOG_FILE"

	timeFormat = "15:04:05"
)

var (
	// initLogger guards the lazy creation of baseLogger.
	initLogger sync.Once

	// baseLogger is shared by all components; component loggers are derived
	// from it via With().
	baseLogger *slog.Logger
)

// New returns a structured logger scoped to the given component name.
//
// The component is added as a "component" attribute to every entry. If
// component is empty, the base logger is returned without attributes.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		out := openOutput(os.Getenv(envFile))
		baseLogger = slog.New(newHandler(out, parseLevel(os.Getenv(envLevel))))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

func newHandler(out *os.File, level slog.Level) slog.Handler {
	return tint.NewHandler(out, &tint.Options{
		Level:      level,
		TimeFormat: timeFormat,
		NoColor:    !isTerminal(out),
	})
}

// NewWriterHandler builds the same handler for an arbitrary writer, without
// colour. Tests use it to capture output.
func NewWriterHandler(w io.Writer, level slog.Level) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: timeFormat,
		NoColor:    true,
	})
}

// openOutput opens path for appending, falling back to stderr.
func openOutput(path string) *os.File {
	path = strings.TrimSpace(path)
	if path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return os.Stderr
	}
	return f
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// parseLevel converts a human-readable log level string to a [slog.Level].
//
// Recognized values (case-insensitive, whitespace-trimmed):
//   - "debug"           → slog.LevelDebug
//   - "warn", "warning" → slog.LevelWarn
//   - "error"           → slog.LevelError
//   - anything else     → slog.LevelInfo (the default)
func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
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
