// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup()                          // level from SPLITLOG_LOG_LEVEL / LOG_LEVEL
//	logging.SetupWithLevel(slog.LevelDebug)  // explicit level override
//	logging.SetupWriter(f, slog.LevelInfo)   // log somewhere other than stderr
//
// Environment variables:
//
//	SPLITLOG_LOG_LEVEL: debug, info, warn, error (default: warn)
//	LOG_LEVEL:          consulted when SPLITLOG_LOG_LEVEL is unset
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// DefaultLevel keeps routine CLI output free of log lines.
const DefaultLevel = slog.LevelWarn

// Setup configures colored logging on stderr at the level from the environment.
func Setup() {
	SetupWithLevel(LevelFromEnv())
}

// SetupWithLevel configures colored logging on stderr at the given level.
func SetupWithLevel(level slog.Level) {
	SetupWriter(os.Stderr, level)
}

// SetupWriter configures logging to w. Color is used only when w is a
// terminal, so log files and pipes stay plain text.
func SetupWriter(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    !isTerminal(w),
		}),
	))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// Discard drops every log record. The TUI uses it when no log file is set.
func Discard() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// LevelFromEnv reads SPLITLOG_LOG_LEVEL, then LOG_LEVEL.
func LevelFromEnv() slog.Level {
	v := os.Getenv("SPLITLOG_LOG_LEVEL")
	if v == "" {
		v = os.Getenv("LOG_LEVEL")
	}
	return ParseLevel(v)
}

// ParseLevel maps a level name to a slog.Level, defaulting to DefaultLevel.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return DefaultLevel
	}
}
