// Package logger configures the process-wide slog logger and provides
// component-scoped loggers and an operation-timing helper.
package logger

import (
	"log/slog"
	"os"
	"time"
)

// Setup installs the default slog logger with the given level and format
// ("json" or "text").
func Setup(level string, format string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// WithComponent returns the default logger scoped to a component name.
func WithComponent(component string) *slog.Logger {
	return slog.Default().With("component", component)
}

// Duration starts a timer for the named operation and returns a stop
// function that logs the elapsed time.
func Duration(log *slog.Logger, op string) func() {
	start := time.Now()
	return func() {
		log.Info("operation timed", "op", op, "elapsed", time.Since(start))
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
