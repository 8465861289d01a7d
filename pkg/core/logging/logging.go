// Package logging builds the slog.Logger used for catr's debug output.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Environment variables read by FromEnv.
const (
	EnvLevel  = "CATR_LOG_LEVEL"
	EnvFormat = "CATR_LOG_FORMAT"
)

// New creates a logger writing to w. It does not touch the global logger.
// Unknown levels fall back to warn so stderr stays quiet by default.
func New(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// FromEnv creates a logger configured by CATR_LOG_LEVEL and CATR_LOG_FORMAT.
func FromEnv(w io.Writer) *slog.Logger {
	return New(os.Getenv(EnvLevel), os.Getenv(EnvFormat), w)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
