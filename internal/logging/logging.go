// Package logging builds the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/randytsao24/metrobot/internal/config"
)

// New returns a logger configured from cfg. Development builds log text to
// stderr; other environments log JSON. When cfg.LogFile is set, output is
// also written to a size-rotated file.
func New(cfg *config.Config) *slog.Logger {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg *config.Config, stderr io.Writer) *slog.Logger {
	w := stderr
	if cfg.LogFile != "" {
		w = io.MultiWriter(stderr, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    16, // MB
			MaxBackups: 3,
			MaxAge:     14,
			Compress:   true,
		})
	}

	opts := &slog.HandlerOptions{Level: Level(cfg.LogLevel)}
	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Level maps a LOG_LEVEL value to a slog level, defaulting to info.
func Level(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
