// Package logger sets up structured logging.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alkime/slidebar/internal/config"
)

// SetupLogger configures a JSON slog logger writing to w, based on the
// environment and log level, and installs it as the default logger.
func SetupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: Level(cfg),
	})

	logger := slog.New(handler)

	slog.SetDefault(logger)

	return logger
}

// Level returns the configured level. Development always logs debug.
func Level(cfg *config.Config) slog.Level {
	if cfg.Env == config.EnvDevelopment {
		return slog.LevelDebug
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.LogLevel))); err != nil {
		return slog.LevelInfo
	}

	return level
}

// OpenFile opens the log file for appending. The TUI owns stdout, so
// interactive sessions log here.
func OpenFile(path string) (*os.File, error) {
	//nolint:gosec // path comes from local configuration
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return f, nil
}
