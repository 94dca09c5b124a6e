package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// ParseLogLevel parses debug, info, warn or error. The empty string is info.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
	}
}

// SlogLevel returns the configured level, falling back to info.
func (c LogConfig) SlogLevel() slog.Level {
	level, _ := ParseLogLevel(c.Level)
	return level
}
