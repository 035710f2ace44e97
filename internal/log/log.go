// Package log builds the structured loggers easel writes to.
// The terminal belongs to the TUI, so logs never go to stdout/stderr.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmcdole/easel/internal/config"
)

// SetupLogger opens the configured log file and returns a JSON logger writing to it
func SetupLogger(cfg *config.LoggingConfig) (*slog.Logger, error) {
	f, err := openLogFile(cfg.File)
	if err != nil {
		return nil, err
	}
	return NewLogger(f, cfg.Level), nil
}

func openLogFile(path string) (*os.File, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// expandHome resolves a leading ~ to the user's home directory
func expandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, rest), nil
}

// NewLogger builds a JSON logger writing to w at the named level
func NewLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// ParseLevel reads a level name such as "debug" or "WARN+2".
// "warning" is accepted as "warn"; anything unreadable is INFO.
func ParseLevel(level string) slog.Level {
	name := strings.TrimSpace(level)
	if strings.EqualFold(name, "warning") {
		name = "warn"
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// NullLogger returns a logger that discards all output
func NullLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
