// Package logging routes slog and the std log package to a file.
// Terminal output stays reserved for the TUI and command results.
package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// ParseLevel converts a config level name (debug, info, warn, error).
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// Init writes logs to <dir>/<name>.log in text format and installs the
// handler as the slog default. The returned closer releases the file.
func Init(dir, name, level string) (io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(dir, name+".log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	Logger = slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(Logger)

	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

// Discard silences logging, for commands run before config is available.
func Discard() {
	Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	slog.SetDefault(Logger)
}
