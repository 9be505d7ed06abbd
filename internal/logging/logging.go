// Package logging builds the structured logger shared by swinst commands.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/conn-castle/swinst/internal/messages"
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLevel maps a config log_level value to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	level, ok := levels[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf(messages.LoggingUnknownLevelFmt, name)
	}
	return level, nil
}

// New returns a text logger writing to w. verbose forces debug level.
func New(w io.Writer, level string, verbose bool) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler), nil
}
