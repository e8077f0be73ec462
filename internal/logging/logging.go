// Package logging builds the leveled diagnostic logger used by the CLI.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// ErrInvalidLevel indicates an unknown log level name.
var ErrInvalidLevel = errors.New("invalid log level")

// Prefix identifies the program in every log line.
const Prefix = "md2html"

// levelColors are ANSI 256 colors for the level badges.
var levelColors = map[log.Level]string{
	log.DebugLevel: "63",
	log.InfoLevel:  "86",
	log.WarnLevel:  "192",
	log.ErrorLevel: "204",
}

// New creates a logger writing to w at the given level name
// ("debug", "info", "warn", "error"; empty means "warn").
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          Prefix,
		ReportTimestamp: lvl == log.DebugLevel,
		TimeFormat:      time.TimeOnly,
	})
	logger.SetStyles(styles())
	return logger, nil
}

// ParseLevel converts a level name to a log.Level.
func ParseLevel(level string) (log.Level, error) {
	if strings.TrimSpace(level) == "" {
		return log.WarnLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
	return lvl, nil
}

// styles returns the default charm styles with colored, fixed-width level badges.
func styles() *log.Styles {
	s := log.DefaultStyles()
	for lvl, color := range levelColors {
		s.Levels[lvl] = lipgloss.NewStyle().
			SetString(strings.ToUpper(lvl.String())).
			Bold(true).
			MaxWidth(4).
			Foreground(lipgloss.Color(color))
	}
	return s
}
