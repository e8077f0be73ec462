package logging

// Notes:
// - Color output depends on the terminal profile detected by lipgloss; tests
//   write to a bytes.Buffer, which renders without ANSI sequences, so only
//   message text and level filtering are asserted.

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    log.Level
		wantErr error
	}{
		{"", log.WarnLevel, nil},
		{"debug", log.DebugLevel, nil},
		{"INFO", log.InfoLevel, nil},
		{" warn ", log.WarnLevel, nil},
		{"error", log.ErrorLevel, nil},
		{"loud", 0, ErrInvalidLevel},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseLevel(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLevel(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(&buf, "warn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("shown warning", "file", "in.md")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages:\n%s", out)
	}
	for _, want := range []string{"shown warning", "file=in.md", Prefix} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	if _, err := New(&bytes.Buffer{}, "verbose"); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("error = %v, want %v", err, ErrInvalidLevel)
	}
}
