package main

// Notes:
// - exitCodeFor: we test every sentinel error from the CLI, config, library
//   and logging packages, plus wrapped errors to verify errors.Is() chains.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/logging"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"missing input", &MissingInputError{Path: "a.md"}, ExitIO},
		{"input is directory", ErrInputIsDirectory, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"write html", ErrWriteHTML, ExitIO},
		{"wrapped write html", fmt.Errorf("x: %w", ErrWriteHTML), ExitIO},

		// Usage/config errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"invalid flags", ErrInvalidFlags, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"invalid config", config.ErrInvalidConfig, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid engine", md2html.ErrInvalidEngine, ExitUsage},
		{"invalid log level", logging.ErrInvalidLevel, ExitUsage},
		{"wrapped config", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"cancelled", context.Canceled, ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_Conventions(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes must follow Unix conventions (0, 1, 2)")
	}
	for _, code := range []int{ExitGeneral, ExitUsage, ExitIO} {
		if code >= 126 {
			t.Errorf("exit code %d collides with shell-reserved codes", code)
		}
	}
}
