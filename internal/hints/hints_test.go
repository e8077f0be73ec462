package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains []string
		excludes []string
	}{
		{
			name:     "suggests user config path",
			paths:    []string{"site.yaml", "/home/u/.config/go-md2html/site.yaml"},
			contains: []string{"hint:", "--config", "or create /home/u/.config/go-md2html/site.yaml"},
		},
		{
			name:     "no user path",
			paths:    []string{"site.yaml"},
			contains: []string{"--config"},
			excludes: []string{"or create"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hint := ForConfigNotFound(tt.paths)
			for _, want := range tt.contains {
				if !strings.Contains(hint, want) {
					t.Errorf("hint %q missing %q", hint, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(hint, unwanted) {
					t.Errorf("hint %q should not contain %q", hint, unwanted)
				}
			}
		})
	}
}

func TestForEngine(t *testing.T) {
	t.Parallel()

	if got := ForEngine(nil); got != "" {
		t.Errorf("ForEngine(nil) = %q, want empty", got)
	}
	got := ForEngine([]string{"dialect", "commonmark"})
	if got != "\n  hint: available engines: dialect, commonmark" {
		t.Errorf("ForEngine() = %q", got)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"output":    ForOutputDirectory(),
		"directory": ForInputIsDirectory(),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s hint has wrong prefix: %q", name, hint)
		}
	}
}
