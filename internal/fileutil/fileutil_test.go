package fileutil_test

// Notes:
// - WriteFileAtomic: we test creation, replacement, the no-leftover guarantee
//   and failure when the directory is missing.
// - The Write and Close error branches are not tested because triggering disk
//   write failures is platform-specific.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Atomic replacement
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.html")

	if err := fileutil.WriteFileAtomic(path, []byte("first")); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := fileutil.WriteFileAtomic(path, []byte("second")); err != nil {
		t.Fatalf("second write: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("content = %q, want %q", got, "second")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1 (no temp files left)", len(entries))
	}
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "out.html")
	if err := fileutil.WriteFileAtomic(path, []byte("x")); err == nil {
		t.Fatal("expected error for missing directory, got nil")
	}
	if fileutil.FileExists(path) {
		t.Error("destination should not exist after failed write")
	}
}

func TestWriteFileAtomic_EmptyPath(t *testing.T) {
	t.Parallel()

	if err := fileutil.WriteFileAtomic("", nil); !errors.Is(err, fileutil.ErrEmptyPath) {
		t.Errorf("error = %v, want %v", err, fileutil.ErrEmptyPath)
	}
}

// ---------------------------------------------------------------------------
// TestFileExists / TestIsFilePath
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.md")
	if err := os.WriteFile(file, []byte("# a"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"regular file", file, true},
		{"directory", dir, false},
		{"missing", filepath.Join(dir, "nope.md"), false},
	}

	for _, tt := range tests {
		if got := fileutil.FileExists(tt.path); got != tt.want {
			t.Errorf("%s: FileExists(%q) = %v, want %v", tt.name, tt.path, got, tt.want)
		}
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"site", false},
		{"my-site", false},
		{"./site.yaml", true},
		{"/abs/site.yaml", true},
		{`C:\cfg\site.yaml`, true},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.in); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
