// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path, or creating the file in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-md2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output file write errors.
func ForOutputDirectory() string {
	return format("check the output directory exists and is writable")
}

// ForInputIsDirectory returns hints when the input path names a directory.
func ForInputIsDirectory() string {
	return format("the first argument must be a Markdown file, not a directory")
}

// ForEngine returns hints listing the available conversion engines.
func ForEngine(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available engines: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
