package md2html

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Engine selects the Markdown implementation used by a Converter.
type Engine string

// Supported engines.
const (
	EngineDialect    Engine = pipeline.EngineDialect
	EngineCommonMark Engine = pipeline.EngineCommonMark
)

// DefaultTitle is the standalone document title used when no other source
// provides one.
const DefaultTitle = "Document"

// Engines returns the names of all supported engines.
func Engines() []string {
	return pipeline.EngineNames()
}

// ParseEngine converts a case-insensitive engine name to an Engine.
// The empty string selects EngineDialect.
func ParseEngine(name string) (Engine, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch {
	case normalized == "":
		return EngineDialect, nil
	case pipeline.IsEngine(normalized):
		return Engine(normalized), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidEngine, name)
}

// Input contains conversion parameters.
type Input struct {
	Markdown   string // Markdown content (may be empty)
	Title      string // Standalone document title (optional)
	SourceName string // Input file name, used as a title fallback (optional)
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	HTML   []byte
	Engine Engine
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	engine     Engine
	standalone bool
}

// WithEngine selects the conversion engine. Unknown engines make
// NewConverter fail with ErrInvalidEngine.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithStandalone wraps output in a complete HTML5 document when enabled.
func WithStandalone(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.standalone = enabled
	}
}
