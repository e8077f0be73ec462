package md2html

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter = (*pipeline.DialectConverter)(nil)
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
)

// Converter orchestrates the Markdown-to-HTML conversion.
// A Converter holds no per-conversion state and is safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	htmlConverter pipeline.HTMLConverter
}

// NewConverter creates a Converter. Without options it uses EngineDialect
// and returns the bare HTML fragment.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{engine: EngineDialect},
	}

	for _, opt := range opts {
		opt(c)
	}

	engine, err := ParseEngine(string(c.cfg.engine))
	if err != nil {
		return nil, err
	}
	c.cfg.engine = engine

	// Keep a converter injected by tests
	if c.htmlConverter == nil {
		c.htmlConverter = newHTMLConverter(engine)
	}

	return c, nil
}

// newHTMLConverter returns the pipeline implementation for engine.
func newHTMLConverter(engine Engine) pipeline.HTMLConverter {
	if engine == EngineCommonMark {
		return pipeline.NewGoldmarkConverter()
	}
	return &pipeline.DialectConverter{}
}

// Engine returns the engine the converter was built with.
func (c *Converter) Engine() Engine {
	return c.cfg.engine
}

// Convert converts input.Markdown to HTML. Empty input yields empty output
// (or an empty standalone document). The context is only used for
// cancellation. Recovers from internal panics to prevent crashes from
// propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	fragment, err := c.htmlConverter.ToHTML(ctx, input.Markdown)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	if c.cfg.standalone {
		fragment, err = c.standaloneDocument(input, fragment)
		if err != nil {
			return nil, err
		}
	}

	return &ConvertResult{
		HTML:   []byte(fragment),
		Engine: c.cfg.engine,
	}, nil
}

// standaloneDocument wraps fragment in an HTML5 document, adding the
// engine's stylesheet when it has one.
func (c *Converter) standaloneDocument(input Input, fragment string) (string, error) {
	doc := pipeline.WrapDocument(documentTitle(input), fragment)

	styled, ok := c.htmlConverter.(pipeline.Stylesheeter)
	if !ok {
		return doc, nil
	}
	css, err := styled.Stylesheet()
	if err != nil {
		return "", fmt.Errorf("building stylesheet: %w", err)
	}
	return pipeline.InjectCSS(doc, css), nil
}

// documentTitle picks the standalone title: explicit title, first level-1
// heading, source file base name, then DefaultTitle.
func documentTitle(input Input) string {
	if t := strings.TrimSpace(input.Title); t != "" {
		return t
	}
	if t := pipeline.FirstHeading(input.Markdown); t != "" {
		return t
	}
	if input.SourceName != "" {
		base := filepath.Base(input.SourceName)
		if t := strings.TrimSuffix(base, filepath.Ext(base)); t != "" && t != "." {
			return t
		}
	}
	return DefaultTitle
}

// ConvertString converts Markdown in the dialect to an HTML fragment.
// It is the option-free equivalent of Convert with EngineDialect.
func ConvertString(markdown string) string {
	return pipeline.ConvertString(markdown)
}
