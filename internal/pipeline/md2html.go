package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"slices"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Engine names, in the order they are listed to users.
const (
	EngineDialect    = "dialect"
	EngineCommonMark = "commonmark"
)

// EngineNames returns the names of all conversion engines.
func EngineNames() []string {
	return []string{EngineDialect, EngineCommonMark}
}

// IsEngine reports whether name is a known engine. Matching is case-insensitive
// and ignores surrounding whitespace.
func IsEngine(name string) bool {
	return slices.Contains(EngineNames(), strings.ToLower(strings.TrimSpace(name)))
}

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// documentTemplate wraps a rendered fragment in a complete HTML5 document.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// HTMLConverter abstracts Markdown to HTML fragment conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// DialectConverter converts the line-oriented Markdown dialect to HTML.
// It is stateless; one value may serve concurrent conversions.
type DialectConverter struct{}

// ToHTML runs Classify, Aggregate and Render over content.
// The only error it returns is a cancelled context.
func (c *DialectConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return ConvertString(content), nil
}

// HighlightStyle is the chroma style used for fenced code blocks.
const HighlightStyle = "github"

// GoldmarkConverter converts CommonMark to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// Compile-time interface check.
var _ Stylesheeter = (*GoldmarkConverter)(nil)

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and syntax highlighting.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(HighlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // stylesheet-driven colors
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(), // newlines inside paragraphs become <br />
			gmhtml.WithXHTML(),
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Stylesheet returns the CSS for the highlighting classes emitted by ToHTML.
func (c *GoldmarkConverter) Stylesheet() (string, error) {
	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(HighlightStyle)); err != nil {
		return "", fmt.Errorf("%w: writing highlight CSS: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

// WrapDocument embeds an HTML fragment in a standalone HTML5 document.
// The title is escaped; the fragment is inserted verbatim.
func WrapDocument(title, fragment string) string {
	return fmt.Sprintf(documentTemplate, html.EscapeString(title), fragment)
}

// FirstHeading returns the text of the first level-1 heading line in
// content, with inline markup left as written, or "" if there is none.
func FirstHeading(content string) string {
	for _, line := range SplitLines(content) {
		if kind := Classify(line.Text); kind == Heading(1) {
			return Content(line.Text, kind)
		}
	}
	return ""
}
