// Package md2html converts a small line-oriented Markdown dialect to HTML.
//
// # Quick Start
//
//	conv, err := md2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2html.Input{
//	    Markdown: "# Hello\n\n- one\n- two\n",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.html", result.HTML, 0644)
//
// For one-off conversions without options, ConvertString returns the HTML
// fragment directly.
//
// # Dialect
//
// Each input line is classified by its leading characters:
//
//	# Title ... ###### Title   heading, one <hN> per line (more than 6 '#' is text)
//	- item                     unordered list item, grouped into <ul>
//	* item                     ordered list item, grouped into <ol>
//	(blank line)               closes the current block
//	anything else              paragraph text, consecutive lines joined by <br/>
//
// Within a line, inline spans are rewritten:
//
//	**bold**     <b>bold</b>
//	__emph__     <em>emph</em>
//	[[text]]     lowercase hex MD5 digest of text
//	((text))     text with every c and C removed
//
// Unterminated delimiters are kept as literal text; conversion never fails.
//
// # Engines
//
// EngineDialect (the default) implements the rules above. EngineCommonMark
// renders the same input with goldmark (GFM, syntax highlighting) and is
// meant for comparing against standard Markdown semantics.
//
// # Standalone Documents
//
// WithStandalone(true) wraps the fragment in a minimal HTML5 document whose
// title comes from Input.Title, the first level-1 heading, or Input.SourceName.
// With EngineCommonMark the document also embeds the syntax highlighting
// stylesheet.
package md2html
