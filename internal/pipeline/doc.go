// Package pipeline implements the line-oriented Markdown-to-HTML engine.
//
// Conversion runs in four stages, each a pure function over in-memory text:
//   - Classify assigns every input line a BlockKind from its leading characters
//   - Transform rewrites inline spans (bold, emphasis, digest, strip) in a line
//   - Aggregate groups consecutive compatible lines into Blocks
//   - Render serializes the resulting Document to HTML
//
// The dialect is intentionally small: ATX headings (1-6 '#'), "- " unordered
// items, "* " ordered items, and paragraphs separated by blank lines. Note that
// "* " opens an ordered list here, not an unordered one as in CommonMark.
//
// GoldmarkConverter provides a CommonMark rendering of the same input for
// comparison. File I/O lives in the cmd/md2html collaborator.
package pipeline
