package pipeline

import (
	"regexp"
	"strings"
)

// crlfOrCR matches Windows and classic Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Line is one line of input.
type Line struct {
	Text   string // raw content without line terminator
	Number int    // 1-based position in the source
	Blank  bool   // empty or whitespace-only
}

// Block is a maximal run of consecutive lines rendered as one HTML block.
// Items holds the inline-transformed content of each line, in order.
type Block struct {
	Kind  BlockKind
	Lines []Line
	Items []string
}

// Document is the ordered sequence of blocks produced from one input.
type Document struct {
	Blocks []Block
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// SplitLines normalizes line endings and splits content into numbered lines.
// A trailing newline terminates the last line; it does not start a new one.
func SplitLines(content string) []Line {
	content = NormalizeLineEndings(content)
	if content == "" {
		return nil
	}
	raw := strings.Split(strings.TrimSuffix(content, "\n"), "\n")

	lines := make([]Line, len(raw))
	for i, text := range raw {
		lines[i] = Line{Text: text, Number: i + 1, Blank: isBlankLine(text)}
	}
	return lines
}

// aggregator holds the block currently open while lines are consumed.
// It is created per Aggregate call and never shared.
type aggregator struct {
	doc  Document
	open *Block
}

// Aggregate groups classified lines into blocks:
//   - list items of the same list type extend the open list
//   - non-blank text lines extend the open paragraph
//   - every heading line is a block of its own
//   - blank lines close the open block and open nothing
//
// Any other kind change closes the open block and opens a new one.
// End of input closes whatever is still open. Aggregate never fails.
func Aggregate(lines []Line) Document {
	a := &aggregator{}
	for _, line := range lines {
		a.consume(line, Classify(line.Text))
	}
	a.close()
	return a.doc
}

// consume feeds one classified line through the state machine.
func (a *aggregator) consume(line Line, kind BlockKind) {
	if kind.Kind == KindBlank {
		a.close()
		return
	}

	if !a.extends(kind) {
		a.close()
		a.open = &Block{Kind: kind}
	}

	a.open.Lines = append(a.open.Lines, line)
	a.open.Items = append(a.open.Items, Transform(Content(line.Text, kind)))

	if kind.Kind == KindHeading {
		a.close()
	}
}

// extends reports whether a line of the given kind continues the open block.
func (a *aggregator) extends(kind BlockKind) bool {
	if a.open == nil {
		return false
	}
	switch kind.Kind {
	case KindUnorderedItem, KindOrderedItem, KindText:
		return a.open.Kind.Kind == kind.Kind
	}
	return false
}

// close finalizes the open block, if any, and appends it to the document.
func (a *aggregator) close() {
	if a.open == nil {
		return
	}
	a.doc.Blocks = append(a.doc.Blocks, *a.open)
	a.open = nil
}
