package pipeline

import (
	"fmt"
	"strings"
)

// MaxHeadingLevel is the deepest heading the dialect recognizes.
// Lines with more leading '#' characters are plain text.
const MaxHeadingLevel = 6

// Kind enumerates the block kinds a line can carry.
type Kind int

const (
	KindText Kind = iota
	KindHeading
	KindUnorderedItem
	KindOrderedItem
	KindBlank
)

// String returns a readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindHeading:
		return "heading"
	case KindUnorderedItem:
		return "unordered-item"
	case KindOrderedItem:
		return "ordered-item"
	case KindBlank:
		return "blank"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// BlockKind is the classification of a single line.
// Level is set only for KindHeading (1..MaxHeadingLevel) and zero otherwise.
type BlockKind struct {
	Kind  Kind
	Level int
}

// Heading returns the BlockKind for a heading of the given level.
func Heading(level int) BlockKind {
	return BlockKind{Kind: KindHeading, Level: level}
}

// Convenience values for the payload-free kinds.
var (
	Text          = BlockKind{Kind: KindText}
	UnorderedItem = BlockKind{Kind: KindUnorderedItem}
	OrderedItem   = BlockKind{Kind: KindOrderedItem}
	Blank         = BlockKind{Kind: KindBlank}
)

func (b BlockKind) String() string {
	if b.Kind == KindHeading {
		return fmt.Sprintf("heading(%d)", b.Level)
	}
	return b.Kind.String()
}

// Line markers recognized at the start of a line.
const (
	headingMarker   = '#'
	unorderedPrefix = "- "
	orderedPrefix   = "* "
)

// Classify assigns a BlockKind to a raw line (without its line terminator).
// Rules are checked in order: heading, "- ", "* ", blank, text.
// Every line maps to exactly one kind.
func Classify(line string) BlockKind {
	if level := headingLevel(line); level > 0 {
		return Heading(level)
	}
	switch {
	case strings.HasPrefix(line, unorderedPrefix):
		return UnorderedItem
	case strings.HasPrefix(line, orderedPrefix):
		return OrderedItem
	case isBlankLine(line):
		return Blank
	}
	return Text
}

// headingLevel returns the number of leading '#' when they are followed by
// a space and the count is within 1..MaxHeadingLevel, or 0 otherwise.
func headingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == headingMarker {
		n++
	}
	if n == 0 || n > MaxHeadingLevel || n >= len(line) || line[n] != ' ' {
		return 0
	}
	return n
}

// isBlankLine returns true if the line is empty or contains only whitespace.
func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Content returns the text of a line after its block marker is removed,
// trimmed of surrounding whitespace. Blank lines have no content.
func Content(line string, kind BlockKind) string {
	switch kind.Kind {
	case KindHeading:
		return strings.TrimSpace(line[kind.Level+1:])
	case KindUnorderedItem, KindOrderedItem:
		return strings.TrimSpace(line[2:])
	case KindBlank:
		return ""
	}
	return strings.TrimSpace(line)
}
