package pipeline

import (
	"strconv"
	"strings"
)

// lineBreak separates the lines of a paragraph.
const lineBreak = "<br/>"

// Render serializes a document to HTML. Each element and each block
// wrapper tag is written on its own line:
//
//	<h1>Title</h1>
//	<ul>
//	<li>a</li>
//	</ul>
//	<p>
//	Line1
//	<br/>
//	Line2
//	</p>
//
// An empty document renders to the empty string.
func Render(doc Document) string {
	var b strings.Builder
	for _, block := range doc.Blocks {
		renderBlock(&b, block)
	}
	return b.String()
}

func renderBlock(b *strings.Builder, block Block) {
	switch block.Kind.Kind {
	case KindHeading:
		tag := "h" + strconv.Itoa(block.Kind.Level)
		for _, item := range block.Items {
			writeElement(b, tag, item)
		}
	case KindUnorderedItem:
		renderList(b, "ul", block.Items)
	case KindOrderedItem:
		renderList(b, "ol", block.Items)
	case KindText:
		renderParagraph(b, block.Items)
	}
}

func renderList(b *strings.Builder, tag string, items []string) {
	b.WriteString("<" + tag + ">\n")
	for _, item := range items {
		writeElement(b, "li", item)
	}
	b.WriteString("</" + tag + ">\n")
}

func renderParagraph(b *strings.Builder, items []string) {
	b.WriteString("<p>\n")
	for i, item := range items {
		if i > 0 {
			b.WriteString(lineBreak + "\n")
		}
		b.WriteString(item)
		b.WriteByte('\n')
	}
	b.WriteString("</p>\n")
}

func writeElement(b *strings.Builder, tag, content string) {
	b.WriteString("<" + tag + ">")
	b.WriteString(content)
	b.WriteString("</" + tag + ">\n")
}

// ConvertString runs the whole engine on in-memory Markdown text.
func ConvertString(content string) string {
	return Render(Aggregate(SplitLines(content)))
}
