package pipeline

import (
	"crypto/md5" // #nosec G501 -- content fingerprint, not a security boundary
	"encoding/hex"
	"strings"
)

// spanKind identifies how the content of an inline span is rewritten.
type spanKind int

const (
	spanBold spanKind = iota
	spanEmphasis
	spanDigest
	spanStrip
)

// span describes one inline delimiter pair.
type span struct {
	kind  spanKind
	open  string
	close string
}

// spans lists the recognized inline spans in match priority order. All
// delimiters are two bytes wide, so a single pass can test each position.
var spans = [...]span{
	{kind: spanBold, open: "**", close: "**"},
	{kind: spanEmphasis, open: "__", close: "__"},
	{kind: spanDigest, open: "[[", close: "]]"},
	{kind: spanStrip, open: "((", close: "))"},
}

// rewrite returns the replacement for a span holding content.
// Bold and emphasis transform their content so other span types nest inside;
// digest and strip operate on the raw content.
func (sp span) rewrite(content string) string {
	switch sp.kind {
	case spanBold:
		return "<b>" + Transform(content) + "</b>"
	case spanEmphasis:
		return "<em>" + Transform(content) + "</em>"
	case spanDigest:
		return Digest(content)
	case spanStrip:
		return StripC(content)
	}
	return content
}

// Transform rewrites the inline spans of a single line of text:
//
//	**bold**   -> <b>bold</b>
//	__emph__   -> <em>emph</em>
//	[[text]]   -> lowercase hex MD5 digest of text
//	((text))   -> text with every 'c' and 'C' removed
//
// The line is scanned left to right. At each position the first delimiter
// that has a matching closer later in the line wins; an opener without a
// closer is copied literally and scanning continues after it. Text outside
// any span passes through unchanged.
func Transform(text string) string {
	if !strings.ContainsAny(text, "*_[(") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		sp, end, ok := matchSpan(text, i)
		if !ok {
			b.WriteByte(text[i])
			i++
			continue
		}
		content := text[i+len(sp.open) : end]
		b.WriteString(sp.rewrite(content))
		i = end + len(sp.close)
	}

	return b.String()
}

// matchSpan reports the span opening at position i and the index of its
// closing delimiter. Unterminated openers do not match.
func matchSpan(text string, i int) (span, int, bool) {
	for _, sp := range spans {
		if !strings.HasPrefix(text[i:], sp.open) {
			continue
		}
		start := i + len(sp.open)
		rel := strings.Index(text[start:], sp.close)
		if rel < 0 {
			continue
		}
		return sp, start + rel, true
	}
	return span{}, 0, false
}

// Digest returns the lowercase hexadecimal MD5 digest of s.
func Digest(s string) string {
	sum := md5.Sum([]byte(s)) // #nosec G401 -- fixed output format
	return hex.EncodeToString(sum[:])
}

// cRemover deletes both cases of the letter c.
var cRemover = strings.NewReplacer("c", "", "C", "")

// StripC returns s with every 'c' and 'C' removed.
func StripC(s string) string {
	return cRemover.Replace(s)
}
