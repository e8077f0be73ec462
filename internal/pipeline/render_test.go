package pipeline

// Notes:
// - Render/ConvertString: we test the exact output of every block kind and
//   of mixed documents, plus determinism.
// - checkBalanced tokenizes output with x/net/html to verify every opened
//   element is closed in order.
// These are acceptable gaps: the HTML is not validated against a DTD.

import (
	"errors"
	"io"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// ---------------------------------------------------------------------------
// TestConvertString - End-to-end engine output
// ---------------------------------------------------------------------------

func TestConvertString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"heading", "# Title\n", "<h1>Title</h1>\n"},
		{"h6", "###### Small\n", "<h6>Small</h6>\n"},
		{"seven hashes paragraph", "####### x\n", "<p>\n####### x\n</p>\n"},
		{"unordered list", "- a\n- b\n", "<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n"},
		{"ordered list", "* a\n* b\n", "<ol>\n<li>a</li>\n<li>b</li>\n</ol>\n"},
		{"paragraph joined by break", "Line1\nLine2\n", "<p>\nLine1\n<br/>\nLine2\n</p>\n"},
		{"blank separates paragraphs", "a\n\nb\n", "<p>\na\n</p>\n<p>\nb\n</p>\n"},
		{"blank only", "\n\n", ""},
		{"no trailing newline", "# T", "<h1>T</h1>\n"},
		{
			name:  "mixed document",
			input: "# Title\n\n- **one**\n- __two__\n\n* [[abc]]\n* ((cab))\n\nHello\nthere\n",
			want: "<h1>Title</h1>\n" +
				"<ul>\n<li><b>one</b></li>\n<li><em>two</em></li>\n</ul>\n" +
				"<ol>\n<li>900150983cd24fb0d6963f7d28e17f72</li>\n<li>ab</li>\n</ol>\n" +
				"<p>\nHello\n<br/>\nthere\n</p>\n",
		},
		{
			name:  "adjacent blocks without blank lines",
			input: "# H\ntext\n- a\n* b\n## H2\n",
			want: "<h1>H</h1>\n<p>\ntext\n</p>\n<ul>\n<li>a</li>\n</ul>\n" +
				"<ol>\n<li>b</li>\n</ol>\n<h2>H2</h2>\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ConvertString(tt.input)
			if got != tt.want {
				t.Errorf("ConvertString(%q)\n got: %q\nwant: %q", tt.input, got, tt.want)
			}
			if err := checkBalanced(got); err != nil {
				t.Errorf("output not balanced: %v\n%s", err, got)
			}
		})
	}
}

func TestConvertString_Deterministic(t *testing.T) {
	t.Parallel()

	input := "# A\n- [[x]]\n- ((Cc))\npara **b**\n"
	first := ConvertString(input)
	for i := 0; i < 5; i++ {
		if got := ConvertString(input); got != first {
			t.Fatalf("run %d differs:\n%q\n%q", i, got, first)
		}
	}
}

func TestRender_EmptyDocument(t *testing.T) {
	t.Parallel()

	if got := Render(Document{}); got != "" {
		t.Errorf("Render(empty) = %q, want empty", got)
	}
}

// checkBalanced verifies that start and end tags in s nest properly.
// Void elements (br) are ignored.
func checkBalanced(s string) error {
	z := html.NewTokenizer(strings.NewReader(s))
	var stack []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				if len(stack) > 0 {
					return errors.New("unclosed " + strings.Join(stack, ","))
				}
				return nil
			}
			return z.Err()
		case html.StartTagToken:
			name, _ := z.TagName()
			stack = append(stack, string(name))
		case html.EndTagToken:
			name, _ := z.TagName()
			if len(stack) == 0 || stack[len(stack)-1] != string(name) {
				return errors.New("unexpected </" + string(name) + ">")
			}
			stack = stack[:len(stack)-1]
		}
	}
}
