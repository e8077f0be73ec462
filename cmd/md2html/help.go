package main

import (
	"fmt"
	"io"
)

// usageLine is the short diagnostic printed when arguments are missing.
const usageLine = "Usage: md2html README.md README.html"

// printUsage prints the full help message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html [flags] <input.md> <output.html>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown file to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input     Markdown file to read")
	fmt.Fprintln(w, "  output    HTML file to write (replaced if it exists)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "      --engine <name>   Engine: dialect (default), commonmark")
	fmt.Fprintln(w, "      --standalone      Wrap output in a complete HTML5 document")
	fmt.Fprintln(w, "      --title <s>       Standalone title (default: first # heading)")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
	fmt.Fprintln(w, "  -v, --verbose         Show debug logging")
	fmt.Fprintln(w, "  -h, --help            Show this help")
	fmt.Fprintln(w, "      --version         Show version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Dialect:")
	fmt.Fprintln(w, "  # .. ######  headings      - item  unordered list    * item  ordered list")
	fmt.Fprintln(w, "  **bold**  __emphasis__  [[md5 of text]]  ((text without c/C))")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 success, 1 error, 2 usage or config, 3 file access")
}
