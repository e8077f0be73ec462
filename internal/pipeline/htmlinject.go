package pipeline

import "strings"

// Stylesheeter is implemented by converters whose output needs a stylesheet
// to display correctly in a standalone document.
type Stylesheeter interface {
	Stylesheet() (string, error)
}

// InjectCSS inserts css as a <style> block into an HTML document.
// Tries </head> first, then after <body>, then prepends to the document.
// Empty css leaves the document unchanged.
func InjectCSS(htmlContent, css string) string {
	if strings.TrimSpace(css) == "" {
		return htmlContent
	}

	styleBlock := "<style>\n" + sanitizeCSS(strings.TrimRight(css, "\n")) + "\n</style>\n"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.IndexByte(htmlContent[idx:], '>'); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			if insertPos < len(htmlContent) && htmlContent[insertPos] == '\n' {
				insertPos++
			}
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes "</" so the stylesheet cannot close its <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
