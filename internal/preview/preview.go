// Package preview writes rendered notes into a standalone HTML page that
// can be opened in any browser.
package preview

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/eudicnotes/internal/markup"
)

// Page builds an HTML document showing each rendered note. Class names are
// styled with the default registry's stylesheet.
func Page(title string, rendered []string) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	b.WriteString("<style>\n")
	b.WriteString("body { max-width: 48em; margin: 2em auto; padding: 0 1em; }\n")
	b.WriteString(".preview { white-space: pre-wrap; margin-bottom: 2em; }\n")
	b.WriteString(markup.DefaultRegistry().Stylesheet())
	b.WriteString("</style>\n</head>\n<body>\n")

	for _, r := range rendered {
		if strings.TrimSpace(r) == "" {
			continue
		}
		b.WriteString("<div class=\"preview\">")
		b.WriteString(r)
		b.WriteString("</div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// Write stores the page at path, creating parent directories
func Write(path, title string, rendered []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create preview directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(Page(title, rendered)), 0644); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}

	return nil
}
