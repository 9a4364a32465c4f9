// Package passage cleans up text pasted from reading apps before it is
// used as the original text of a note.
package passage

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Replacement is a literal substitution applied before trimming
type Replacement struct {
	From string `mapstructure:"from" yaml:"from"`
	To   string `mapstructure:"to" yaml:"to"`
}

// Trim normalises input to NFC, applies the replacements in order, trims
// every line, drops empty lines and joins the rest with a blank line.
func Trim(input string, replacements []Replacement) string {
	text := norm.NFC.String(input)
	text = strings.ReplaceAll(text, "\r\n", "\n")

	for _, r := range replacements {
		if r.From == "" {
			continue
		}
		text = strings.ReplaceAll(text, r.From, r.To)
	}

	var paragraphs []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paragraphs = append(paragraphs, line)
		}
	}

	return strings.Join(paragraphs, "\n\n")
}
