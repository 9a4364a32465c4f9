package markup

import (
	"regexp"

	"codeberg.org/snonux/eudicnotes/internal/note"
)

var baseLabels = []*regexp.Regexp{
	regexp.MustCompile(`\+([^+]+)\+`),
	regexp.MustCompile(`<([^<>]+)>`),
	regexp.MustCompile(`\[([^\]]+)\]`),
}

// StripLabels reverts the blue, red and green base labels to their inner
// text. Other delimiters are left alone.
func StripLabels(text string) string {
	for _, re := range baseLabels {
		text = re.ReplaceAllString(text, "$1")
	}
	return text
}

// ClearLabels drops the word phrase and strips the base labels from the
// original text.
func ClearLabels(f note.Fields) note.Fields {
	f.WordPhrase = ""
	f.OriginalText = StripLabels(f.OriginalText)
	return f
}
