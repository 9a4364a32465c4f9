package note

import "strings"

// Map keys used when a note is stored as a dictionary
const (
	KeySource       = "source"
	KeyOriginalText = "originalText"
	KeyWordPhrase   = "wordPhrase"
	KeyNotes        = "notes"
	KeyTags         = "tags"
)

// Fields represents a single study note. The zero value is a valid, empty
// note; an empty string always means "section omitted".
type Fields struct {
	Source       string `json:"source" yaml:"source"`
	OriginalText string `json:"originalText" yaml:"originalText"`
	WordPhrase   string `json:"wordPhrase" yaml:"wordPhrase"`
	Notes        string `json:"notes" yaml:"notes"`
	Tags         string `json:"tags" yaml:"tags"`
}

// FromMap builds Fields from a dictionary. Missing keys become empty strings.
func FromMap(m map[string]string) Fields {
	return Fields{
		Source:       m[KeySource],
		OriginalText: m[KeyOriginalText],
		WordPhrase:   m[KeyWordPhrase],
		Notes:        m[KeyNotes],
		Tags:         m[KeyTags],
	}
}

// ToMap returns the dictionary form of the note
func (f Fields) ToMap() map[string]string {
	return map[string]string{
		KeySource:       f.Source,
		KeyOriginalText: f.OriginalText,
		KeyWordPhrase:   f.WordPhrase,
		KeyNotes:        f.Notes,
		KeyTags:         f.Tags,
	}
}

// IsEmpty reports whether every field is blank
func (f Fields) IsEmpty() bool {
	for _, v := range []string{f.Source, f.OriginalText, f.WordPhrase, f.Notes, f.Tags} {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Clear resets all fields
func (f *Fields) Clear() {
	*f = Fields{}
}

// Summary returns a one-line description of the note for listings
func (f Fields) Summary(width int) string {
	text := f.Source
	if text == "" {
		text = f.OriginalText
	}
	text = strings.Join(strings.Fields(text), " ")

	runes := []rune(text)
	if width > 3 && len(runes) > width {
		return string(runes[:width-3]) + "..."
	}
	return text
}
