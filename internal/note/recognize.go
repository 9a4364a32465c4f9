package note

import "strings"

// TagMode selects how many tags the recognizer extracts
type TagMode int

const (
	// TagsAll collects every tag after the last section marker and joins
	// them with TagSeparator
	TagsAll TagMode = iota
	// TagsFirst keeps only the first tag
	TagsFirst
)

// String returns the config name of the mode
func (m TagMode) String() string {
	if m == TagsFirst {
		return "first"
	}
	return "all"
}

// ParseTagMode converts a config value into a TagMode. Unknown values fall
// back to TagsAll.
func ParseTagMode(s string) TagMode {
	if strings.EqualFold(strings.TrimSpace(s), "first") {
		return TagsFirst
	}
	return TagsAll
}

// Recognizer parses composed notes back into Fields
type Recognizer struct {
	mode TagMode
}

// NewRecognizer creates a recognizer using the given tag mode
func NewRecognizer(mode TagMode) *Recognizer {
	return &Recognizer{mode: mode}
}

// Recognize parses composed text with the default tag mode
func Recognize(composed string) Fields {
	return NewRecognizer(TagsAll).Recognize(composed)
}

// Recognize extracts the fields of a composed note. It never fails: a
// missing marker leaves the matching field empty. WordPhrase is always empty
// because it is not part of the composed text.
func (r *Recognizer) Recognize(composed string) Fields {
	var f Fields
	tagsFrom := 0

	// [Source] ... [Original Text]
	if start := strings.Index(composed, MarkerSource); start >= 0 {
		body := start + len(MarkerSource)
		if end := strings.Index(composed[body:], MarkerOriginalText); end >= 0 {
			f.Source = strings.TrimSpace(composed[body : body+end])
		}
		tagsFrom = max(tagsFrom, body)
	}

	// [Original Text] ... [Notes] | tag | end
	notesFrom := 0
	if start := strings.Index(composed, MarkerOriginalText); start >= 0 {
		body := start + len(MarkerOriginalText)
		rest := composed[body:]

		end := len(rest)
		if n := strings.Index(rest, MarkerNotes); n >= 0 {
			end = n
		}
		if t := firstTagIndex(rest[:end]); t >= 0 {
			end = t
		}

		f.OriginalText = strings.TrimSpace(rest[:end])
		notesFrom = body
		tagsFrom = max(tagsFrom, body)
	}

	// [Notes] ... tag | end
	if start := strings.Index(composed[notesFrom:], MarkerNotes); start >= 0 {
		body := notesFrom + start + len(MarkerNotes)
		rest := composed[body:]

		end := len(rest)
		if t := firstTagIndex(rest); t >= 0 {
			end = t
		}

		f.Notes = strings.TrimSpace(rest[:end])
		tagsFrom = max(tagsFrom, body)
	}

	f.Tags = r.recognizeTags(composed[tagsFrom:])
	return f
}

func (r *Recognizer) recognizeTags(tail string) string {
	limit := -1
	if r.mode == TagsFirst {
		limit = 1
	}

	var tags []string
	for _, span := range findTags(tail, limit) {
		tags = append(tags, tail[span[0]:span[1]])
	}
	return strings.Join(tags, TagSeparator)
}
