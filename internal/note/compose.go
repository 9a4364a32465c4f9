package note

import "strings"

// Section markers of a composed note
const (
	MarkerSource       = "[Source]"
	MarkerOriginalText = "[Original Text]"
	MarkerNotes        = "[Notes]"
)

// Compose builds the plain, section-labeled text of a note:
//
//	[Source] <source>
//
//	[Original Text]
//
//	<original text>
//
//	[Notes] <notes>
//
//	<tags>
//
// The notes and tags sections are omitted when empty or blank. Fields are written
// verbatim; word highlighting is the renderer's job.
func Compose(f Fields) string {
	var b strings.Builder

	b.WriteString(MarkerSource)
	b.WriteString(" ")
	b.WriteString(f.Source)
	b.WriteString("\n\n")
	b.WriteString(MarkerOriginalText)
	b.WriteString("\n\n")
	b.WriteString(f.OriginalText)

	if strings.TrimSpace(f.Notes) != "" {
		b.WriteString("\n\n")
		b.WriteString(MarkerNotes)
		b.WriteString(" ")
		b.WriteString(f.Notes)
	}

	if strings.TrimSpace(f.Tags) != "" {
		b.WriteString("\n\n")
		b.WriteString(f.Tags)
	}

	return b.String()
}

// Split cuts text holding several composed notes into one chunk per note.
// Every chunk starts at a [Source] marker and runs up to the next one; text
// before the first marker is ignored and blank chunks are dropped.
func Split(combined string) []string {
	var chunks []string

	rest := combined
	start := strings.Index(rest, MarkerSource)
	for start >= 0 {
		rest = rest[start:]
		next := strings.Index(rest[len(MarkerSource):], MarkerSource)

		var chunk string
		if next < 0 {
			chunk = rest
			start = -1
		} else {
			end := len(MarkerSource) + next
			chunk = rest[:end]
			rest = rest[end:]
			start = 0
		}

		if chunk = strings.TrimSpace(chunk); chunk != "" {
			chunks = append(chunks, chunk)
		}
	}

	return chunks
}
