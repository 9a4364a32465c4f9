package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"codeberg.org/snonux/eudicnotes/internal/note"
)

// notesFile is the YAML batch layout, the same one history export writes
type notesFile struct {
	Notes []note.Fields `yaml:"notes"`
}

// ReadNotesFile reads the notes of a batch file.
// Supports formats:
//   - composed notes: one or more "[Source] ... [Original Text] ..." blocks,
//     parsed with rec (nil means the default recognizer)
//   - YAML (.yaml, .yml): a "notes:" list of fields
//
// Empty notes are skipped.
func ReadNotesFile(filename string, rec *note.Recognizer) ([]note.Fields, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return parseYAML(content)
	default:
		return ParseNotes(string(content), rec), nil
	}
}

// ParseNotes splits text holding composed notes and recognizes each of them
func ParseNotes(text string, rec *note.Recognizer) []note.Fields {
	if rec == nil {
		rec = note.NewRecognizer(note.TagsAll)
	}

	var entries []note.Fields
	for _, chunk := range note.Split(strings.ReplaceAll(text, "\r\n", "\n")) {
		if f := rec.Recognize(chunk); !f.IsEmpty() {
			entries = append(entries, f)
		}
	}

	return entries
}

func parseYAML(content []byte) ([]note.Fields, error) {
	var file notesFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}

	var entries []note.Fields
	for _, f := range file.Notes {
		if !f.IsEmpty() {
			entries = append(entries, f)
		}
	}

	return entries, nil
}
