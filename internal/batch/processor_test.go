package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"codeberg.org/snonux/eudicnotes/internal/note"
)

func TestReadNotesFile(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		fileContent string
		mode        note.TagMode
		want        []note.Fields
		wantErr     bool
	}{
		{
			name:        "empty file",
			filename:    "notes.txt",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "no markers",
			filename:    "notes.txt",
			fileContent: "just some text\n",
			want:        nil,
		},
		{
			name:     "two composed notes",
			filename: "notes.txt",
			fileContent: "[Source] Genshin\n\n[Original Text]\n\nThe wind <carries> stories.\n\n[Notes] noun\n\n#Genshin\n" +
				"[Source] Economist\n\n[Original Text]\n\nInflation eased.\n",
			want: []note.Fields{
				{Source: "Genshin", OriginalText: "The wind <carries> stories.", Notes: "noun", Tags: "#Genshin"},
				{Source: "Economist", OriginalText: "Inflation eased."},
			},
		},
		{
			name:        "windows line endings",
			filename:    "notes.txt",
			fileContent: "[Source] S\r\n\r\n[Original Text]\r\n\r\nline one\r\nline two",
			want: []note.Fields{
				{Source: "S", OriginalText: "line one\nline two"},
			},
		},
		{
			name:        "first tag only",
			filename:    "notes.txt",
			fileContent: "[Source] S\n\n[Original Text]\n\nO\n\n#a, #b",
			mode:        note.TagsFirst,
			want: []note.Fields{
				{Source: "S", OriginalText: "O", Tags: "#a"},
			},
		},
		{
			name:     "yaml notes",
			filename: "notes.yaml",
			fileContent: `notes:
  - source: Genshin
    originalText: 风带来故事的种子
    tags: "#原神"
  - source: ""
`,
			want: []note.Fields{
				{Source: "Genshin", OriginalText: "风带来故事的种子", Tags: "#原神"},
			},
		},
		{
			name:        "invalid yaml",
			filename:    "notes.yml",
			fileContent: "notes: [",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := filepath.Join(t.TempDir(), tt.filename)
			if err := os.WriteFile(tmpFile, []byte(tt.fileContent), 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			got, err := ReadNotesFile(tmpFile, note.NewRecognizer(tt.mode))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadNotesFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadNotesFile() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestReadNotesFileMissing(t *testing.T) {
	if _, err := ReadNotesFile(filepath.Join(t.TempDir(), "missing.txt"), nil); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestParseNotesDefaultRecognizer(t *testing.T) {
	got := ParseNotes(note.Compose(note.Fields{Source: "S", OriginalText: "O", Tags: "#a, #b"}), nil)
	want := []note.Fields{{Source: "S", OriginalText: "O", Tags: "#a, #b"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseNotes() = %#v, want %#v", got, want)
	}
}
