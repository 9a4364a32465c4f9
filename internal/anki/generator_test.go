package anki

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"codeberg.org/snonux/eudicnotes/internal/markup"
	"codeberg.org/snonux/eudicnotes/internal/note"
)

func testNote() note.Fields {
	return note.Fields{
		Source:       "Genshin",
		OriginalText: "The wind <carries> stories.",
		WordPhrase:   "wind",
		Notes:        "noun *seed 种子*",
		Tags:         "#Genshin, #Reading",
	}
}

func TestNewGenerator(t *testing.T) {
	gen := NewGenerator(nil)

	if gen.options == nil {
		t.Fatal("Expected default options")
	}
	if gen.options.OutputPath != "eudicnotes_import.csv" || !gen.options.IncludeHeaders {
		t.Errorf("Unexpected default options: %+v", gen.options)
	}
	if len(gen.Cards()) != 0 {
		t.Errorf("Expected no cards, got %d", len(gen.Cards()))
	}
}

func TestAddNote(t *testing.T) {
	gen := NewGenerator(nil)
	rd := markup.NewRenderer(markup.DefaultRegistry())

	if !gen.AddNote(testNote(), rd) {
		t.Fatal("AddNote() rejected a note")
	}
	if gen.AddNote(note.Fields{Tags: " "}, rd) {
		t.Error("AddNote() accepted an empty note")
	}

	cards := gen.Cards()
	if len(cards) != 1 {
		t.Fatalf("Expected 1 card, got %d", len(cards))
	}

	card := cards[0]
	if !strings.Contains(card.Text, `<span class="highlight blue">wind</span>`) {
		t.Errorf("Text misses the highlighted word: %s", card.Text)
	}
	if !strings.Contains(card.Notes, `class="shcut"`) {
		t.Errorf("Notes not rendered: %s", card.Notes)
	}
	if card.Source != "Genshin" {
		t.Errorf("Source = %q", card.Source)
	}
	if card.Note != rd.Render(testNote()) {
		t.Errorf("Note differs from the rendered note")
	}
	if card.Sort != "The wind carries stories." {
		t.Errorf("Sort = %q", card.Sort)
	}
	if !reflect.DeepEqual(card.Tags, []string{"Genshin", "Reading"}) {
		t.Errorf("Tags = %v", card.Tags)
	}
}

func TestAddNoteSortFallsBackToSource(t *testing.T) {
	gen := NewGenerator(nil)
	gen.AddNote(note.Fields{Source: "+Only+ source"}, markup.NewRenderer(nil))

	if got := gen.Cards()[0].Sort; got != "Only source" {
		t.Errorf("Sort = %q, want %q", got, "Only source")
	}
}

func TestGenerateCSV(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "export", "notes.csv")
	gen := NewGenerator(&GeneratorOptions{OutputPath: outputPath, IncludeHeaders: true})
	gen.AddNote(testNote(), markup.NewRenderer(nil))
	gen.AddNote(note.Fields{Source: "S", OriginalText: "O"}, markup.NewRenderer(nil))

	if err := gen.GenerateCSV(); err != nil {
		t.Fatalf("GenerateCSV() error = %v", err)
	}

	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("Failed to open CSV: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d records", len(records))
	}
	if !reflect.DeepEqual(records[0], []string{"Text", "Notes", "Source", "Note", "Tags"}) {
		t.Errorf("Unexpected headers: %v", records[0])
	}
	if records[1][4] != "Genshin Reading" {
		t.Errorf("Tags column = %q", records[1][4])
	}
	if records[2][1] != "" {
		t.Errorf("Expected empty notes column, got %q", records[2][1])
	}
}

func TestGenerateCSVWithoutHeaders(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "notes.csv")
	gen := NewGenerator(&GeneratorOptions{OutputPath: outputPath})
	gen.AddCard(Card{Text: "t", Sort: "t"})

	if err := gen.GenerateCSV(); err != nil {
		t.Fatalf("GenerateCSV() error = %v", err)
	}

	data, _ := os.ReadFile(outputPath)
	if strings.HasPrefix(string(data), "Text,") {
		t.Errorf("Headers written although disabled:\n%s", data)
	}
}

func TestStats(t *testing.T) {
	gen := NewGenerator(nil)
	gen.AddCard(Card{Text: "a", Notes: "n", Tags: []string{"x"}})
	gen.AddCard(Card{Text: "b"})
	gen.AddCard(Card{Text: "c", Tags: []string{"y"}})

	total, withNotes, withTags := gen.Stats()
	if total != 3 || withNotes != 1 || withTags != 2 {
		t.Errorf("Stats() = %d, %d, %d, want 3, 1, 2", total, withNotes, withTags)
	}
}
