package anki

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/eudicnotes/internal/markup"
	"codeberg.org/snonux/eudicnotes/internal/note"
)

// Card represents a single Anki note built from a study note
type Card struct {
	Text   string   // rendered original text
	Notes  string   // rendered notes
	Source string   // rendered source
	Note   string   // complete rendered note
	Sort   string   // plain text sort field
	Tags   []string // tags without the leading '#'
}

// GeneratorOptions configures the Anki export
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "eudicnotes_import.csv",
		IncludeHeaders: true,
	}
}

// Generator creates Anki-compatible import files
type Generator struct {
	options *GeneratorOptions
	cards   []Card
}

// NewGenerator creates a new Anki generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// AddNote renders f and adds it as a card. Empty notes are skipped.
func (g *Generator) AddNote(f note.Fields, rd *markup.Renderer) bool {
	if f.IsEmpty() {
		return false
	}

	card := Card{
		Text:   rd.RenderOriginalText(markup.HighlightWord(f.OriginalText, f.WordPhrase)),
		Source: rd.RenderSource(markup.HighlightWord(f.Source, f.WordPhrase)),
		Note:   rd.Render(f),
		Tags:   note.SplitTags(f.Tags),
	}
	if strings.TrimSpace(f.Notes) != "" {
		card.Notes = rd.RenderNotes(f.Notes)
	}

	card.Sort = strings.TrimSpace(markup.PlainText(card.Text))
	if card.Sort == "" {
		card.Sort = strings.TrimSpace(markup.PlainText(card.Source))
	}

	g.AddCard(card)
	return true
}

// Cards returns the collected cards
func (g *Generator) Cards() []Card {
	return g.cards
}

// GenerateCSV creates a CSV file for Anki import
func (g *Generator) GenerateCSV() error {
	if dir := filepath.Dir(g.options.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if g.options.IncludeHeaders {
		headers := []string{"Text", "Notes", "Source", "Note", "Tags"}
		if err := writer.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, card := range g.cards {
		record := []string{
			card.Text,
			card.Notes,
			card.Source,
			card.Note,
			strings.Join(card.Tags, " "),
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}

	return nil
}

// GenerateAPKG creates a proper .apkg file for Anki import
func (g *Generator) GenerateAPKG(outputPath, deckName string) error {
	apkgGen := NewAPKGGenerator(deckName)

	for _, card := range g.cards {
		apkgGen.AddCard(card)
	}

	return apkgGen.GenerateAPKG(outputPath)
}

// Stats returns statistics about the card collection
func (g *Generator) Stats() (totalCards, withNotes, withTags int) {
	totalCards = len(g.cards)

	for _, card := range g.cards {
		if card.Notes != "" {
			withNotes++
		}
		if len(card.Tags) > 0 {
			withTags++
		}
	}

	return
}
