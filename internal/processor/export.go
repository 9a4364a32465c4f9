package processor

import (
	"errors"
	"fmt"

	"codeberg.org/snonux/eudicnotes/internal"
	"codeberg.org/snonux/eudicnotes/internal/anki"
	"codeberg.org/snonux/eudicnotes/internal/archive"
	"codeberg.org/snonux/eudicnotes/internal/batch"
	"codeberg.org/snonux/eudicnotes/internal/note"
)

// Export writes the saved notes, or the notes of the batch file, to an Anki
// package or CSV file and returns the output path.
func (p *Processor) Export() (string, error) {
	notes, err := p.exportNotes()
	if err != nil {
		return "", err
	}
	if len(notes) == 0 {
		return "", errors.New("no notes to export")
	}

	deckName := p.deckName()
	outputPath := p.flags.Output
	if outputPath == "" {
		ext := ".apkg"
		if p.flags.CSV {
			ext = ".csv"
		}
		outputPath = internal.SanitizeFilename(deckName) + ext
	}

	gen := anki.NewGenerator(&anki.GeneratorOptions{
		OutputPath:     outputPath,
		IncludeHeaders: true,
	})

	rd := p.renderer()
	for _, f := range notes {
		if !gen.AddNote(f, rd) {
			p.debugf("Skipping empty note")
		}
	}

	if p.flags.CSV {
		if err := gen.GenerateCSV(); err != nil {
			return "", fmt.Errorf("failed to generate CSV: %w", err)
		}
		fmt.Fprintf(p.out, "CSV file created: %s\n", outputPath)
	} else {
		if err := gen.GenerateAPKG(outputPath, deckName); err != nil {
			return "", fmt.Errorf("failed to generate APKG: %w", err)
		}
		fmt.Fprintf(p.out, "Anki package created: %s\n", outputPath)
	}

	total, withNotes, withTags := gen.Stats()
	fmt.Fprintf(p.out, "  Generated %d cards (%d with notes, %d with tags)\n", total, withNotes, withTags)

	return outputPath, nil
}

func (p *Processor) exportNotes() ([]note.Fields, error) {
	if p.flags.BatchFile != "" {
		p.debugf("Reading notes from %s", p.flags.BatchFile)
		return batch.ReadNotesFile(p.flags.BatchFile, p.recognizer())
	}

	nh, err := p.noteHistory()
	if err != nil {
		return nil, err
	}
	return nh.Entries(), nil
}

// Archive moves the history database into the archive directory
func (p *Processor) Archive() (string, error) {
	if err := p.Close(); err != nil {
		return "", fmt.Errorf("failed to close history database: %w", err)
	}
	return archive.ArchiveDatabase(p.dbPath())
}
