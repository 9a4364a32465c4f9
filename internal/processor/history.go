package processor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"codeberg.org/snonux/eudicnotes/internal/history"
	"codeberg.org/snonux/eudicnotes/internal/note"
)

const summaryWidth = 60

// HistoryList prints every saved note with its index, oldest first
func (p *Processor) HistoryList() error {
	nh, err := p.noteHistory()
	if err != nil {
		return err
	}

	if nh.Len() == 0 {
		fmt.Fprintln(p.out, "No saved notes.")
		return nil
	}
	for i, f := range nh.Entries() {
		fmt.Fprintf(p.out, "%3d  %s\n", i, f.Summary(summaryWidth))
	}
	return nil
}

// HistoryShow prints the saved note at index
func (p *Processor) HistoryShow(index string) error {
	i, err := parseIndex(index)
	if err != nil {
		return err
	}

	nh, err := p.noteHistory()
	if err != nil {
		return err
	}

	f, err := nh.Load(i)
	if err != nil {
		return fmt.Errorf("failed to load note %d: %w", i, err)
	}

	fmt.Fprintln(p.out, note.Compose(f))
	if f.WordPhrase != "" {
		fmt.Fprintf(p.out, "\nWord/phrase: %s\n", f.WordPhrase)
	}
	return nil
}

// HistoryDelete removes the saved note at index
func (p *Processor) HistoryDelete(index string) error {
	i, err := parseIndex(index)
	if err != nil {
		return err
	}

	nh, err := p.noteHistory()
	if err != nil {
		return err
	}

	if err := nh.Delete(i); err != nil {
		return fmt.Errorf("failed to delete note %d: %w", i, err)
	}

	fmt.Fprintf(p.out, "Deleted note %d, %d left\n", i, nh.Len())
	return nil
}

// HistorySearch prints the saved notes matching query, best first
func (p *Processor) HistorySearch(query string) error {
	nh, err := p.noteHistory()
	if err != nil {
		return err
	}

	matches := nh.Search(query)
	if len(matches) == 0 {
		fmt.Fprintln(p.out, "No matching notes.")
		return nil
	}
	for _, m := range matches {
		fmt.Fprintf(p.out, "%3d  %s\n", m.Index, m.Fields.Summary(summaryWidth))
	}
	return nil
}

// HistorySources prints the recently used sources, filtered by query when
// given.
func (p *Processor) HistorySources(query string) error {
	ih, err := p.inputHistory(history.KeySourceHistory)
	if err != nil {
		return err
	}

	for _, source := range ih.Search(query) {
		fmt.Fprintln(p.out, source)
	}
	return nil
}

// HistoryExport writes the saved notes as YAML to path, "-" for standard
// output.
func (p *Processor) HistoryExport(path string) error {
	nh, err := p.noteHistory()
	if err != nil {
		return err
	}

	if path == "-" {
		return nh.Export(p.out)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	if err := nh.Export(file); err != nil {
		return err
	}

	fmt.Fprintf(p.out, "Exported %d notes to %s\n", nh.Len(), path)
	return nil
}

// HistoryImport adds the notes of a YAML export, "-" for standard input
func (p *Processor) HistoryImport(path string) error {
	nh, err := p.noteHistory()
	if err != nil {
		return err
	}

	var r io.Reader = p.in
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open import file: %w", err)
		}
		defer file.Close()
		r = file
	}

	n, err := nh.Import(r)
	if err != nil {
		return err
	}

	fmt.Fprintf(p.out, "Imported %d notes, history holds %d\n", n, nh.Len())
	return nil
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid note index %q: %w", s, err)
	}
	return i, nil
}
