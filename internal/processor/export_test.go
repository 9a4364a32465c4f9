package processor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/eudicnotes/internal/cli"
	"codeberg.org/snonux/eudicnotes/internal/testutil"
)

func TestExport(t *testing.T) {
	tests := []struct {
		name     string
		csv      bool
		wantFile string
		wantOut  string
	}{
		{"apkg", false, "notes.apkg", "Anki package created"},
		{"csv", true, "notes.csv", "CSV file created"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := cli.NewFlags()
			flags.CSV = tt.csv
			flags.Output = filepath.Join(t.TempDir(), tt.wantFile)

			p, store, _, out, _ := newTestProcessor(t, flags)
			seedHistory(t, store)

			path, err := p.Export()
			if err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			if path != flags.Output {
				t.Errorf("Export() path = %s, want %s", path, flags.Output)
			}

			testutil.AssertFileExists(t, path)
			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("output misses %q: %s", tt.wantOut, out.String())
			}
			if !strings.Contains(out.String(), "Generated 3 cards (2 with notes, 3 with tags)") {
				t.Errorf("unexpected stats: %s", out.String())
			}
		})
	}
}

func TestExportBatchFile(t *testing.T) {
	dir := t.TempDir()

	flags := cli.NewFlags()
	flags.CSV = true
	flags.Output = filepath.Join(dir, "batch.csv")
	flags.BatchFile = writeInput(t, dir, "notes.txt",
		"[Source] A\n\n[Original Text]\n\n<one>\n\n#x\n[Source] B\n\n[Original Text]\n\ntwo")

	p, store, _, _, _ := newTestProcessor(t, flags)

	if _, err := p.Export(); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	testutil.AssertFileContains(t, flags.Output, `<span class=""highlight red"">one</span>`)
	if len(store.Calls) != 0 {
		t.Errorf("batch export touched the history: %v", store.Calls)
	}
}

func TestExportDefaultPath(t *testing.T) {
	flags := cli.NewFlags()
	flags.CSV = true
	flags.DeckName = "My Deck"
	gen := &testutil.TestDataGenerator{}
	flags.BatchFile = testutil.CreateNotesFile(t, t.TempDir(), gen.GenerateNotes())

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	p, _, _, _, _ := newTestProcessor(t, flags)
	path, err := p.Export()
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if path != "My_Deck.csv" {
		t.Errorf("Export() path = %s, want My_Deck.csv", path)
	}
}

func TestExportNothing(t *testing.T) {
	p, _, _, _, _ := newTestProcessor(t, cli.NewFlags())

	if _, err := p.Export(); err == nil {
		t.Error("Expected error for an empty history")
	}
}
