package preview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPage(t *testing.T) {
	page := Page("Notes <1>", []string{`<span class="note">one</span>`, " ", "two"})

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<meta charset="utf-8">`,
		"<title>Notes &lt;1&gt;</title>",
		"white-space: pre-wrap",
		".highlight.red {",
		`<div class="preview"><span class="note">one</span></div>`,
		`<div class="preview">two</div>`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("Page() misses %q", want)
		}
	}

	if n := strings.Count(page, `<div class="preview">`); n != 2 {
		t.Errorf("Page() has %d note blocks, want 2", n)
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "preview.html")

	if err := Write(path, "t", []string{"x"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), `<div class="preview">x</div>`) {
		t.Errorf("written page misses the note:\n%s", data)
	}
}
