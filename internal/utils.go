package internal

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// StateDir returns the directory holding the history database
func StateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".eudicnotes")
	}
	return filepath.Join(home, ".local", "state", "eudicnotes")
}

// DefaultDBPath returns the default location of the history database
func DefaultDBPath() string {
	return filepath.Join(StateDir(), "history.db")
}
