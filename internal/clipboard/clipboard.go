// Package clipboard gives the note commands access to the system clipboard
// and provides an in-memory stand-in for tests and headless use.
package clipboard

import (
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard reads and writes plain text
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// System is the desktop clipboard
type System struct{}

// NewSystem returns the desktop clipboard
func NewSystem() *System {
	return &System{}
}

// Available reports whether a clipboard utility was found
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// ReadText returns the clipboard content; an empty clipboard reads as ""
func (s *System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", fmt.Errorf("failed to read clipboard: no clipboard utility available")
	}

	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}

	return text, nil
}

// WriteText replaces the clipboard content
func (s *System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("failed to write clipboard: no clipboard utility available")
	}

	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}

	return nil
}

// Memory keeps clipboard text in process
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
}

// NewMemory returns an in-memory clipboard holding text
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

// ReadText returns the stored text
func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.text, nil
}

// WriteText stores text
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.text = text
	m.writes++
	return nil
}

// Writes returns how often WriteText was called
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.writes
}
