package testutil

import (
	"errors"
	"fmt"

	"codeberg.org/snonux/eudicnotes/internal/note"
)

// ErrMock is returned by mocks configured to fail
var ErrMock = errors.New("mock failure")

// MockClipboard mocks the clipboard for testing
type MockClipboard struct {
	Text     string
	ReadErr  error
	WriteErr error
	Calls    []string
}

// ReadText mocks reading the clipboard
func (m *MockClipboard) ReadText() (string, error) {
	m.Calls = append(m.Calls, "READ")

	if m.ReadErr != nil {
		return "", m.ReadErr
	}
	return m.Text, nil
}

// WriteText mocks writing the clipboard
func (m *MockClipboard) WriteText(text string) error {
	m.Calls = append(m.Calls, fmt.Sprintf("WRITE (%d bytes)", len(text)))

	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Text = text
	return nil
}

// MockStore mocks a history store
type MockStore struct {
	Data    map[string][]string
	LoadErr error
	SaveErr error
	Calls   []string
}

// NewMockStore returns an empty mock store
func NewMockStore() *MockStore {
	return &MockStore{Data: make(map[string][]string)}
}

// Load mocks loading a history list
func (m *MockStore) Load(key string) ([]string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("LOAD %s", key))

	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return append([]string(nil), m.Data[key]...), nil
}

// Save mocks saving a history list
func (m *MockStore) Save(key string, values []string) error {
	m.Calls = append(m.Calls, fmt.Sprintf("SAVE %s (%d values)", key, len(values)))

	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Data[key] = append([]string(nil), values...)
	return nil
}

// Close mocks closing the store
func (m *MockStore) Close() error {
	m.Calls = append(m.Calls, "CLOSE")
	return nil
}

// TestDataGenerator generates test data
type TestDataGenerator struct{}

// GenerateNote returns a fully populated note
func (g *TestDataGenerator) GenerateNote() note.Fields {
	return note.Fields{
		Source:       "Genshin Impact > Liyue",
		OriginalText: "Rex Lapis <descended> to [Liyue] and the wind carried his words.",
		WordPhrase:   "wind",
		Notes:        "noun *seed 种子* @carry sth, carry on@",
		Tags:         "#Genshin, #Reading",
	}
}

// GenerateNotes returns a few distinct notes
func (g *TestDataGenerator) GenerateNotes() []note.Fields {
	return []note.Fields{
		g.GenerateNote(),
		{Source: "The Economist", OriginalText: "Inflation +eased+ in March.", Tags: "#News"},
		{Source: "原神", OriginalText: "风带来故事的种子，时间使之发芽。", Notes: "&seed 种子&", Tags: "#中文"},
	}
}
