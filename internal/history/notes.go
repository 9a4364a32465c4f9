package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"

	"codeberg.org/snonux/eudicnotes/internal/note"
)

// KeyNoteData is the store key of the note history
const KeyNoteData = "NoteDataHistory"

// DefaultNoteLimit is the number of notes kept
const DefaultNoteLimit = 10

// ErrOutOfRange is returned when navigation leaves the history
var ErrOutOfRange = errors.New("history index out of range")

// NoteHistory is the bounded list of saved notes, oldest first, with a
// cursor for stepping back and forth.
type NoteHistory struct {
	store   Store
	limit   int
	entries []note.Fields
	current int
	skipped int
}

// Match is a note found by Search
type Match struct {
	Index  int
	Fields note.Fields
}

// exportFile is the YAML layout of Export and Import
type exportFile struct {
	Notes []note.Fields `yaml:"notes"`
}

// NewNoteHistory loads the saved notes. Entries that cannot be decoded are
// skipped and counted in Skipped. A limit below one means DefaultNoteLimit.
func NewNoteHistory(store Store, limit int) (*NoteHistory, error) {
	if limit < 1 {
		limit = DefaultNoteLimit
	}

	raw, err := store.Load(KeyNoteData)
	if err != nil {
		return nil, err
	}

	h := &NoteHistory{store: store, limit: limit}
	for _, r := range raw {
		var f note.Fields
		if err := json.Unmarshal([]byte(r), &f); err != nil {
			h.skipped++
			continue
		}
		h.entries = append(h.entries, f)
	}
	if len(h.entries) > limit {
		h.entries = h.entries[len(h.entries)-limit:]
	}
	h.current = len(h.entries) - 1

	return h, nil
}

// Save appends f as the newest note and moves the cursor to it. Empty
// notes and repeats of the newest note are not stored.
func (h *NoteHistory) Save(f note.Fields) error {
	if f.IsEmpty() {
		return nil
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == f {
		h.current = n - 1
		return nil
	}

	entries := append(append([]note.Fields(nil), h.entries...), f)
	if len(entries) > h.limit {
		entries = entries[len(entries)-h.limit:]
	}

	if err := h.persist(entries); err != nil {
		return err
	}
	h.current = len(h.entries) - 1

	return nil
}

// Delete removes the note at index i
func (h *NoteHistory) Delete(i int) error {
	if i < 0 || i >= len(h.entries) {
		return ErrOutOfRange
	}

	entries := append(append([]note.Fields(nil), h.entries[:i]...), h.entries[i+1:]...)
	if err := h.persist(entries); err != nil {
		return err
	}

	if h.current >= i && h.current > 0 {
		h.current--
	}
	if h.current >= len(h.entries) {
		h.current = len(h.entries) - 1
	}

	return nil
}

// Load moves the cursor to index i and returns that note
func (h *NoteHistory) Load(i int) (note.Fields, error) {
	if i < 0 || i >= len(h.entries) {
		return note.Fields{}, ErrOutOfRange
	}
	h.current = i
	return h.entries[i], nil
}

// Previous steps the cursor to the next older note
func (h *NoteHistory) Previous() (note.Fields, error) {
	return h.Load(h.current - 1)
}

// Next steps the cursor to the next newer note
func (h *NoteHistory) Next() (note.Fields, error) {
	return h.Load(h.current + 1)
}

// Latest moves the cursor to the newest note
func (h *NoteHistory) Latest() (note.Fields, error) {
	return h.Load(len(h.entries) - 1)
}

// Current returns the cursor position, -1 when the history is empty
func (h *NoteHistory) Current() int {
	return h.current
}

// Skipped returns how many stored entries could not be decoded on load
func (h *NoteHistory) Skipped() int {
	return h.skipped
}

func (h *NoteHistory) Len() int {
	return len(h.entries)
}

// Entries returns the notes, oldest first
func (h *NoteHistory) Entries() []note.Fields {
	return append([]note.Fields(nil), h.entries...)
}

// Search fuzzy-matches query against the text of every note, best match
// first.
func (h *NoteHistory) Search(query string) []Match {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	targets := make([]string, len(h.entries))
	for i, f := range h.entries {
		targets[i] = strings.Join([]string{f.Source, f.OriginalText, f.Notes, f.Tags}, " ")
	}

	found := fuzzy.Find(query, targets)
	matches := make([]Match, 0, len(found))
	for _, m := range found {
		matches = append(matches, Match{Index: m.Index, Fields: h.entries[m.Index]})
	}

	return matches
}

// Export writes all notes as YAML
func (h *NoteHistory) Export(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(exportFile{Notes: h.entries}); err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	return enc.Close()
}

// Import appends the notes of a YAML export and returns how many were
// added. The limit still applies, so older notes may drop out.
func (h *NoteHistory) Import(r io.Reader) (int, error) {
	var file exportFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("failed to decode history: %w", err)
	}

	entries := append([]note.Fields(nil), h.entries...)
	added := 0
	for _, f := range file.Notes {
		if f.IsEmpty() {
			continue
		}
		entries = append(entries, f)
		added++
	}
	if added == 0 {
		return 0, nil
	}
	if len(entries) > h.limit {
		entries = entries[len(entries)-h.limit:]
	}

	if err := h.persist(entries); err != nil {
		return 0, err
	}
	h.current = len(h.entries) - 1

	return added, nil
}

// persist saves entries and makes them the in-memory state
func (h *NoteHistory) persist(entries []note.Fields) error {
	raw := make([]string, len(entries))
	for i, f := range entries {
		data, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("failed to encode note: %w", err)
		}
		raw[i] = string(data)
	}

	if err := h.store.Save(KeyNoteData, raw); err != nil {
		return fmt.Errorf("failed to save note history: %w", err)
	}
	h.entries = entries

	return nil
}
