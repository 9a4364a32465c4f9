package history

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Keys of the input histories
const (
	KeySourceHistory     = "SourceHistory"
	KeyWordPhraseHistory = "WordPhraseHistory"
	KeyTagsHistory       = "TagsHistory"
)

// DefaultInputLimit is the number of entries an input history keeps
const DefaultInputLimit = 30

// InputHistory is a bounded list of distinct recent entries for one input,
// newest first.
type InputHistory struct {
	store   Store
	key     string
	limit   int
	entries []string
}

// NewInputHistory loads the history stored under key. A limit below one
// means DefaultInputLimit.
func NewInputHistory(store Store, key string, limit int) (*InputHistory, error) {
	if limit < 1 {
		limit = DefaultInputLimit
	}

	entries, err := store.Load(key)
	if err != nil {
		return nil, err
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}

	return &InputHistory{store: store, key: key, limit: limit, entries: entries}, nil
}

// Add records entry as the newest one. Blank and already known entries are
// ignored.
func (h *InputHistory) Add(entry string) error {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return nil
	}
	for _, e := range h.entries {
		if e == entry {
			return nil
		}
	}

	entries := append([]string{entry}, h.entries...)
	if len(entries) > h.limit {
		entries = entries[:h.limit]
	}

	if err := h.store.Save(h.key, entries); err != nil {
		return fmt.Errorf("failed to save %s: %w", h.key, err)
	}
	h.entries = entries

	return nil
}

// Entries returns the entries, newest first
func (h *InputHistory) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Search returns the entries fuzzy-matching query, best match first. An
// empty query returns all entries.
func (h *InputHistory) Search(query string) []string {
	if strings.TrimSpace(query) == "" {
		return h.Entries()
	}

	matches := fuzzy.Find(query, h.entries)
	results := make([]string, 0, len(matches))
	for _, m := range matches {
		results = append(results, m.Str)
	}

	return results
}
