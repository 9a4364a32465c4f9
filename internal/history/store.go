package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// Store keeps ordered lists of strings under a key
type Store interface {
	Load(key string) ([]string, error)
	Save(key string, values []string) error
	Close() error
}

// SQLiteStore is a Store backed by a SQLite database file
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the history database at path
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	query := `CREATE TABLE IF NOT EXISTS history (
		key text NOT NULL,
		position integer NOT NULL,
		value text NOT NULL,
		PRIMARY KEY (key, position)
	)`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load returns the values stored under key in their saved order
func (s *SQLiteStore) Load(key string) ([]string, error) {
	rows, err := s.db.Query(`SELECT value FROM history WHERE key = ? ORDER BY position`, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load history %q: %w", key, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to read history %q: %w", key, err)
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history %q: %w", key, err)
	}

	return values, nil
}

// Save replaces the values under key in one transaction
func (s *SQLiteStore) Save(key string, values []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM history WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to clear history %q: %w", key, err)
	}

	for i, v := range values {
		if _, err := tx.Exec(`INSERT INTO history (key, position, value) VALUES (?, ?, ?)`, key, i, v); err != nil {
			return fmt.Errorf("failed to save history %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit history %q: %w", key, err)
	}

	return nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// MemoryStore is a Store that lives in process memory
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]string
}

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]string)}
}

func (m *MemoryStore) Load(key string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.data[key]...), nil
}

func (m *MemoryStore) Save(key string, values []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = append([]string(nil), values...)
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
