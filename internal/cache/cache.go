// Package cache provides a file-backed store for HTTP responses with
// time-based expiry, and a RoundTripper that consults it transparently.
package cache

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultPath is where Open creates the cache when no override is set.
const DefaultPath = ".cache"

// Store caches HTTP response bodies keyed by request signature.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the cache database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache %s: %w", path, err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}

	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS responses (
		key TEXT PRIMARY KEY,
		body BLOB NOT NULL,
		expires_at INTEGER NOT NULL
	)`)
	return err
}

// Get returns the cached body for key if present and unexpired.
// Expired entries are misses and are dropped so the file does not grow.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var body []byte
	var expiresAt int64
	err := s.db.QueryRow(
		"SELECT body, expires_at FROM responses WHERE key = ?", key,
	).Scan(&body, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if time.Now().Unix() >= expiresAt {
		_, _ = s.db.Exec("DELETE FROM responses WHERE key = ?", key)
		return nil, false, nil
	}

	return body, true, nil
}

// Set stores body under key until ttl elapses.
func (s *Store) Set(key string, body []byte, ttl time.Duration) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO responses (key, body, expires_at) VALUES (?, ?, ?)",
		key, body, time.Now().Add(ttl).Unix(),
	)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
