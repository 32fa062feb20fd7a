// Package store is a generic durable key-value adapter over the kv_store
// table. Values are JSON documents; reads are fail-open, writes are
// last-writer-wins. There is exactly one writer in this system, so no
// versioning or optimistic concurrency is needed.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// Store wraps a database handle for typed key-value access.
type Store struct {
	db *sql.DB
}

// New creates a Store backed by db. The kv_store table must exist
// (see database.Migrate).
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Read returns the value stored under key, or def when the key is absent
// or the stored document cannot be parsed into T. Absence and corruption
// both mean "not yet initialized"; neither is surfaced as an error.
func Read[T any](s *Store, key string, def T) T {
	var raw string
	err := s.db.QueryRow("SELECT value FROM kv_store WHERE key = ?", key).Scan(&raw)
	if err != nil {
		return def
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return def
	}
	return v
}

// Write serializes v and stores it under key, overwriting any existing
// value unconditionally.
func Write[T any](s *Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize value for key %q: %w", key, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(raw))
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Clear removes the value under key, returning it to "not yet initialized".
// Clearing an absent key is not an error.
func (s *Store) Clear(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv_store WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to clear key %q: %w", key, err)
	}
	return nil
}
