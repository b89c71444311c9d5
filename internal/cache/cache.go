// Package cache persists slow-to-probe facts (OS name, CPU model, GPU)
// between runs in a small SQLite store, so the usual invocation never
// waits on lspci or os-release parsing twice.
//
// Cache failures are never fatal: callers log and probe fresh.
package cache

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Well-known probe keys.
const (
	KeyOS  = "os"
	KeyCPU = "cpu"
	KeyGPU = "gpu"
)

// Cache is a key/value store over a SQLite file.
type Cache struct {
	db      *sql.DB
	refresh bool
}

// Open opens or creates the cache database.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `CREATE TABLE IF NOT EXISTS probes (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}

	return &Cache{db: db}, nil
}

// SetForceRefresh makes Get miss on every key, so all probes run fresh
// and rewrite their entries (--refresh).
func (c *Cache) SetForceRefresh(v bool) {
	c.refresh = v
}

// Get returns the cached value for key, if present and refresh is not
// being forced.
func (c *Cache) Get(key string) (string, bool) {
	if c == nil || c.refresh {
		return "", false
	}

	var value string
	err := c.db.QueryRow("SELECT value FROM probes WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

// Put stores a probe result.
func (c *Cache) Put(key, value string) error {
	if c == nil {
		return nil
	}
	_, err := c.db.Exec(
		`INSERT INTO probes (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	return err
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}
