// Package drafts keeps the last text entered into each tool so it can be
// restored on the next run.
package drafts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// KeyPrefix namespaces every draft key.
const KeyPrefix = "seo-tool-"

// ErrNotFound is returned when no draft exists for a tool and locale.
var ErrNotFound = errors.New("draft not found")

// Draft is a saved tool input.
type Draft struct {
	Key       string
	Locale    string
	Text      string
	UpdatedAt time.Time
}

// Key returns the storage key for a tool name such as "readability".
func Key(tool string) string {
	return KeyPrefix + strings.ToLower(strings.TrimSpace(tool))
}

// SQLiteStore persists drafts in SQLite.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteStore opens (or creates) a draft store.
// Use ":memory:" for an in-memory database, or a file path for persistent storage.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// An in-memory database lives only as long as its connection.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS drafts (
		key TEXT NOT NULL,
		locale TEXT NOT NULL,
		text TEXT NOT NULL,
		updated_at INTEGER NOT NULL,
		PRIMARY KEY (key, locale)
	);
	CREATE INDEX IF NOT EXISTS idx_drafts_updated_at ON drafts(updated_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save stores text as the draft for tool in locale, replacing any previous one.
func (s *SQLiteStore) Save(ctx context.Context, tool, locale, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO drafts (key, locale, text, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key, locale) DO UPDATE SET text = excluded.text, updated_at = excluded.updated_at`,
		Key(tool), locale, text, time.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Load returns the draft for tool in locale, or ErrNotFound.
func (s *SQLiteStore) Load(ctx context.Context, tool, locale string) (Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d := Draft{Key: Key(tool), Locale: locale}
	var updated int64
	err := s.db.QueryRowContext(ctx,
		"SELECT text, updated_at FROM drafts WHERE key = ? AND locale = ?",
		d.Key, locale,
	).Scan(&d.Text, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return Draft{}, fmt.Errorf("%s (%s): %w", d.Key, locale, ErrNotFound)
	}
	if err != nil {
		return Draft{}, fmt.Errorf("load draft: %w", err)
	}
	d.UpdatedAt = time.Unix(0, updated)
	return d, nil
}

// Clear removes the draft for tool in locale. Clearing a missing draft is not an error.
func (s *SQLiteStore) Clear(ctx context.Context, tool, locale string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM drafts WHERE key = ? AND locale = ?", Key(tool), locale,
	); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}

// List returns every stored draft, most recently updated first.
func (s *SQLiteStore) List(ctx context.Context) ([]Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT key, locale, text, updated_at FROM drafts ORDER BY updated_at DESC, key",
	)
	if err != nil {
		return nil, fmt.Errorf("query drafts: %w", err)
	}
	defer rows.Close()

	var drafts []Draft
	for rows.Next() {
		var d Draft
		var updated int64
		if err := rows.Scan(&d.Key, &d.Locale, &d.Text, &updated); err != nil {
			return nil, fmt.Errorf("scan draft: %w", err)
		}
		d.UpdatedAt = time.Unix(0, updated)
		drafts = append(drafts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate drafts: %w", err)
	}
	return drafts, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
