// ============================================================================
// fracalc - Fraction Calculator
// ============================================================================
//
// Package:     history
// Description: SQLite persistence for evaluated expressions
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package history stores evaluated expressions and their displayed results
// in a local SQLite database so the CLI and the TUI can show past work.
package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/fracalc/foundation/core/error"
)

// DefaultLimit is used by List when no positive limit is given
const DefaultLimit = 50

// Entry is one evaluated expression
type Entry struct {
	ID        string    `json:"id"`
	Mode      string    `json:"mode"`
	Input     string    `json:"input"`
	Result    string    `json:"result"`
	ErrorCode string    `json:"error_code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Failed reports whether the entry records an evaluation error
func (e Entry) Failed() bool {
	return e.ErrorCode != ""
}

// Config configures the store
type Config struct {
	Path string
}

// Store is a SQLite-backed history
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (and creates if needed) the history database at cfg.Path.
// The special path ":memory:" opens a private in-memory database.
func New(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, dbError("open", nil, "history path is empty")
	}

	dsn := ":memory:"
	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, dbError("open", err, "failed to create history directory")
		}
		dsn = cfg.Path + "?_journal_mode=WAL&_synchronous=NORMAL"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, dbError("open", err, "failed to open history database")
	}
	// a second connection to ":memory:" would see an empty database
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id TEXT PRIMARY KEY,
		mode TEXT NOT NULL,
		input TEXT NOT NULL,
		result TEXT NOT NULL,
		error_code TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_entries_created ON entries(created_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return dbError("init", err, "failed to initialize history schema")
	}
	return nil
}

// Record stores an entry. Missing ID and CreatedAt are filled in.
func (s *Store) Record(ctx context.Context, e *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (id, mode, input, result, error_code, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.ID, e.Mode, e.Input, e.Result, e.ErrorCode, e.CreatedAt)
	if err != nil {
		return dbError("record", err, "failed to record history entry")
	}
	return nil
}

// List returns up to limit entries, newest first
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, mode, input, result, error_code, created_at
		FROM entries
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, dbError("list", err, "failed to list history")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Mode, &e.Input, &e.Result, &e.ErrorCode, &e.CreatedAt); err != nil {
			return nil, dbError("list", err, "failed to scan history entry")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list", err, "failed to read history")
	}
	return entries, nil
}

// Count returns the number of stored entries
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, dbError("count", err, "failed to count history")
	}
	return n, nil
}

// Prune keeps the newest keep entries and deletes the rest
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if keep < 0 {
		keep = 0
	}

	res, err := s.db.ExecContext(ctx, `
		DELETE FROM entries WHERE id NOT IN (
			SELECT id FROM entries ORDER BY created_at DESC, rowid DESC LIMIT ?
		)
	`, keep)
	if err != nil {
		return 0, dbError("prune", err, "failed to prune history")
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// Clear deletes all entries
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return dbError("clear", err, "failed to clear history")
	}
	return nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

func dbError(op string, cause error, message string) error {
	var e *mdwerror.Error
	if cause != nil {
		e = mdwerror.Wrap(cause, message)
	} else {
		e = mdwerror.New(message)
	}
	return e.WithCode(mdwerror.CodeDatabaseError).WithOperation("history." + op)
}
