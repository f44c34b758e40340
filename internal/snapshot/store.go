// Package snapshot persists the pre-edit scope between the edit and save
// commands, so reconciliation always runs against the exact rows the
// user exported rather than a re-evaluated filter.
package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/grosz-dev/grosz/internal/common"
	"github.com/grosz-dev/grosz/internal/ledger"
	"github.com/grosz-dev/grosz/internal/model"
)

// Snapshot records a scope as exported for editing.
type Snapshot struct {
	CreatedAt time.Time
	Filter    ledger.Filter
	Scope     []model.Transaction
	EditPath  string
}

// Store is a SQLite-backed snapshot store. Only the most recent snapshot
// matters; Put replaces whatever was there.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (and if necessary creates) the snapshot database.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: snapshot database path", common.ErrMissingConfig)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping snapshot database: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.migrate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at DATETIME NOT NULL,
		filter_json TEXT NOT NULL,
		scope_json TEXT NOT NULL,
		edit_path TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to migrate snapshot schema: %w", err)
	}
	return nil
}

// Put stores a snapshot, replacing any previous one.
func (s *Store) Put(ctx context.Context, snap Snapshot) error {
	filterJSON, err := json.Marshal(snap.Filter)
	if err != nil {
		return fmt.Errorf("failed to encode filter: %w", err)
	}
	scopeJSON, err := json.Marshal(snap.Scope)
	if err != nil {
		return fmt.Errorf("failed to encode scope: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots`); err != nil {
		return fmt.Errorf("failed to clear previous snapshot: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshots (created_at, filter_json, scope_json, edit_path) VALUES (?, ?, ?, ?)`,
		snap.CreatedAt.UTC(), string(filterJSON), string(scopeJSON), snap.EditPath)
	if err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}

	return tx.Commit()
}

// Get returns the current snapshot, or common.ErrSnapshotNotFound when
// no edit is pending.
func (s *Store) Get(ctx context.Context) (*Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT created_at, filter_json, scope_json, edit_path FROM snapshots ORDER BY id DESC LIMIT 1`)

	var snap Snapshot
	var filterJSON, scopeJSON string
	err := row.Scan(&snap.CreatedAt, &filterJSON, &scopeJSON, &snap.EditPath)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(filterJSON), &snap.Filter); err != nil {
		return nil, fmt.Errorf("failed to decode filter: %w", err)
	}
	if err := json.Unmarshal([]byte(scopeJSON), &snap.Scope); err != nil {
		return nil, fmt.Errorf("failed to decode scope: %w", err)
	}

	return &snap, nil
}

// Clear removes any pending snapshot.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM snapshots`); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	return nil
}
