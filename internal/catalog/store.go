// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog records the labels found by the indexer in a SQLite
// database so they can be searched across scripts. The catalog is written
// alongside the generated index files; it is never read back to decide what
// to regenerate.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const defaultLimit = 20

// Store manages the catalog database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the catalog at path and ensures its schema exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS scripts (
			path TEXT PRIMARY KEY,
			root_label TEXT NOT NULL,
			label_count INTEGER NOT NULL,
			indexed_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS labels (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			script_path TEXT NOT NULL REFERENCES scripts(path) ON DELETE CASCADE,
			label TEXT NOT NULL,
			position INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_labels_label ON labels(label)`,
		`CREATE INDEX IF NOT EXISTS idx_labels_script ON labels(script_path)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record replaces everything known about script with the given root label
// and labels, in one transaction.
func (s *Store) Record(ctx context.Context, script, root string, labels []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM labels WHERE script_path = ?`, script); err != nil {
		return fmt.Errorf("deleting old labels: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO scripts (path, root_label, label_count, indexed_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
			root_label=excluded.root_label, label_count=excluded.label_count,
			indexed_at=excluded.indexed_at`,
		script, root, len(labels), s.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting script: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO labels (script_path, label, position) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, l := range labels {
		if _, err := stmt.ExecContext(ctx, script, l, i); err != nil {
			return fmt.Errorf("inserting label %s: %w", l, err)
		}
	}

	return tx.Commit()
}

// Match is one label found by Search.
type Match struct {
	Label    string `json:"label" yaml:"label"`
	Script   string `json:"script" yaml:"script"`
	Root     string `json:"root" yaml:"root"`
	Position int    `json:"position" yaml:"position"`
}

// Search returns labels containing query, case-insensitively, ordered by
// script and position. A non-positive limit uses the default of 20.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	pattern := "%" + escapeLike(strings.TrimSpace(query)) + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT l.label, l.script_path, s.root_label, l.position
		 FROM labels l JOIN scripts s ON s.path = l.script_path
		 WHERE l.label LIKE ? ESCAPE '\'
		 ORDER BY l.script_path, l.position
		 LIMIT ?`, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("searching labels: %w", err)
	}
	defer rows.Close()

	var out []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.Label, &m.Script, &m.Root, &m.Position); err != nil {
			return nil, fmt.Errorf("scanning match: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
