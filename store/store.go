// Copyright © 2026 Ansidoc contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: store/store.go
// Summary: SQLite archive of captured styled documents.
// Usage: Capture tools save parsed output; viewers load and replay it.
// Notes: Lines are stored SGR-encoded, so a loaded capture replays through
// document.Parse without a separate style serialization format.

package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/framegrace/ansidoc/document"
)

const schema = `
CREATE TABLE IF NOT EXISTS captures (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	command    TEXT NOT NULL,
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS capture_lines (
	capture_id INTEGER NOT NULL REFERENCES captures(id) ON DELETE CASCADE,
	line_no    INTEGER NOT NULL,
	content    TEXT NOT NULL,
	PRIMARY KEY (capture_id, line_no)
);
`

// Capture describes one archived document.
type Capture struct {
	ID        int64
	Command   string
	CreatedAt time.Time
	Lines     int
}

// Store is a handle on the capture archive. Safe for concurrent use to the
// extent database/sql is.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the archive at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create archive directory: %w", err)
		}
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=foreign_keys(1)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to archive: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save archives a document under the command line that produced it and
// returns the new capture id. Each line is stored SGR-encoded.
func (s *Store) Save(command string, text document.Text) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO captures (command, created_at) VALUES (?, ?)",
		command, time.Now().UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert capture: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("capture id: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO capture_lines (capture_id, line_no, content) VALUES (?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("prepare lines: %w", err)
	}
	defer stmt.Close()

	for i, line := range text {
		var buf []byte
		for _, span := range line {
			buf = span.Style.AppendSequence(buf)
			buf = append(buf, span.Content...)
		}
		if _, err := stmt.Exec(id, i, string(buf)); err != nil {
			return 0, fmt.Errorf("insert line %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit save: %w", err)
	}
	return id, nil
}

// Load replays capture id back into a document.
func (s *Store) Load(id int64) (document.Text, error) {
	rows, err := s.db.Query(
		"SELECT content FROM capture_lines WHERE capture_id = ? ORDER BY line_no",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("load capture %d: %w", id, err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("scan line: %w", err)
		}
		lines = append(lines, content)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("capture %d: not found", id)
	}
	return document.ParseString(strings.Join(lines, "\n")), nil
}

// List returns the most recent captures, newest first.
func (s *Store) List(limit int) ([]Capture, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT c.id, c.command, c.created_at, COUNT(l.line_no)
		FROM captures c
		LEFT JOIN capture_lines l ON l.capture_id = c.id
		GROUP BY c.id
		ORDER BY c.created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list captures: %w", err)
	}
	defer rows.Close()

	var out []Capture
	for rows.Next() {
		var c Capture
		var created int64
		if err := rows.Scan(&c.ID, &c.Command, &created, &c.Lines); err != nil {
			return nil, fmt.Errorf("scan capture: %w", err)
		}
		c.CreatedAt = time.Unix(0, created)
		out = append(out, c)
	}
	return out, rows.Err()
}

// Delete removes a capture and its lines.
func (s *Store) Delete(id int64) error {
	if _, err := s.db.Exec("DELETE FROM captures WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete capture %d: %w", id, err)
	}
	return nil
}
