// Package archive is a SQLite-backed audit trail of explicit saves and wheel
// spins. It is informational only: the snapshot slot stays the single source
// of truth, and a broken archive never blocks a save.
package archive

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS saves (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	checksum   TEXT NOT NULL,
	size_bytes INTEGER NOT NULL,
	saved_at   DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS spins (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	winner   TEXT NOT NULL,
	rotation REAL NOT NULL,
	spun_at  DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_saves_saved_at ON saves(saved_at);
CREATE INDEX IF NOT EXISTS idx_spins_winner ON spins(winner);
`

// DB wraps a sql.DB with archive-specific operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the archive database and applies the schema.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("archive: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("archive: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("archive: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// SaveRow is one recorded save.
type SaveRow struct {
	ID       int64     `json:"id"`
	Checksum string    `json:"checksum"`
	Size     int64     `json:"size"`
	SavedAt  time.Time `json:"savedAt"`
}

// RecordSave appends a save entry.
func (db *DB) RecordSave(checksum string, size int64, at time.Time) error {
	_, err := db.conn.Exec(
		`INSERT INTO saves (checksum, size_bytes, saved_at) VALUES (?, ?, ?)`,
		checksum, size, at.UTC())
	if err != nil {
		return fmt.Errorf("archive: record save: %w", err)
	}
	return nil
}

// Saves returns the most recent save entries, newest first.
func (db *DB) Saves(limit int) ([]SaveRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.conn.Query(`
		SELECT id, checksum, size_bytes, saved_at
		FROM saves
		ORDER BY saved_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("archive: list saves: %w", err)
	}
	defer rows.Close()

	var out []SaveRow
	for rows.Next() {
		var r SaveRow
		if err := rows.Scan(&r.ID, &r.Checksum, &r.Size, &r.SavedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// RecordSpin appends a settled spin.
func (db *DB) RecordSpin(winner string, rotation float64, at time.Time) error {
	_, err := db.conn.Exec(
		`INSERT INTO spins (winner, rotation, spun_at) VALUES (?, ?, ?)`,
		winner, rotation, at.UTC())
	if err != nil {
		return fmt.Errorf("archive: record spin: %w", err)
	}
	return nil
}

// WinnerCount is one row of the spin tally.
type WinnerCount struct {
	Winner string `json:"winner"`
	Count  int64  `json:"count"`
}

// WinnerTally returns how often each food has won, most frequent first.
func (db *DB) WinnerTally() ([]WinnerCount, error) {
	rows, err := db.conn.Query(`
		SELECT winner, COUNT(*) AS n
		FROM spins
		GROUP BY winner
		ORDER BY n DESC, winner ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("archive: winner tally: %w", err)
	}
	defer rows.Close()

	var out []WinnerCount
	for rows.Next() {
		var w WinnerCount
		if err := rows.Scan(&w.Winner, &w.Count); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
