// Package audit persists conformance violations to a local SQLite database
// so they can be inspected after the fact (typeguard audit). Recording is
// best-effort: a broken audit trail must never fail the intercepted call.
package audit

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/funvibe/typeguard/pkg/grpcguard"
)

// Timestamps are stored as unix nanoseconds so ORDER BY sorts them
// numerically; formatted strings trim trailing fractional zeros and
// misorder same-second rows.
const schema = `
CREATE TABLE IF NOT EXISTS violations (
	id       TEXT PRIMARY KEY,
	at       INTEGER NOT NULL,
	method   TEXT NOT NULL,
	kind     TEXT NOT NULL,
	expected TEXT NOT NULL,
	observed TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS violations_at ON violations (at);
`

// Violation is one recorded conformance failure.
type Violation struct {
	ID       string
	At       time.Time
	Method   string
	Kind     string
	Expected string
	Observed string
}

// Store is an append-only violation log backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the violation database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open audit database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize audit schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Log appends one violation. The ID and timestamp are filled in if absent.
func (s *Store) Log(v Violation) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.At.IsZero() {
		v.At = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO violations (id, at, method, kind, expected, observed) VALUES (?, ?, ?, ?, ?, ?)`,
		v.ID, v.At.UnixNano(), v.Method, v.Kind, v.Expected, v.Observed,
	)
	if err != nil {
		return fmt.Errorf("log violation: %w", err)
	}
	return nil
}

// Record implements grpcguard.Recorder. Errors are reported to stderr and
// otherwise swallowed.
func (s *Store) Record(v grpcguard.Violation) {
	err := s.Log(Violation{
		Method:   v.Method,
		Kind:     v.Kind,
		Expected: v.Expected,
		Observed: v.Observed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "typeguard: audit: %v\n", err)
	}
}

// Recent returns up to limit violations, newest first.
func (s *Store) Recent(limit int) ([]Violation, error) {
	rows, err := s.db.Query(
		`SELECT id, at, method, kind, expected, observed FROM violations ORDER BY at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query violations: %w", err)
	}
	defer rows.Close()

	var out []Violation
	for rows.Next() {
		var v Violation
		var at int64
		if err := rows.Scan(&v.ID, &at, &v.Method, &v.Kind, &v.Expected, &v.Observed); err != nil {
			return nil, fmt.Errorf("scan violation: %w", err)
		}
		v.At = time.Unix(0, at).UTC()
		out = append(out, v)
	}
	return out, rows.Err()
}

// Count returns the total number of recorded violations.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM violations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count violations: %w", err)
	}
	return n, nil
}
