// Package sqlite implements the repository contracts over a SQLite database.
// It is an alternate backend to the in-memory store; with the default
// ":memory:" source it provides the same no-durability semantics while
// keeping the contract provably backend-agnostic.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{db}, nil
}

// Migrate creates the schema. Foreign keys are intentionally not declared:
// referential integrity between entities is advisory, and a dangling
// reference degrades to a placeholder at join time rather than failing.
func (db *DB) Migrate() error {
	schema := `
CREATE TABLE IF NOT EXISTS clients (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    notes TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    last_contact TIMESTAMP
);

CREATE TABLE IF NOT EXISTS projects (
    id INTEGER PRIMARY KEY,
    client_id INTEGER NOT NULL DEFAULT 0,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL CHECK(status IN ('Lead', 'Design', 'In Progress', 'Complete')),
    budget REAL NOT NULL DEFAULT 0,
    start_date TIMESTAMP,
    end_date TIMESTAMP,
    images TEXT NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS idx_project_client ON projects(client_id);
CREATE INDEX IF NOT EXISTS idx_project_status ON projects(status);

CREATE TABLE IF NOT EXISTS meetings (
    id INTEGER PRIMARY KEY,
    client_id INTEGER NOT NULL,
    project_id INTEGER NOT NULL DEFAULT 0,
    date TIMESTAMP NOT NULL,
    notes TEXT NOT NULL DEFAULT '',
    follow_up TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_meeting_client ON meetings(client_id);
CREATE INDEX IF NOT EXISTS idx_meeting_project ON meetings(project_id);
CREATE INDEX IF NOT EXISTS idx_meeting_date ON meetings(date);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
