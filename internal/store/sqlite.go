// internal/store/sqlite.go
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tests (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    name TEXT NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS questions (
    id TEXT PRIMARY KEY,
    test_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    question TEXT NOT NULL,
    answers TEXT NOT NULL,
    correct_answers TEXT NOT NULL,
    FOREIGN KEY (test_id) REFERENCES tests(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS user_stats (
    user_id TEXT PRIMARY KEY,
    completed_tests INTEGER NOT NULL,
    total_score REAL NOT NULL,
    average_score REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS weekly_time (
    user_id TEXT NOT NULL,
    week_start INTEGER NOT NULL,
    total_seconds INTEGER NOT NULL,
    PRIMARY KEY (user_id, week_start)
);

CREATE TABLE IF NOT EXISTS session_snapshots (
    user_id TEXT NOT NULL,
    test_id TEXT NOT NULL,
    data TEXT NOT NULL,
    updated_at INTEGER NOT NULL,
    PRIMARY KEY (user_id, test_id)
);

CREATE TABLE IF NOT EXISTS last_sessions (
    user_id TEXT PRIMARY KEY,
    test_id TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tests_user_id ON tests(user_id);
CREATE INDEX IF NOT EXISTS idx_questions_test_id ON questions(test_id);
`

type SQLiteStore struct {
	db        *sql.DB
	weekStart time.Weekday
}

// NewSQLite opens (or creates) the database at dbPath. weekStart is the
// first day of a weekly time bucket.
func NewSQLite(dbPath string, weekStart time.Weekday) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// SQLite serializes writers anyway, and a single connection keeps
	// ":memory:" databases and PRAGMAs consistent across queries.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{
		db:        db,
		weekStart: weekStart,
	}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func rowsAffectedOrNotFound(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
