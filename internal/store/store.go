// Package store persists judged submissions in a local sqlite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SubmissionRecord is one judged request's outcome.
type SubmissionRecord struct {
	ID              string
	Language        string
	FunctionName    string
	Verdict         string
	FailedTestIndex *int
	ErrorMessage    string
	DurationMs      int64
	CreatedAt       time.Time
}

// Store records and lists submissions.
type Store interface {
	RecordSubmission(rec SubmissionRecord) (string, error)
	ListRecent(limit int) ([]SubmissionRecord, error)
	DeleteOlderThan(cutoff time.Time) (int, error)
	Close() error
}

type sqliteStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS submissions (
	id TEXT PRIMARY KEY,
	language TEXT NOT NULL,
	function_name TEXT NOT NULL,
	verdict TEXT NOT NULL,
	failed_test_index INTEGER,
	error_message TEXT NOT NULL DEFAULT '',
	duration_ms INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions(created_at);
`

// NewStore opens (and initialises) the database at dbPath. SQLite performs
// best with a single connection given its locking model; WAL keeps readers
// from blocking the writer.
func NewStore(dbPath string) (Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			return nil, fmt.Errorf("failed to apply %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) RecordSubmission(rec SubmissionRecord) (string, error) {
	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO submissions
			(id, language, function_name, verdict, failed_test_index, error_message, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, rec.Language, rec.FunctionName, rec.Verdict,
		rec.FailedTestIndex, rec.ErrorMessage, rec.DurationMs, createdAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to record submission: %w", err)
	}
	return id, nil
}

func (s *sqliteStore) ListRecent(limit int) ([]SubmissionRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, language, function_name, verdict, failed_test_index, error_message, duration_ms, created_at
		 FROM submissions ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var records []SubmissionRecord
	for rows.Next() {
		var rec SubmissionRecord
		var failedIndex sql.NullInt64
		if err := rows.Scan(
			&rec.ID, &rec.Language, &rec.FunctionName, &rec.Verdict,
			&failedIndex, &rec.ErrorMessage, &rec.DurationMs, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		if failedIndex.Valid {
			idx := int(failedIndex.Int64)
			rec.FailedTestIndex = &idx
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *sqliteStore) DeleteOlderThan(cutoff time.Time) (int, error) {
	res, err := s.db.Exec(`DELETE FROM submissions WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune submissions: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
