// Package sqlite provides a SQLite-backed implementation of the
// JobStore port. The database lives in the bindery data directory and
// records finished worker jobs only; the in-session collection is
// never persisted.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
)

// Ensure JobStore implements the interface.
var _ driven.JobStore = (*JobStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS jobs (
	id          TEXT PRIMARY KEY,
	kind        TEXT NOT NULL,
	inputs      TEXT NOT NULL,
	outputs     TEXT NOT NULL,
	pages       INTEGER NOT NULL,
	size_bytes  INTEGER NOT NULL,
	success     INTEGER NOT NULL,
	error       TEXT NOT NULL DEFAULT '',
	finished_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_jobs_finished_at ON jobs(finished_at DESC);
`

// JobStore records finished jobs in a SQLite database.
type JobStore struct {
	db   *sql.DB
	path string
}

// NewJobStore opens (or creates) the job database. If dataDir is
// empty, defaults to ~/.bindery/data/history.db.
func NewJobStore(dataDir string) (*JobStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".bindery", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// WAL mode for concurrent reads while a job record is written.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &JobStore{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *JobStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *JobStore) Path() string {
	return s.path
}

// SaveJob stores one finished job record.
func (s *JobStore) SaveJob(ctx context.Context, rec *driven.JobRecord) error {
	inputs, err := json.Marshal(rec.Inputs)
	if err != nil {
		return fmt.Errorf("encoding inputs: %w", err)
	}
	outputs, err := json.Marshal(rec.Outputs)
	if err != nil {
		return fmt.Errorf("encoding outputs: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO jobs (id, kind, inputs, outputs, pages, size_bytes, success, error, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, string(rec.Kind), string(inputs), string(outputs),
		rec.Pages, rec.SizeBytes, rec.Success, rec.Error,
		rec.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("saving job: %w", err)
	}
	return nil
}

// ListJobs returns records newest first, capped at limit when
// positive.
func (s *JobStore) ListJobs(ctx context.Context, limit int) ([]driven.JobRecord, error) {
	query := `
		SELECT id, kind, inputs, outputs, pages, size_bytes, success, error, finished_at
		FROM jobs ORDER BY finished_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	defer rows.Close()

	var jobs []driven.JobRecord
	for rows.Next() {
		var (
			rec              driven.JobRecord
			kind             string
			inputs, outputs  string
			finishedAt       string
		)
		if err := rows.Scan(&rec.ID, &kind, &inputs, &outputs, &rec.Pages,
			&rec.SizeBytes, &rec.Success, &rec.Error, &finishedAt); err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}
		rec.Kind = driven.JobKind(kind)
		if err := json.Unmarshal([]byte(inputs), &rec.Inputs); err != nil {
			return nil, fmt.Errorf("decoding inputs: %w", err)
		}
		if err := json.Unmarshal([]byte(outputs), &rec.Outputs); err != nil {
			return nil, fmt.Errorf("decoding outputs: %w", err)
		}
		if rec.FinishedAt, err = time.Parse(time.RFC3339Nano, finishedAt); err != nil {
			return nil, fmt.Errorf("parsing finished_at: %w", err)
		}
		jobs = append(jobs, rec)
	}
	return jobs, rows.Err()
}

// Clear removes all records.
func (s *JobStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM jobs"); err != nil {
		return fmt.Errorf("clearing jobs: %w", err)
	}
	return nil
}
