package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/unusedpub/unusedpub/internal/analysis"
)

// Run is a recorded pipeline execution.
type Run struct {
	ID        string
	CreatedAt time.Time
	Workspace string
	Total     int
}

// Store persists run history in a SQLite database under the workspace.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun stores a run and its findings atomically and returns the run id.
func (s *Store) RecordRun(workspace string, result *analysis.Result) (string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id := uuid.NewString()
	if _, err := tx.Exec(
		`INSERT INTO runs (id, created_at, workspace, total) VALUES (?, ?, ?, ?)`,
		id, time.Now().UTC(), workspace, result.Total,
	); err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO findings (run_id, path, line, symbol, display_name) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare findings insert: %w", err)
	}
	defer stmt.Close()

	for _, group := range result.Groups {
		for _, f := range group.Findings {
			if _, err := stmt.Exec(id, f.Path, f.Line, f.Symbol, f.DisplayName); err != nil {
				return "", fmt.Errorf("failed to insert finding: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// ListRuns returns the most recent runs for a workspace, newest first.
func (s *Store) ListRuns(workspace string, limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, created_at, workspace, total FROM runs
		 WHERE workspace = ? ORDER BY created_at DESC LIMIT ?`,
		workspace, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Workspace, &r.Total); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LatestRun returns the most recent run for a workspace, or nil when the
// workspace has no recorded history.
func (s *Store) LatestRun(workspace string) (*Run, error) {
	runs, err := s.ListRuns(workspace, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// FindingsForRun returns the findings recorded for a run.
func (s *Store) FindingsForRun(runID string) ([]analysis.Finding, error) {
	rows, err := s.db.Query(
		`SELECT path, line, symbol, display_name FROM findings WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query findings: %w", err)
	}
	defer rows.Close()

	var findings []analysis.Finding
	for rows.Next() {
		var f analysis.Finding
		if err := rows.Scan(&f.Path, &f.Line, &f.Symbol, &f.DisplayName); err != nil {
			return nil, fmt.Errorf("failed to scan finding: %w", err)
		}
		findings = append(findings, f)
	}
	return findings, rows.Err()
}

// Prune deletes all but the newest keep runs for a workspace. keep <= 0
// disables pruning.
func (s *Store) Prune(workspace string, keep int) error {
	if keep <= 0 {
		return nil
	}
	_, err := s.db.Exec(
		`DELETE FROM runs WHERE workspace = ? AND id NOT IN (
		     SELECT id FROM runs WHERE workspace = ?
		     ORDER BY created_at DESC LIMIT ?)`,
		workspace, workspace, keep,
	)
	if err != nil {
		return fmt.Errorf("failed to prune runs: %w", err)
	}
	return nil
}

// NewSince returns the findings in current whose symbol id was not present in
// previous. Used by the --fail-on-new baseline mode.
func NewSince(current *analysis.Result, previous []analysis.Finding) []analysis.Finding {
	known := make(map[string]bool, len(previous))
	for _, f := range previous {
		known[f.Symbol] = true
	}

	var fresh []analysis.Finding
	for _, group := range current.Groups {
		for _, f := range group.Findings {
			if !known[f.Symbol] {
				fresh = append(fresh, f)
			}
		}
	}
	return fresh
}
