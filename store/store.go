// Package store persists completed analyses in SQLite so repeated
// requests for the same site can be served from cache instead of
// refetching and re-querying the oracle.
package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"sovscan/model"
	"sovscan/util"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store is a SQLite-backed analysis archive.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies pending
// migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	// modernc sqlite is not safe for concurrent writers on one file.
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// SaveAnalysis archives one completed analysis and returns its id.
// Callers treat save failures as non-fatal: the analysis already
// succeeded, only the cache misses out.
func (s *Store) SaveAnalysis(ctx context.Context, result *model.AnalysisResult) (string, error) {
	blob, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to encode analysis: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO analyses (id, url, score, risk_level, result, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, result.URL, result.Score, result.RiskLevel, string(blob), result.GeneratedAt.UTC())
	if err != nil {
		return "", fmt.Errorf("failed to insert analysis: %w", err)
	}

	for _, v := range result.Vendors {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO vendors (analysis_id, name, purpose, location, risk, detection_method) VALUES (?, ?, ?, ?, ?, ?)`,
			id, v.Name, v.Purpose, v.Location, v.Risk, v.DetectionMethod)
		if err != nil {
			return "", fmt.Errorf("failed to insert vendor %s: %w", v.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit analysis: %w", err)
	}
	util.Debug("Archived analysis %s for %s", id, result.URL)
	return id, nil
}

// GetCached returns the most recent archived analysis for a normalized
// URL, if one exists and is newer than maxAge. A zero maxAge disables
// caching.
func (s *Store) GetCached(ctx context.Context, normalizedURL string, maxAge time.Duration) (*model.AnalysisResult, bool, error) {
	if maxAge <= 0 {
		return nil, false, nil
	}

	var blob string
	err := s.db.QueryRowContext(ctx,
		`SELECT result FROM analyses WHERE url = ? AND created_at >= ? ORDER BY created_at DESC LIMIT 1`,
		normalizedURL, time.Now().UTC().Add(-maxAge)).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query cache: %w", err)
	}

	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(blob), &result); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached analysis: %w", err)
	}
	return &result, true, nil
}

// History returns the archived (url, score, risk, created_at) rows,
// newest first, up to limit.
func (s *Store) History(ctx context.Context, limit int) ([]HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, url, score, risk_level, created_at FROM analyses ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.URL, &e.Score, &e.RiskLevel, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// HistoryEntry is one row of the analysis archive listing.
type HistoryEntry struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Score     int       `json:"score"`
	RiskLevel string    `json:"risk_level"`
	CreatedAt time.Time `json:"created_at"`
}
