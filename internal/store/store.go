// Package store is the ambient plan-run history: one row per planId
// for past planning runs, kept outside the pure in-memory core
// (spec.md §3 "Persistence: None" describes the domain entities, not
// the surrounding service — SPEC_FULL.md §3). Grounded on the
// teacher's internal/db Open()/migrate() pattern.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"drove-planner/internal/domain"
	"drove-planner/internal/logger"
)

// Store wraps a SQLite connection holding the plan_runs history table.
type Store struct {
	sql *sql.DB
}

func dbPath() string {
	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, "droveplanner.db")
	}
	exe, _ := os.Executable()
	return filepath.Join(filepath.Dir(exe), "droveplanner.db")
}

// Open opens (or creates) the history database and runs migrations.
func Open() (*Store, error) {
	path := dbPath()
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	s := &Store{sql: sqlDB}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	logger.Success("Store", fmt.Sprintf("opened %s", path))
	return s, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.sql.Close()
}

func (s *Store) migrate() error {
	_, err := s.sql.Exec(`
		CREATE TABLE IF NOT EXISTS plan_runs (
			plan_id         TEXT PRIMARY KEY,
			created_at      TEXT NOT NULL,
			request_digest  TEXT NOT NULL,
			total_days      INTEGER NOT NULL,
			total_head      INTEGER NOT NULL,
			revenue_eur     REAL NOT NULL,
			net_profit_eur  REAL NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_plan_runs_created ON plan_runs(created_at);
	`)
	return err
}

// Record writes a completed PlanResult to the history table, keyed by
// its opaque planId (spec.md §4.7: "stable to log"). A row that already
// holds the same planId is replaced.
func (s *Store) Record(result domain.PlanResult, requestDigest string) error {
	_, err := s.sql.Exec(
		`INSERT OR REPLACE INTO plan_runs (plan_id, created_at, request_digest, total_days, total_head, revenue_eur, net_profit_eur)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		result.PlanID,
		time.Now().UTC().Format(time.RFC3339),
		requestDigest,
		result.Summary.TotalDays,
		result.Summary.TotalHeadCollected,
		result.Summary.TotalRevenueEur,
		result.Summary.TotalNetProfitEur,
	)
	return err
}

// RunRecord is one row of plan-run history.
type RunRecord struct {
	PlanID       string
	CreatedAt    string
	TotalDays    int
	TotalHead    int
	RevenueEur   float64
	NetProfitEur float64
}

// Recent returns the most recent plan runs, newest first.
func (s *Store) Recent(limit int) ([]RunRecord, error) {
	rows, err := s.sql.Query(
		`SELECT plan_id, created_at, total_days, total_head, revenue_eur, net_profit_eur
		 FROM plan_runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.PlanID, &r.CreatedAt, &r.TotalDays, &r.TotalHead, &r.RevenueEur, &r.NetProfitEur); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
