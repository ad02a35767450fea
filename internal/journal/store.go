// Package journal keeps a local log of tool invocations in SQLite.
//
// The journal is write-only telemetry: nothing the server returns to a
// caller is ever derived from it, so the enhancement core stays
// stateless. It exists for the stats tool and for operators curious
// about which frameworks actually get used.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// Invocation is one recorded tool call.
type Invocation struct {
	ID        int64  `json:"id"`
	Tool      string `json:"tool"`
	Domain    string `json:"domain,omitempty"`
	Framework string `json:"framework,omitempty"`
	Phase     string `json:"phase,omitempty"`
	StepCount int    `json:"step_count,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ToolCount is an aggregate of invocations per tool.
type ToolCount struct {
	Tool  string `json:"tool"`
	Count int    `json:"count"`
}

// FrameworkCount is an aggregate of invocations per framework.
type FrameworkCount struct {
	Framework string `json:"framework"`
	Count     int    `json:"count"`
}

// Stats holds aggregate journal statistics.
type Stats struct {
	TotalInvocations int              `json:"total_invocations"`
	ByTool           []ToolCount      `json:"by_tool"`
	TopFrameworks    []FrameworkCount `json:"top_frameworks"`
}

// Config holds journal store configuration.
type Config struct {
	DataDir string
}

// DefaultConfig returns the default configuration for the journal store.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{DataDir: filepath.Join(home, ".panda")}
}

// Store is the invocation journal backed by SQLite.
type Store struct {
	db *sql.DB
}

// New creates a new Store with the given configuration.
// It creates the data directory if needed, opens SQLite with WAL mode,
// and runs migrations.
func New(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("journal: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "journal.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("journal: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("journal: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("journal: migration: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS invocations (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			tool       TEXT NOT NULL,
			domain     TEXT,
			framework  TEXT,
			phase      TEXT,
			step_count INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		);

		CREATE INDEX IF NOT EXISTS idx_inv_tool      ON invocations(tool);
		CREATE INDEX IF NOT EXISTS idx_inv_framework ON invocations(framework);
		CREATE INDEX IF NOT EXISTS idx_inv_created   ON invocations(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record appends one invocation to the journal.
func (s *Store) Record(inv Invocation) error {
	_, err := s.db.Exec(
		`INSERT INTO invocations (tool, domain, framework, phase, step_count)
		 VALUES (?, ?, ?, ?, ?)`,
		inv.Tool, nullableString(inv.Domain), nullableString(inv.Framework),
		nullableString(inv.Phase), inv.StepCount,
	)
	return err
}

// Recent returns the most recent invocations, newest first.
func (s *Store) Recent(limit int) ([]Invocation, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, tool, ifnull(domain, ''), ifnull(framework, ''), ifnull(phase, ''), step_count, created_at
		 FROM invocations ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: recent: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []Invocation
	for rows.Next() {
		var inv Invocation
		if err := rows.Scan(&inv.ID, &inv.Tool, &inv.Domain, &inv.Framework, &inv.Phase, &inv.StepCount, &inv.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, inv)
	}
	return results, rows.Err()
}

// Stats returns aggregate journal statistics.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	_ = s.db.QueryRow("SELECT COUNT(*) FROM invocations").Scan(&stats.TotalInvocations)

	rows, err := s.db.Query(
		`SELECT tool, COUNT(*) FROM invocations GROUP BY tool ORDER BY COUNT(*) DESC, tool ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: stats by tool: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var tc ToolCount
		if err := rows.Scan(&tc.Tool, &tc.Count); err != nil {
			return nil, err
		}
		stats.ByTool = append(stats.ByTool, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	fwRows, err := s.db.Query(
		`SELECT framework, COUNT(*) FROM invocations
		 WHERE framework IS NOT NULL
		 GROUP BY framework ORDER BY COUNT(*) DESC, framework ASC LIMIT 10`,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: stats by framework: %w", err)
	}
	defer func() { _ = fwRows.Close() }()
	for fwRows.Next() {
		var fc FrameworkCount
		if err := fwRows.Scan(&fc.Framework, &fc.Count); err != nil {
			return nil, err
		}
		stats.TopFrameworks = append(stats.TopFrameworks, fc)
	}
	return stats, fwRows.Err()
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
