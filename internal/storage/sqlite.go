// Package storage provides SQLite-based persistence for simulation run
// records and benchmark results. Uses the pure-Go modernc.org/sqlite driver
// to avoid CGO dependencies.
//
// Only run metadata is stored; simulation state itself is never persisted.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunRecord represents one completed simulation run.
type RunRecord struct {
	ID         int64
	Scenario   string // Scenario ID the run was built from
	Strategy   string // Execution strategy ID ("sequential", "parallel")
	Ships      int
	Planets    int
	Ticks      int
	Dt         float64
	Seed       int64
	DurationMS int64  // Wall-clock duration of the tick loop
	Checksum   string // Hex digest of the final world snapshot
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scenario TEXT NOT NULL,
			strategy TEXT NOT NULL,
			ships INTEGER NOT NULL,
			planets INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			dt REAL NOT NULL,
			seed INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			checksum TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scenario ON runs(scenario);
		CREATE INDEX IF NOT EXISTS idx_runs_fastest ON runs(scenario, strategy, duration_ms ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a completed run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (scenario, strategy, ships, planets, ticks, dt, seed, duration_ms, checksum)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Scenario, r.Strategy, r.Ships, r.Planets, r.Ticks, r.Dt, r.Seed, r.DurationMS, r.Checksum,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs across all scenarios.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scenario, strategy, ships, planets, ticks, dt, seed, duration_ms, checksum, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// RunsByScenario retrieves runs for the given scenario, newest first.
func (s *Store) RunsByScenario(scenario string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scenario, strategy, ships, planets, ticks, dt, seed, duration_ms, checksum, created_at
		 FROM runs
		 WHERE scenario = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		scenario, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// BestDuration returns the fastest recorded duration in milliseconds for the
// scenario/strategy pair. Returns 0 if no runs exist.
func (s *Store) BestDuration(scenario, strategy string) (int64, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(duration_ms) FROM runs WHERE scenario = ? AND strategy = ?",
		scenario, strategy,
	).Scan(&best)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best duration: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}

	return best.Int64, nil
}

// ClearRuns deletes all runs for the given scenario.
func (s *Store) ClearRuns(scenario string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE scenario = ?", scenario)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// ScenarioStats contains aggregated statistics for one scenario.
type ScenarioStats struct {
	Scenario string
	RunCount int
	BestMS   int64
	AvgMS    float64
	LastRun  time.Time
}

// GetScenarioStats retrieves aggregated statistics for a specific scenario.
func (s *Store) GetScenarioStats(scenario string) (*ScenarioStats, error) {
	stats := &ScenarioStats{Scenario: scenario}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(duration_ms), 0), COALESCE(AVG(duration_ms), 0)
		 FROM runs WHERE scenario = ?`,
		scenario,
	).Scan(&stats.RunCount, &stats.BestMS, &stats.AvgMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scenario stats: %w", err)
	}

	var lastRun any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE scenario = ? ORDER BY created_at DESC LIMIT 1`,
		scenario,
	).Scan(&lastRun)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		stats.LastRun = parseTime(lastRun)
	}

	return stats, nil
}

// scanRuns reads all rows from a runs query.
func scanRuns(rows *sql.Rows) ([]RunRecord, error) {
	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.Scenario, &r.Strategy, &r.Ships, &r.Planets,
			&r.Ticks, &r.Dt, &r.Seed, &r.DurationMS, &r.Checksum, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// parseTime handles both time.Time and string datetime values from SQLite.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
