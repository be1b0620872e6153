// Package records stores finished runs in SQLite using the pure-Go
// modernc.org/sqlite driver.
package records

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store is the run history database.
type Store struct {
	db *sql.DB
}

// Run is one finished attempt at a level.
type Run struct {
	ID           string
	Seed         uint64
	Level        string
	Outcome      string
	Frames       int
	SlimesKilled int
	BatsKilled   int
	DamageTaken  int
	Heals        int
	CreatedAt    time.Time
}

// Open creates or opens the database at dbPath, creating parent directories
// and the schema as needed. A leading ~ expands to the home directory.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("records: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("records: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("records: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("records: cannot connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("records: migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			level TEXT NOT NULL,
			outcome TEXT NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			slimes_killed INTEGER NOT NULL DEFAULT 0,
			bats_killed INTEGER NOT NULL DEFAULT 0,
			damage_taken INTEGER NOT NULL DEFAULT 0,
			heals INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level, created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun inserts r, assigning an id and timestamp when they are empty. It
// returns the stored id.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, seed, level, outcome, frames, slimes_killed, bats_killed, damage_taken, heals, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, int64(r.Seed), r.Level, r.Outcome, r.Frames,
		r.SlimesKilled, r.BatsKilled, r.DamageTaken, r.Heals,
		r.CreatedAt.UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("records: cannot save run: %w", err)
	}
	return r.ID, nil
}

// RecentRuns returns up to limit runs, newest first. An empty level matches
// every level.
func (s *Store) RecentRuns(level string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, level, outcome, frames, slimes_killed, bats_killed, damage_taken, heals, created_at
		 FROM runs
		 WHERE ? = '' OR level = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		level, level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("records: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			seed      int64
			createdAt int64
		)
		if err := rows.Scan(&r.ID, &seed, &r.Level, &r.Outcome, &r.Frames,
			&r.SlimesKilled, &r.BatsKilled, &r.DamageTaken, &r.Heals, &createdAt); err != nil {
			return nil, fmt.Errorf("records: cannot scan row: %w", err)
		}
		r.Seed = uint64(seed)
		r.CreatedAt = time.Unix(0, createdAt).UTC()
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("records: row iteration error: %w", err)
	}
	return runs, nil
}

// Summary aggregates every recorded run of a level.
type Summary struct {
	Runs    int
	Wins    int
	BestWin int // fewest frames among wins, 0 if none
}

// Summarize returns aggregate results for level, or for every level when
// level is empty.
func (s *Store) Summarize(level string) (Summary, error) {
	var (
		sum  Summary
		best sql.NullInt64
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        MIN(CASE WHEN outcome = 'won' THEN frames END)
		 FROM runs WHERE ? = '' OR level = ?`,
		level, level,
	).Scan(&sum.Runs, &sum.Wins, &best)
	if err != nil {
		return Summary{}, fmt.Errorf("records: cannot summarize %s: %w", level, err)
	}
	if best.Valid {
		sum.BestWin = int(best.Int64)
	}
	return sum, nil
}
