// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultDBPath is where scores live unless --db says otherwise.
const DefaultDBPath = "~/.rikkajump/scores.db"

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Run is one finished run as stored in the scores table.
type Run struct {
	ID        int64
	RunID     uuid.UUID
	GameID    string
	Score     int
	Height    int
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	Runs       int
	HighScore  int
	BestHeight int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			height INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC, height DESC);
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

// SaveRun records a finished run and returns its generated run ID.
func (s *Store) SaveRun(gameID string, score, height int) (uuid.UUID, error) {
	runID := uuid.New()
	_, err := s.db.Exec(
		"INSERT INTO scores (run_id, game_id, score, height) VALUES (?, ?, ?, ?)",
		runID.String(), gameID, score, height,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return runID, nil
}

// TopScores retrieves the best N runs for the given game, ordered by score,
// then height, then age.
func (s *Store) TopScores(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, game_id, score, height, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, height DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanRuns(rows)
}

// RunByID looks up a single run. Returns nil if it does not exist.
func (s *Store) RunByID(runID uuid.UUID) (*Run, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, game_id, score, height, created_at
		 FROM scores
		 WHERE run_id = ?`,
		runID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	runs, err := scanRuns(rows)
	if err != nil || len(runs) == 0 {
		return nil, err
	}
	return &runs[0], nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var runID string
		var createdAt any
		if err := rows.Scan(&r.ID, &runID, &r.GameID, &r.Score, &r.Height, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		id, err := uuid.Parse(runID)
		if err != nil {
			return nil, fmt.Errorf("storage: bad run id %q: %w", runID, err)
		}
		r.RunID = id
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both driver-decoded times and raw SQLite strings.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	return s.maxColumn("score", gameID)
}

// BestHeight returns the greatest height reached in the given game.
// Returns 0 if no runs exist.
func (s *Store) BestHeight(gameID string) (int, error) {
	return s.maxColumn("height", gameID)
}

func (s *Store) maxColumn(column, gameID string) (int, error) {
	var v sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX("+column+") FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query max %s: %w", column, err)
	}

	if !v.Valid {
		return 0, nil
	}
	return int(v.Int64), nil
}

// Stats retrieves aggregated statistics for a specific game.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(height), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Runs, &stats.HighScore, &stats.BestHeight, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearScores deletes all runs for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
