// Package storage provides SQLite-based persistence for the match history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/four-wins/internal/core"
	"github.com/vovakirdan/four-wins/internal/logging"
)

// ErrNotFound is returned when a requested match does not exist.
var ErrNotFound = errors.New("storage: match not found")

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchResult is one recorded round.
type MatchResult struct {
	ID        int64
	GameID    string
	Winner    int // 0-based player index, or core.NoWinner
	Draw      bool
	Moves     int
	Width     int
	Height    int
	Board     string // grid.Encode output of the final position
	CPU       bool
	Duration  int // seconds
	CreatedAt time.Time
}

// ResultFromSummary converts a finished round into a storable result.
func ResultFromSummary(s core.MatchSummary, d time.Duration) MatchResult {
	return MatchResult{
		GameID:   s.GameID,
		Winner:   s.Winner,
		Draw:     s.Draw,
		Moves:    s.Moves,
		Width:    s.Width,
		Height:   s.Height,
		Board:    s.Board,
		CPU:      s.CPU,
		Duration: int(d.Round(time.Second) / time.Second),
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := logging.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			winner INTEGER NOT NULL,
			draw INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			board TEXT NOT NULL,
			cpu INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_game_id ON results(game_id);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);
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

// SaveResult records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r MatchResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results
		 (game_id, winner, draw, moves, width, height, board, cpu, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Winner, r.Draw, r.Moves, r.Width, r.Height, r.Board, r.CPU, r.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const resultColumns = `id, game_id, winner, draw, moves, width, height, board, cpu, duration_secs, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (MatchResult, error) {
	var r MatchResult
	var createdAt any
	err := row.Scan(
		&r.ID,
		&r.GameID,
		&r.Winner,
		&r.Draw,
		&r.Moves,
		&r.Width,
		&r.Height,
		&r.Board,
		&r.CPU,
		&r.Duration,
		&createdAt,
	)
	if err != nil {
		return r, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string values from the driver.
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

// RecentResults retrieves the most recent results across all variants.
// A non-positive limit defaults to 20.
func (s *Store) RecentResults(limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryResults(
		`SELECT `+resultColumns+`
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// GameResults retrieves the most recent results for one variant.
// A non-positive limit defaults to 20.
func (s *Store) GameResults(gameID string, limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryResults(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

func (s *Store) queryResults(query string, args ...any) ([]MatchResult, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ResultByID retrieves one result. Returns ErrNotFound if it doesn't exist.
func (s *Store) ResultByID(id int64) (MatchResult, error) {
	row := s.db.QueryRow(`SELECT `+resultColumns+` FROM results WHERE id = ?`, id)
	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return MatchResult{}, ErrNotFound
	}
	if err != nil {
		return MatchResult{}, fmt.Errorf("storage: cannot query result: %w", err)
	}
	return r, nil
}

// GameStats contains aggregated statistics for a variant.
type GameStats struct {
	GameID     string
	GamesCount int
	Wins       [2]int // per player index
	Draws      int
	AvgMoves   float64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for a specific variant.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 0 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 1 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(draw), 0),
		        COALESCE(AVG(moves), 0),
		        MAX(created_at)
		 FROM results WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.Wins[0], &stats.Wins[1], &stats.Draws, &stats.AvgMoves, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// AllStats retrieves statistics for every variant that has been played.
func (s *Store) AllStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(`SELECT DISTINCT game_id FROM results ORDER BY game_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list games: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan game id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	all := make(map[string]*GameStats, len(ids))
	for _, id := range ids {
		st, err := s.Stats(id)
		if err != nil {
			return nil, err
		}
		all[id] = st
	}
	return all, nil
}

// ClearResults deletes all results for the given variant.
func (s *Store) ClearResults(gameID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
