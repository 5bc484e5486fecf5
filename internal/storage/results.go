package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNoResult is returned when a lookup finds no matching round.
var ErrNoResult = errors.New("storage: no result")

// Result is the record of one finished round.
type Result struct {
	ID          string
	GameID      string
	Level       string
	Outcome     string
	Score       int
	ElapsedSecs int
	CreatedAt   time.Time
}

// SaveResult records a finished round and returns its generated ID.
func (s *Store) SaveResult(r Result) (string, error) {
	if r.GameID == "" || r.Outcome == "" {
		return "", fmt.Errorf("storage: result needs a game and an outcome")
	}
	id := uuid.New().String()

	_, err := s.db.Exec(
		`INSERT INTO results (id, game_id, level, outcome, score, elapsed_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, r.GameID, r.Level, r.Outcome, r.Score, r.ElapsedSecs,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save result: %w", err)
	}
	return id, nil
}

// RecentResults returns the newest rounds for a game.
func (s *Store) RecentResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, level, outcome, score, elapsed_secs, created_at
		 FROM results
		 WHERE game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Level, &r.Outcome, &r.Score, &r.ElapsedSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan result: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// BestTime returns the fastest winning time for a game and level.
// Returns ErrNoResult if the level has never been won.
func (s *Store) BestTime(gameID, level string) (int, error) {
	var secs sql.NullInt64
	err := s.db.QueryRow(
		`SELECT MIN(elapsed_secs) FROM results
		 WHERE game_id = ? AND level = ? AND outcome = 'won'`,
		gameID, level,
	).Scan(&secs)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best time: %w", err)
	}
	if !secs.Valid {
		return 0, ErrNoResult
	}
	return int(secs.Int64), nil
}

// GameStats holds aggregated statistics for a game.
type GameStats struct {
	GameID     string
	Played     int
	Wins       int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// GetGameStats aggregates the results table for one game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0),
		        MAX(created_at)
		 FROM results WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Played, &stats.Wins, &stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}
