package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Winner values stored in the matches table.
const (
	WinnerBlack = "black"
	WinnerWhite = "white"
	WinnerDraw  = "draw"
)

// MatchRecord is the final result of one reversi game.
// Only the outcome is kept, never the move list.
type MatchRecord struct {
	MatchID   string // Assigned by SaveMatch when empty
	GameID    string
	BoardW    int
	BoardH    int
	Black     int // Black discs at the end
	White     int // White discs at the end
	Winner    string
	Turns     int
	Passes    int
	CreatedAt time.Time
}

// Margin returns the winner's disc lead.
func (r MatchRecord) Margin() int {
	if r.Black > r.White {
		return r.Black - r.White
	}
	return r.White - r.Black
}

// Standings aggregates match results for one game.
type Standings struct {
	GameID    string
	Games     int
	BlackWins int
	WhiteWins int
	Draws     int
}

// SaveMatch records a finished match and returns its match ID.
// A random UUID is assigned when rec.MatchID is empty.
func (s *Store) SaveMatch(rec MatchRecord) (string, error) {
	switch rec.Winner {
	case WinnerBlack, WinnerWhite, WinnerDraw:
	default:
		return "", fmt.Errorf("storage: cannot save match: unknown winner %q", rec.Winner)
	}

	if rec.MatchID == "" {
		rec.MatchID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, game_id, board_w, board_h, black, white, winner, turns, passes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.MatchID,
		rec.GameID,
		rec.BoardW,
		rec.BoardH,
		rec.Black,
		rec.White,
		rec.Winner,
		rec.Turns,
		rec.Passes,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save match: %w", err)
	}

	return rec.MatchID, nil
}

// RecentMatches retrieves the most recent matches for a game, newest first.
func (s *Store) RecentMatches(gameID string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT match_id, game_id, board_w, board_h, black, white, winner, turns, passes, created_at
		 FROM matches
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchRecord
	for rows.Next() {
		var rec MatchRecord
		var createdAt any

		if err := rows.Scan(
			&rec.MatchID,
			&rec.GameID,
			&rec.BoardW,
			&rec.BoardH,
			&rec.Black,
			&rec.White,
			&rec.Winner,
			&rec.Turns,
			&rec.Passes,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.CreatedAt = parseTime(createdAt)

		results = append(results, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Standings counts wins per colour and draws for a game.
func (s *Store) Standings(gameID string) (Standings, error) {
	st := Standings{GameID: gameID}
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE winner WHEN 'black' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE winner WHEN 'white' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE winner WHEN 'draw' THEN 1 ELSE 0 END), 0)
		 FROM matches WHERE game_id = ?`,
		gameID,
	).Scan(&st.Games, &st.BlackWins, &st.WhiteWins, &st.Draws)
	if err != nil {
		return st, fmt.Errorf("storage: cannot query standings: %w", err)
	}
	return st, nil
}
