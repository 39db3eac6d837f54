package player

import (
	"database/sql"
	"sync"
)

// store handles all database operations for players and ratings.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// PlayerInfo represents a player in the store.
type PlayerInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at,omitempty"`
}

// LeaderboardEntry represents one row of the rating leaderboard.
type LeaderboardEntry struct {
	PlayerID      string  `json:"player_id"`
	PlayerName    string  `json:"player_name"`
	Rating        int     `json:"rating"`
	HighestRating int     `json:"highest_rating"`
	MatchesPlayed int     `json:"matches_played"`
	Wins          int     `json:"wins"`
	WinPercentage float64 `json:"win_percentage"`
}
