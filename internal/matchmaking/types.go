package matchmaking

import (
	"database/sql"
	"sync"
)

// store handles database operations for the matchmaking queue.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// QueueEntry represents a player waiting for an opponent.
type QueueEntry struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Rating     int    `json:"rating"`
	JoinedAt   int64  `json:"joined_at"`
}

// Pairing is a matched pair of queued players.
type Pairing struct {
	PlayerA QueueEntry `json:"player_a"`
	PlayerB QueueEntry `json:"player_b"`
	// RatingGap is the absolute rating difference between the two.
	RatingGap int `json:"rating_gap"`
}

const (
	// baseWindow is the rating distance two players may be apart and
	// still be paired the moment both join.
	baseWindow = 100
	// widenPerMinute relaxes the window for every full minute the
	// longer waiting player has been queued.
	widenPerMinute = 50
	// maxWindow caps how far the window can widen.
	maxWindow = 400
)

// windowFor returns the allowed rating gap for a player who joined at
// joinedAt, evaluated at now.
func windowFor(joinedAt, now int64) int {
	waited := now - joinedAt
	if waited < 0 {
		waited = 0
	}
	window := baseWindow + int(waited/60)*widenPerMinute
	if window > maxWindow {
		window = maxWindow
	}
	return window
}
