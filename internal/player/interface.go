package player

import "github.com/rounds-golf/rounds-server/internal/rating"

// PlayerStore defines the interface for player and rating persistence.
type PlayerStore interface {
	AddPlayer(playerID, name string)
	UpsertPlayers(players []PlayerInfo) error
	IsKnownPlayer(playerID string) bool
	GetPlayer(playerID string) (*PlayerInfo, error)
	GetAllPlayers() ([]PlayerInfo, error)
	SearchPlayers(query string) ([]PlayerInfo, error)

	// GetRating returns the player's current rating snapshot including the
	// ordered rating history. Players with no rated matches get the initial
	// 1200 snapshot with empty history.
	GetRating(playerID string) (rating.PlayerRating, error)
	// SaveRating overwrites the player's rating row with the snapshot and
	// appends the snapshot's last history event, in one transaction.
	SaveRating(pr rating.PlayerRating, opponentID, matchID string) error
	RatingHistory(playerID string, limit int) ([]rating.Event, error)

	Leaderboard() ([]LeaderboardEntry, error)
	GetPlayerStatsByName(playerName string) (*LeaderboardEntry, error)

	Clear()
}
