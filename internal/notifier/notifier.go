package notifier

import (
	"github.com/rounds-golf/rounds-server/internal/match"
	"github.com/rounds-golf/rounds-server/internal/player"
)

// ResultNotification carries everything the notifier needs to announce a
// finished match: final scores, score-to-par and the rating movement.
type ResultNotification struct {
	Match        *match.Match
	CourseName   string
	ScoreA       int
	ScoreB       int
	ToParA       int
	ToParB       int
	RatingDeltaA int
	RatingDeltaB int
	NewRatingA   int
	NewRatingB   int
}

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For newly scheduled matches
	SendMatchScheduledNotification(m *match.Match, dryRun bool) error
	// For completed matches
	SendResultNotification(res *ResultNotification, dryRun bool) error
	// For slash commands
	SendLeaderboard(entries []player.LeaderboardEntry, dryRun bool) error
	SendPlayerStats(stats *player.LeaderboardEntry, query string, dryRun bool) error
	SendPlayerNotFound(query string, dryRun bool) error

	// For formatting responses for slash commands
	FormatLeaderboardResponse(entries []player.LeaderboardEntry) (any, error)
	FormatPlayerStatsResponse(stats *player.LeaderboardEntry, query string) (any, error)
	FormatPlayerNotFoundResponse(query string) (any, error)
}
