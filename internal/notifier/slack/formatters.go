package slack

import (
	"fmt"
	"time"

	"github.com/rounds-golf/rounds-server/internal/match"
	"github.com/rounds-golf/rounds-server/internal/notifier"
	"github.com/rounds-golf/rounds-server/internal/player"
	"github.com/rounds-golf/rounds-server/internal/scorecard"
	"github.com/slack-go/slack"
)

// formatMatchScheduledNotification creates the Slack message for a newly scheduled match using Block Kit.
func (s *Notifier) formatMatchScheduledNotification(m *match.Match) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header - The Header block itself provides bolding. No asterisks needed.
	headerText := slack.NewTextBlockObject("plain_text", "⛳ New match scheduled! ⛳", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	// Details - Use newlines for clear separation.
	detailsText := fmt.Sprintf("Tee time: %s", time.Unix(m.ScheduledAt, 0).Format("Monday 02 Jan, 15:04"))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	// Players
	playersText := fmt.Sprintf("Players:\n• %s\n• %s", m.PlayerA.Name, m.PlayerB.Name)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playersText, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatResultNotification creates the Slack message for a finished match using Block Kit.
func (s *Notifier) formatResultNotification(res *notifier.ResultNotification) slack.Message {
	m := res.Match
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "⛳ Round finished! ⛳", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	// Details
	detailsText := fmt.Sprintf("%s, %s", res.CourseName, time.Unix(m.ScheduledAt, 0).Format("Monday 02 Jan, 15:04"))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, false, false), nil, nil))

	// Result header
	resultHeaderText := "Result: All square."
	switch {
	case res.Match.Draw:
		// keep the default
	case m.WinnerID == m.PlayerA.ID:
		resultHeaderText = fmt.Sprintf("Result: %s won! 🏆", m.PlayerA.Name)
	case m.WinnerID == m.PlayerB.ID:
		resultHeaderText = fmt.Sprintf("Result: %s won! 🏆", m.PlayerB.Name)
	}

	// Scores with score-to-par the way golfers read them.
	scoreFields := []*slack.TextBlockObject{
		slack.NewTextBlockObject("plain_text",
			fmt.Sprintf("%s\n%d (%s)", m.PlayerA.Name, res.ScoreA, scorecard.FormatToPar(res.ToParA)), true, false),
		slack.NewTextBlockObject("plain_text",
			fmt.Sprintf("%s\n%d (%s)", m.PlayerB.Name, res.ScoreB, scorecard.FormatToPar(res.ToParB)), true, false),
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", resultHeaderText, true, false), scoreFields, nil))

	// Context (rating movement)
	ratingText := fmt.Sprintf("Ratings: %s %s → %d | %s %s → %d",
		m.PlayerA.Name, formatDelta(res.RatingDeltaA), res.NewRatingA,
		m.PlayerB.Name, formatDelta(res.RatingDeltaB), res.NewRatingB)
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", ratingText, true, false)))

	return slack.NewBlockMessage(blocks...)
}

func formatDelta(delta int) string {
	if delta >= 0 {
		return fmt.Sprintf("+%d", delta)
	}
	return fmt.Sprintf("%d", delta)
}

// formatLeaderboard creates a Slack message to display the rating leaderboard.
func (s *Notifier) formatLeaderboard(entries []player.LeaderboardEntry) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "🏆 Rating Leaderboard 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(entries) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No ratings yet. Go play some rounds!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	// Player Ranks
	for i, e := range entries {
		rank := i + 1
		var medal string
		switch rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		playerText := fmt.Sprintf("%d. %s %s\n> Rating: %d (peak %d) | Win %%: %.2f%% (%d/%d)",
			rank,
			medal,
			e.PlayerName,
			e.Rating,
			e.HighestRating,
			e.WinPercentage,
			e.Wins,
			e.MatchesPlayed,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playerText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerStats creates a Slack message for a single player's stats.
func (s *Notifier) formatPlayerStats(stats *player.LeaderboardEntry, query string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("📊 Stats for %s", stats.PlayerName), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	statsText := fmt.Sprintf("Rating: %d (peak %d)\nMatches: %d | Wins: %d | Win %%: %.2f%%",
		stats.Rating, stats.HighestRating, stats.MatchesPlayed, stats.Wins, stats.WinPercentage)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", statsText, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerNotFound creates a Slack message for when a player query has no match.
func (s *Notifier) formatPlayerNotFound(query string) slack.Message {
	text := slack.NewTextBlockObject("plain_text", fmt.Sprintf("No player matching '%s' was found.", query), true, false)
	return slack.NewBlockMessage(slack.NewSectionBlock(text, nil, nil))
}
