package processor

import (
	"testing"
	"time"

	"github.com/rounds-golf/rounds-server/internal/course"
	"github.com/rounds-golf/rounds-server/internal/database"
	"github.com/rounds-golf/rounds-server/internal/match"
	"github.com/rounds-golf/rounds-server/internal/metrics"
	"github.com/rounds-golf/rounds-server/internal/notifier"
	"github.com/rounds-golf/rounds-server/internal/player"
	"github.com/rounds-golf/rounds-server/internal/pubsub"
	"github.com/rounds-golf/rounds-server/internal/rating"
	"github.com/rounds-golf/rounds-server/internal/scorecard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullCard(strokesA, strokesB int) *scorecard.Card {
	a := make([]int, scorecard.Holes)
	b := make([]int, scorecard.Holes)
	for i := range a {
		a[i] = strokesA
		b[i] = strokesB
	}
	return scorecard.Restore(a, b)
}

func TestProcessor_ProcessMatches(t *testing.T) {
	t.Run("played match with complete cards runs through the pipeline", func(t *testing.T) {
		matches := match.NewMock()
		players := player.NewMock()
		notif := notifier.NewMock()
		metr := metrics.NewMock()
		ps := pubsub.NewMock("TEST")
		p := New(matches, players, nil, rating.New(), notif, metr, ps)

		m := match.Match{
			ID:               "m1",
			PlayerA:          match.Participant{ID: "p1", Name: "Alice"},
			PlayerB:          match.Participant{ID: "p2", Name: "Bob"},
			Status:           match.StatusPlayed,
			ProcessingStatus: match.ProcessingNew,
			EndedAt:          time.Now().Unix(),
			Card:             fullCard(4, 5),
		}
		matches.GetMatchesForProcessingFunc = func() ([]match.Match, error) {
			return []match.Match{m}, nil
		}

		p.ProcessMatches(false)

		// Alice shot 72 to Bob's 90, so she wins and both ratings move.
		require.Len(t, players.SaveRatingCalls, 2)
		assert.Equal(t, "p1", players.SaveRatingCalls[0].Rating.PlayerID)
		assert.Equal(t, 1216, players.SaveRatingCalls[0].Rating.Rating)
		assert.Equal(t, "p2", players.SaveRatingCalls[1].Rating.PlayerID)
		assert.Equal(t, 1184, players.SaveRatingCalls[1].Rating.Rating)

		require.Len(t, matches.SetResultCalls, 1)
		assert.Equal(t, "p1", matches.SetResultCalls[0].Result.WinnerID)
		assert.False(t, matches.SetResultCalls[0].Result.Draw)
		assert.Equal(t, 16, matches.SetResultCalls[0].Result.RatingDeltaA)
		assert.Equal(t, -16, matches.SetResultCalls[0].Result.RatingDeltaB)

		// The notification itself is handled by the pubsub consumer.
		require.Len(t, ps.SendMessageCalls, 1)
		assert.Equal(t, string(pubsub.EventNotifyResult), ps.SendMessageCalls[0].Topic)

		require.Len(t, matches.UpdateProcessingStatusCalls, 4)
		assert.Equal(t, match.ProcessingScoresConfirmed, matches.UpdateProcessingStatusCalls[0].Status)
		assert.Equal(t, match.ProcessingRatingsUpdated, matches.UpdateProcessingStatusCalls[1].Status)
		assert.Equal(t, match.ProcessingResultNotified, matches.UpdateProcessingStatusCalls[2].Status)
		assert.Equal(t, match.ProcessingCompleted, matches.UpdateProcessingStatusCalls[3].Status)

		assert.Equal(t, 1, metr.RatingsUpdated())
		assert.Equal(t, 1, metr.MatchesProcessed())
	})

	t.Run("incomplete cards leave the match waiting", func(t *testing.T) {
		matches := match.NewMock()
		players := player.NewMock()
		notif := notifier.NewMock()
		metr := metrics.NewMock()
		ps := pubsub.NewMock("TEST")
		p := New(matches, players, nil, rating.New(), notif, metr, ps)

		card := scorecard.New()
		card.UpdateScore(1, 4, true)
		m := match.Match{
			ID:               "m1",
			PlayerA:          match.Participant{ID: "p1"},
			PlayerB:          match.Participant{ID: "p2"},
			ProcessingStatus: match.ProcessingNew,
			Card:             card,
		}
		matches.GetMatchesForProcessingFunc = func() ([]match.Match, error) {
			return []match.Match{m}, nil
		}

		p.ProcessMatches(false)

		assert.Empty(t, matches.UpdateProcessingStatusCalls)
		assert.Empty(t, players.SaveRatingCalls)
		assert.Empty(t, ps.SendMessageCalls)
	})

	t.Run("equal totals produce a draw with no winner", func(t *testing.T) {
		matches := match.NewMock()
		players := player.NewMock()
		notif := notifier.NewMock()
		metr := metrics.NewMock()
		ps := pubsub.NewMock("TEST")
		p := New(matches, players, nil, rating.New(), notif, metr, ps)

		m := match.Match{
			ID:               "m1",
			PlayerA:          match.Participant{ID: "p1"},
			PlayerB:          match.Participant{ID: "p2"},
			ProcessingStatus: match.ProcessingNew,
			EndedAt:          time.Now().Unix(),
			Card:             fullCard(4, 4),
		}
		matches.GetMatchesForProcessingFunc = func() ([]match.Match, error) {
			return []match.Match{m}, nil
		}

		p.ProcessMatches(false)

		require.Len(t, matches.SetResultCalls, 1)
		assert.True(t, matches.SetResultCalls[0].Result.Draw)
		assert.Empty(t, matches.SetResultCalls[0].Result.WinnerID)
		// Equal ratings drawing means zero delta for both.
		assert.Equal(t, 0, matches.SetResultCalls[0].Result.RatingDeltaA)
		assert.Equal(t, 0, matches.SetResultCalls[0].Result.RatingDeltaB)
	})

	t.Run("old matches are processed without a notification", func(t *testing.T) {
		matches := match.NewMock()
		players := player.NewMock()
		notif := notifier.NewMock()
		metr := metrics.NewMock()
		ps := pubsub.NewMock("TEST")
		p := New(matches, players, nil, rating.New(), notif, metr, ps)

		m := match.Match{
			ID:               "m1",
			PlayerA:          match.Participant{ID: "p1"},
			PlayerB:          match.Participant{ID: "p2"},
			ProcessingStatus: match.ProcessingNew,
			EndedAt:          time.Now().Add(-48 * time.Hour).Unix(),
			Card:             fullCard(4, 5),
		}
		matches.GetMatchesForProcessingFunc = func() ([]match.Match, error) {
			return []match.Match{m}, nil
		}

		p.ProcessMatches(false)

		// Ratings still move, but no notification event is published.
		require.Len(t, players.SaveRatingCalls, 2)
		assert.Empty(t, ps.SendMessageCalls)
		require.Len(t, matches.UpdateProcessingStatusCalls, 4)
		assert.Equal(t, match.ProcessingCompleted, matches.UpdateProcessingStatusCalls[3].Status)
	})

	t.Run("dry run computes but persists nothing", func(t *testing.T) {
		matches := match.NewMock()
		players := player.NewMock()
		notif := notifier.NewMock()
		metr := metrics.NewMock()
		ps := pubsub.NewMock("TEST")
		p := New(matches, players, nil, rating.New(), notif, metr, ps)

		m := match.Match{
			ID:               "m1",
			PlayerA:          match.Participant{ID: "p1"},
			PlayerB:          match.Participant{ID: "p2"},
			ProcessingStatus: match.ProcessingNew,
			EndedAt:          time.Now().Unix(),
			Card:             fullCard(4, 5),
		}
		matches.GetMatchesForProcessingFunc = func() ([]match.Match, error) {
			return []match.Match{m}, nil
		}

		p.ProcessMatches(true)

		assert.Empty(t, players.SaveRatingCalls)
		assert.Empty(t, matches.SetResultCalls)
		assert.Empty(t, matches.UpdateProcessingStatusCalls)
		assert.Empty(t, ps.SendMessageCalls)
	})
}

func TestProcessor_NotifyResult(t *testing.T) {
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	defer teardown()

	matches := match.New(db)
	players := player.New(db)
	courses := course.New(db)
	notif := notifier.NewMock()
	metr := metrics.NewMock()
	ps := pubsub.NewMock("TEST")
	p := New(matches, players, courses, rating.New(), notif, metr, ps)

	pars := make([]int, 18)
	for i := range pars {
		pars[i] = 4
	}
	require.NoError(t, courses.UpsertCourse(course.Course{ID: "c1", Name: "Pebble Creek", Pars: pars}))

	players.AddPlayer("p1", "Alice")
	players.AddPlayer("p2", "Bob")

	require.NoError(t, matches.CreateMatch(match.Match{
		ID:       "m1",
		CourseID: "c1",
		PlayerA:  match.Participant{ID: "p1", Name: "Alice"},
		PlayerB:  match.Participant{ID: "p2", Name: "Bob"},
	}))

	full := func(strokes int) []int {
		s := make([]int, 18)
		for i := range s {
			s[i] = strokes
		}
		return s
	}
	require.NoError(t, matches.SubmitScores("m1", full(4), full(5), time.Now().Unix()))
	require.NoError(t, matches.SetResult("m1", match.Result{WinnerID: "p1", RatingDeltaA: 16, RatingDeltaB: -16}))

	require.NoError(t, p.NotifyResult("m1", false))

	require.Len(t, notif.SendResultCalls, 1)
	res := notif.SendResultCalls[0].Result
	assert.Equal(t, "Pebble Creek", res.CourseName)
	assert.Equal(t, 72, res.ScoreA)
	assert.Equal(t, 90, res.ScoreB)
	assert.Equal(t, 0, res.ToParA)
	assert.Equal(t, 18, res.ToParB)
	assert.Equal(t, 16, res.RatingDeltaA)

	got, err := matches.GetMatch("m1")
	require.NoError(t, err)
	assert.NotZero(t, got.ResultNotifiedTS)
}
