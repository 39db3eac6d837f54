package rating_test

import (
	"testing"

	"github.com/rounds-golf/rounds-server/internal/rating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewOutcomesEqualRatings(t *testing.T) {
	calc := rating.New()

	preview := calc.PreviewOutcomes(1200, 1200)
	assert.Equal(t, 16, preview.WinDelta)
	assert.Equal(t, 0, preview.DrawDelta)
	assert.Equal(t, -16, preview.LossDelta)
}

func TestComputeRatingChange(t *testing.T) {
	calc := rating.New()

	t.Run("draw at equal ratings produces no change", func(t *testing.T) {
		assert.Equal(t, 0, calc.ComputeRatingChange(1200, 1200, rating.OutcomeDraw))
	})

	t.Run("win is always positive against equal or stronger opponent", func(t *testing.T) {
		for _, opponent := range []int{1200, 1300, 1500, 2000, 2800} {
			delta := calc.ComputeRatingChange(1200, opponent, rating.OutcomeWin)
			assert.Greater(t, delta, 0, "opponent %d", opponent)
		}
	})

	t.Run("gain diminishes against much weaker opponents", func(t *testing.T) {
		vsEqual := calc.ComputeRatingChange(2000, 2000, rating.OutcomeWin)
		vsWeaker := calc.ComputeRatingChange(2000, 1400, rating.OutcomeWin)
		assert.Less(t, vsWeaker, vsEqual)
		assert.GreaterOrEqual(t, vsWeaker, 0)
	})

	t.Run("draw moves ratings when they differ", func(t *testing.T) {
		lower := calc.ComputeRatingChange(1200, 1400, rating.OutcomeDraw)
		higher := calc.ComputeRatingChange(1400, 1200, rating.OutcomeDraw)
		assert.Greater(t, lower, 0)
		assert.Less(t, higher, 0)
	})

	t.Run("deltas need not sum to zero after rounding", func(t *testing.T) {
		// Documented property: each side rounds independently, so the sum
		// can be off by one depending on where the halves fall.
		a := calc.ComputeRatingChange(1211, 1200, rating.OutcomeWin)
		b := calc.ComputeRatingChange(1200, 1211, rating.OutcomeLoss)
		assert.InDelta(t, 0, a+b, 1)
	})
}

func TestWithKFactor(t *testing.T) {
	calc := rating.New(rating.WithKFactor(16))

	preview := calc.PreviewOutcomes(1200, 1200)
	assert.Equal(t, 8, preview.WinDelta)
	assert.Equal(t, -8, preview.LossDelta)
}

func TestApplyMatchResult(t *testing.T) {
	calc := rating.New()

	t.Run("win appends history and updates counters", func(t *testing.T) {
		pr := rating.NewPlayerRating("p1")
		updated := calc.ApplyMatchResult(pr, rating.MatchOutcome{
			OpponentRating: 1200,
			Outcome:        rating.OutcomeWin,
			Timestamp:      1700000000,
		})

		assert.Equal(t, 1216, updated.Rating)
		assert.Equal(t, 1216, updated.HighestRating)
		assert.Equal(t, 1, updated.MatchesPlayed)
		assert.Equal(t, 1, updated.Wins)
		require.Len(t, updated.History, 1)
		assert.Equal(t, 16, updated.History[0].Delta)
		assert.Equal(t, 1216, updated.History[0].NewRating)
		assert.Equal(t, rating.OutcomeWin, updated.History[0].Outcome)
	})

	t.Run("input snapshot is never mutated", func(t *testing.T) {
		pr := rating.NewPlayerRating("p1")
		pr = calc.ApplyMatchResult(pr, rating.MatchOutcome{OpponentRating: 1200, Outcome: rating.OutcomeWin, Timestamp: 1})

		before := pr.Rating
		historyLen := len(pr.History)
		_ = calc.ApplyMatchResult(pr, rating.MatchOutcome{OpponentRating: 1300, Outcome: rating.OutcomeLoss, Timestamp: 2})

		assert.Equal(t, before, pr.Rating)
		assert.Len(t, pr.History, historyLen)
	})

	t.Run("current rating always equals last history entry", func(t *testing.T) {
		pr := rating.NewPlayerRating("p1")
		outcomes := []rating.MatchOutcome{
			{OpponentRating: 1250, Outcome: rating.OutcomeWin, Timestamp: 1},
			{OpponentRating: 1300, Outcome: rating.OutcomeLoss, Timestamp: 2},
			{OpponentRating: 1100, Outcome: rating.OutcomeDraw, Timestamp: 3},
			{OpponentRating: 1400, Outcome: rating.OutcomeWin, Timestamp: 4},
		}
		for _, o := range outcomes {
			pr = calc.ApplyMatchResult(pr, o)
			require.NotEmpty(t, pr.History)
			assert.Equal(t, pr.Rating, pr.History[len(pr.History)-1].NewRating)
		}
		assert.Equal(t, 4, pr.MatchesPlayed)
		assert.Equal(t, 2, pr.Wins)
	})

	t.Run("highest rating is retained after losses", func(t *testing.T) {
		pr := rating.NewPlayerRating("p1")
		pr = calc.ApplyMatchResult(pr, rating.MatchOutcome{OpponentRating: 1200, Outcome: rating.OutcomeWin, Timestamp: 1})
		peak := pr.HighestRating
		pr = calc.ApplyMatchResult(pr, rating.MatchOutcome{OpponentRating: 1200, Outcome: rating.OutcomeLoss, Timestamp: 2})
		assert.Less(t, pr.Rating, peak)
		assert.Equal(t, peak, pr.HighestRating)
	})

	t.Run("no floor is applied to the rating", func(t *testing.T) {
		pr := rating.PlayerRating{PlayerID: "p1", Rating: 3, HighestRating: 1200}
		pr = calc.ApplyMatchResult(pr, rating.MatchOutcome{OpponentRating: 3, Outcome: rating.OutcomeLoss, Timestamp: 1})
		assert.Negative(t, pr.Rating)
	})
}

func TestOutcomeInverse(t *testing.T) {
	assert.Equal(t, rating.OutcomeLoss, rating.OutcomeWin.Inverse())
	assert.Equal(t, rating.OutcomeWin, rating.OutcomeLoss.Inverse())
	assert.Equal(t, rating.OutcomeDraw, rating.OutcomeDraw.Inverse())
}
