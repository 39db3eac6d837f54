package scorecard_test

import (
	"testing"

	"github.com/rounds-golf/rounds-server/internal/scorecard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatPar is a course where every hole is a par 4.
func flatPar(int) int { return 4 }

func TestUpdateScoreAndTotals(t *testing.T) {
	card := scorecard.New()

	require.NoError(t, card.UpdateScore(1, 4, true))
	assert.Equal(t, 4, card.TotalScore(true))

	// Par so far counts only hole 1, not the full 18-hole par.
	assert.Equal(t, 4, card.TotalPar(true, flatPar))
	assert.Equal(t, 0, card.ScoreToPar(true, flatPar))

	// The opponent's side is untouched.
	assert.Equal(t, 0, card.TotalScore(false))
	assert.Equal(t, 0, card.TotalPar(false, flatPar))
}

func TestUpdateScoreOverwrites(t *testing.T) {
	card := scorecard.New()

	require.NoError(t, card.UpdateScore(3, 7, true))
	require.NoError(t, card.UpdateScore(3, 5, true))
	assert.Equal(t, 5, card.TotalScore(true))
	assert.Equal(t, 1, card.HolesPlayed(true))
}

func TestInvalidHoleLeavesStateUnchanged(t *testing.T) {
	card := scorecard.New()
	require.NoError(t, card.UpdateScore(1, 4, true))

	for _, hole := range []int{0, 19, -3, 100} {
		err := card.UpdateScore(hole, 4, true)
		require.Error(t, err, "hole %d", hole)
		assert.ErrorIs(t, err, scorecard.ErrInvalidHole)
	}
	assert.Equal(t, 4, card.TotalScore(true))
	assert.Equal(t, 1, card.HolesPlayed(true))
}

func TestIsCompleteAnyOrder(t *testing.T) {
	card := scorecard.New()

	// Fill 18 first, then 1..17: completion must not depend on entry order.
	require.NoError(t, card.UpdateScore(18, 4, true))
	assert.False(t, card.IsComplete(true))

	for hole := 1; hole < 18; hole++ {
		assert.False(t, card.IsComplete(true))
		require.NoError(t, card.UpdateScore(hole, 4, true))
	}
	assert.True(t, card.IsComplete(true))
	assert.False(t, card.IsComplete(false))
}

func TestReset(t *testing.T) {
	card := scorecard.New()
	for hole := 1; hole <= 18; hole++ {
		require.NoError(t, card.UpdateScore(hole, 4, true))
		require.NoError(t, card.UpdateScore(hole, 5, false))
	}
	require.True(t, card.IsComplete(true))

	card.Reset()

	assert.Equal(t, 0, card.TotalScore(true))
	assert.Equal(t, 0, card.TotalScore(false))
	assert.False(t, card.IsComplete(true))
	assert.False(t, card.IsComplete(false))
}

func TestScoreToPar(t *testing.T) {
	par := func(hole int) int {
		// Front nine par 4s, back nine par 3s.
		if hole <= 9 {
			return 4
		}
		return 3
	}

	card := scorecard.New()
	require.NoError(t, card.UpdateScore(1, 5, true))  // +1
	require.NoError(t, card.UpdateScore(10, 2, true)) // -1
	assert.Equal(t, 0, card.ScoreToPar(true, par))

	require.NoError(t, card.UpdateScore(2, 6, true)) // +2
	assert.Equal(t, 2, card.ScoreToPar(true, par))
}

func TestRestoreRoundTrip(t *testing.T) {
	card := scorecard.New()
	require.NoError(t, card.UpdateScore(1, 4, true))
	require.NoError(t, card.UpdateScore(7, 3, false))

	restored := scorecard.Restore(card.SideScores(true), card.SideScores(false))

	assert.Equal(t, card.TotalScore(true), restored.TotalScore(true))
	assert.Equal(t, card.TotalScore(false), restored.TotalScore(false))

	strokes, ok := restored.HoleScore(7, false)
	require.True(t, ok)
	assert.Equal(t, 3, strokes)
}

func TestFormatToPar(t *testing.T) {
	assert.Equal(t, "E", scorecard.FormatToPar(0))
	assert.Equal(t, "+3", scorecard.FormatToPar(3))
	assert.Equal(t, "-2", scorecard.FormatToPar(-2))
	assert.Equal(t, "+1", scorecard.FormatToPar(1))
}
