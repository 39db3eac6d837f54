package matchmaking_test

import (
	"testing"
	"time"

	"github.com/rounds-golf/rounds-server/internal/database"
	"github.com/rounds-golf/rounds-server/internal/matchmaking"
	"github.com/rounds-golf/rounds-server/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (matchmaking.MatchmakingService, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	// Queue entries reference the players table, so the players the
	// tests enqueue are registered first.
	players := player.New(db)
	players.AddPlayer("p1", "Alice")
	players.AddPlayer("p2", "Bob")
	players.AddPlayer("p3", "Carol")

	return matchmaking.NewStore(db), dbTeardown
}

func TestJoinAndLeaveQueue(t *testing.T) {
	svc, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, svc.JoinQueue("p1", "Alice", 1200))

	in, err := svc.InQueue("p1")
	require.NoError(t, err)
	assert.True(t, in)

	// Rejoining refreshes the rating instead of erroring.
	require.NoError(t, svc.JoinQueue("p1", "Alice", 1250))
	entries, err := svc.QueueEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1250, entries[0].Rating)

	require.NoError(t, svc.LeaveQueue("p1"))
	in, err = svc.InQueue("p1")
	require.NoError(t, err)
	assert.False(t, in)

	assert.Error(t, svc.LeaveQueue("p1"))
}

func TestFindPairingPicksClosestRatings(t *testing.T) {
	svc, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, svc.JoinQueue("p1", "Alice", 1200))
	require.NoError(t, svc.JoinQueue("p2", "Bob", 1290))
	require.NoError(t, svc.JoinQueue("p3", "Carol", 1210))

	pairing, err := svc.FindPairing(time.Now().Unix())
	require.NoError(t, err)
	require.NotNil(t, pairing)

	// Alice and Carol are 10 apart; Bob is left waiting.
	paired := map[string]bool{pairing.PlayerA.PlayerID: true, pairing.PlayerB.PlayerID: true}
	assert.True(t, paired["p1"])
	assert.True(t, paired["p3"])
	assert.Equal(t, 10, pairing.RatingGap)

	entries, err := svc.QueueEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "p2", entries[0].PlayerID)
}

func TestFindPairingRespectsWindow(t *testing.T) {
	svc, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, svc.JoinQueue("p1", "Alice", 1200))
	require.NoError(t, svc.JoinQueue("p2", "Bob", 1500))

	// 300 apart is outside the fresh window of 100.
	pairing, err := svc.FindPairing(time.Now().Unix())
	require.NoError(t, err)
	assert.Nil(t, pairing)

	// After enough waiting the window widens and the pair goes through.
	pairing, err = svc.FindPairing(time.Now().Unix()+10*60)
	require.NoError(t, err)
	require.NotNil(t, pairing)
	assert.Equal(t, 300, pairing.RatingGap)

	entries, err := svc.QueueEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFindPairingNeedsTwoPlayers(t *testing.T) {
	svc, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, svc.JoinQueue("p1", "Alice", 1200))

	pairing, err := svc.FindPairing(time.Now().Unix())
	require.NoError(t, err)
	assert.Nil(t, pairing)
}

func TestClearQueue(t *testing.T) {
	svc, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, svc.JoinQueue("p1", "Alice", 1200))
	svc.Clear()

	entries, err := svc.QueueEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
