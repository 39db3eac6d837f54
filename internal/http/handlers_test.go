package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rounds-golf/rounds-server/internal/config"
	"github.com/rounds-golf/rounds-server/internal/course"
	"github.com/rounds-golf/rounds-server/internal/database"
	"github.com/rounds-golf/rounds-server/internal/match"
	"github.com/rounds-golf/rounds-server/internal/matchmaking"
	"github.com/rounds-golf/rounds-server/internal/metrics"
	"github.com/rounds-golf/rounds-server/internal/notifier"
	"github.com/rounds-golf/rounds-server/internal/player"
	"github.com/rounds-golf/rounds-server/internal/processor"
	"github.com/rounds-golf/rounds-server/internal/pubsub"
	"github.com/rounds-golf/rounds-server/internal/rating"
	"github.com/rounds-golf/rounds-server/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

// setupTestServer initializes a new server with a test database and mock clients.
func setupTestServer(t *testing.T, notif notifier.Notifier, scannerClient scanner.ScannerClient) (*Server, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	players := player.New(db)
	matches := match.New(db)
	courses := course.New(db)
	queue := matchmaking.NewStore(db)
	cfg := config.Config{}
	calc := rating.New()

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)
	ps := pubsub.NewMock("TEST")
	proc := processor.New(matches, players, courses, calc, notif, metricsSvc, ps)

	server := NewServer(players, matches, courses, queue, scannerClient, calc, metricsSvc, metricsHandler, cfg, notif, proc, ps)

	return server, dbTeardown
}

func postJSON(t *testing.T, server *Server, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req, err := http.NewRequest("POST", path, bytes.NewReader(body))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)
	return rr
}

func TestHealthCheckHandler(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock(), scanner.NewMock())
	defer teardown()

	req, err := http.NewRequest("GET", "/health", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "handler returned wrong status code")
	assert.Equal(t, "OK!", rr.Body.String(), "handler returned unexpected body")
}

func TestCreateMatchHandler(t *testing.T) {
	notif := notifier.NewMock()
	server, teardown := setupTestServer(t, notif, scanner.NewMock())
	defer teardown()

	server.Players.AddPlayer("p1", "Alice")
	server.Players.AddPlayer("p2", "Bob")

	rr := postJSON(t, server, "/matches/create", createMatchRequest{
		PlayerAID: "p1", PlayerBID: "p2", ScheduledAt: time.Now().Unix(),
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var m match.Match
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m))
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "Alice", m.PlayerA.Name)

	require.Len(t, notif.SendMatchScheduledCalls, 1)

	// The created match starts with a blank card.
	got, err := server.Matches.GetMatch(m.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Card.HolesPlayed(true))
}

func TestCreateMatchHandlerRejectsSelfPlay(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock(), scanner.NewMock())
	defer teardown()

	server.Players.AddPlayer("p1", "Alice")

	rr := postJSON(t, server, "/matches/create", createMatchRequest{PlayerAID: "p1", PlayerBID: "p1"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateMatchHandlerUnknownPlayer(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock(), scanner.NewMock())
	defer teardown()

	server.Players.AddPlayer("p1", "Alice")

	rr := postJSON(t, server, "/matches/create", createMatchRequest{PlayerAID: "p1", PlayerBID: "ghost"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHoleScoreHandler(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock(), scanner.NewMock())
	defer teardown()

	server.Players.AddPlayer("p1", "Alice")
	server.Players.AddPlayer("p2", "Bob")
	require.NoError(t, server.Matches.CreateMatch(match.Match{
		ID:      "m1",
		PlayerA: match.Participant{ID: "p1", Name: "Alice"},
		PlayerB: match.Participant{ID: "p2", Name: "Bob"},
	}))

	rr := postJSON(t, server, "/matches/score", holeScoreRequest{MatchID: "m1", Hole: 3, Strokes: 4, ForPlayerA: true})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	// Invalid hole numbers are rejected with a 400.
	rr = postJSON(t, server, "/matches/score", holeScoreRequest{MatchID: "m1", Hole: 19, Strokes: 4, ForPlayerA: true})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	got, err := server.Matches.GetMatch("m1")
	require.NoError(t, err)
	assert.Equal(t, 4, got.Card.TotalScore(true))
}

func TestMatchStateHandler(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock(), scanner.NewMock())
	defer teardown()

	pars := make([]int, 18)
	for i := range pars {
		pars[i] = 4
	}
	require.NoError(t, server.Courses.UpsertCourse(course.Course{ID: "c1", Name: "Pebble Creek", Pars: pars}))

	server.Players.AddPlayer("p1", "Alice")
	server.Players.AddPlayer("p2", "Bob")
	require.NoError(t, server.Matches.CreateMatch(match.Match{
		ID:       "m1",
		CourseID: "c1",
		PlayerA:  match.Participant{ID: "p1", Name: "Alice"},
		PlayerB:  match.Participant{ID: "p2", Name: "Bob"},
	}))
	require.NoError(t, server.Matches.UpdateHoleScore("m1", 1, 5, true))
	require.NoError(t, server.Matches.UpdateHoleScore("m1", 2, 3, true))

	req, err := http.NewRequest("GET", "/matches/state?matchID=m1", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var state matchStateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.Equal(t, 8, state.TotalA)
	assert.Equal(t, 2, state.HolesA)
	// Par so far only counts the two holes with recorded scores.
	assert.Equal(t, "E", state.ToParA)
	assert.Equal(t, "E", state.ToParB)
	assert.False(t, state.CompleteA)
}

func TestRatingPreviewHandler(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock(), scanner.NewMock())
	defer teardown()

	server.Players.AddPlayer("p1", "Alice")
	server.Players.AddPlayer("p2", "Bob")

	req, err := http.NewRequest("GET", "/rating/preview?player_id=p1&opponent_id=p2", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var preview rating.Preview
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &preview))
	assert.Equal(t, 16, preview.WinDelta)
	assert.Equal(t, 0, preview.DrawDelta)
	assert.Equal(t, -16, preview.LossDelta)
}

func TestScanScorecardHandler(t *testing.T) {
	scores := []int{4, 5, 3, 4, 4, 5, 3, 4, 4, 4, 5, 3, 4, 4, 5, 3, 4, 4}
	mock := scanner.NewMock()
	mock.ExtractScoresFunc = func(ctx context.Context, imageBase64 string, expectedHoles int) (*scanner.ExtractResponse, error) {
		return &scanner.ExtractResponse{Success: true, Scores: scores, HolesFound: 18, Confidence: 0.9}, nil
	}
	server, teardown := setupTestServer(t, notifier.NewMock(), mock)
	defer teardown()

	server.Players.AddPlayer("p1", "Alice")
	server.Players.AddPlayer("p2", "Bob")
	require.NoError(t, server.Matches.CreateMatch(match.Match{
		ID:      "m1",
		PlayerA: match.Participant{ID: "p1", Name: "Alice"},
		PlayerB: match.Participant{ID: "p2", Name: "Bob"},
	}))

	rr := postJSON(t, server, "/matches/scan", scanScorecardRequest{MatchID: "m1", Image: "aW1hZ2U=", ForPlayerA: true})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	got, err := server.Matches.GetMatch("m1")
	require.NoError(t, err)
	assert.True(t, got.Card.IsComplete(true))
	assert.Equal(t, 72, got.Card.TotalScore(true))
}

func TestQueuePairingFlow(t *testing.T) {
	notif := notifier.NewMock()
	server, teardown := setupTestServer(t, notif, scanner.NewMock())
	defer teardown()

	server.Players.AddPlayer("p1", "Alice")
	server.Players.AddPlayer("p2", "Bob")

	rr := postJSON(t, server, "/queue/join", joinQueueRequest{PlayerID: "p1"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	rr = postJSON(t, server, "/queue/join", joinQueueRequest{PlayerID: "p2"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	req, err := http.NewRequest("POST", "/queue/pair", nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	server.Router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Pairing *matchmaking.Pairing `json:"pairing"`
		Match   *match.Match         `json:"match"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.NotNil(t, resp.Pairing)
	require.NotNil(t, resp.Match)
	assert.Equal(t, 0, resp.Pairing.RatingGap)
	require.Len(t, notif.SendMatchScheduledCalls, 1)

	// Both players are out of the queue once paired.
	entries, err := server.Matchmaking.QueueEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNotifyResultHandler(t *testing.T) {
	notif := notifier.NewMock()
	server, teardown := setupTestServer(t, notif, scanner.NewMock())
	defer teardown()

	server.Players.AddPlayer("p1", "Alice")
	server.Players.AddPlayer("p2", "Bob")
	require.NoError(t, server.Matches.CreateMatch(match.Match{
		ID:      "m1",
		PlayerA: match.Participant{ID: "p1", Name: "Alice"},
		PlayerB: match.Participant{ID: "p2", Name: "Bob"},
	}))

	// Simulate a pubsub push delivery: msgpack payload, base64 encoded,
	// wrapped in the push JSON envelope.
	payload, err := msgpack.Marshal(match.Match{ID: "m1"})
	require.NoError(t, err)
	push := map[string]any{
		"subscription": "test-sub",
		"message": map[string]any{
			"data": base64.StdEncoding.EncodeToString(payload),
		},
	}

	rr := postJSON(t, server, "/notify-result", push)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.Len(t, notif.SendResultCalls, 1)
	assert.Equal(t, "m1", notif.SendResultCalls[0].Result.Match.ID)
}

func TestProcessMatchesHandler(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock(), scanner.NewMock())
	defer teardown()

	req, err := http.NewRequest("POST", "/process", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestLeaderboardHandler(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock(), scanner.NewMock())
	defer teardown()

	server.Players.AddPlayer("p1", "Alice")

	req, err := http.NewRequest("GET", "/leaderboard", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var entries []player.LeaderboardEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, 1200, entries[0].Rating)
}
