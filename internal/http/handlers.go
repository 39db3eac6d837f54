package http

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/rounds-golf/rounds-server/internal/course"
	"github.com/rounds-golf/rounds-server/internal/match"
	"github.com/rounds-golf/rounds-server/internal/scorecard"
	"github.com/slack-go/slack"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear entire store")
		s.Matches.Clear()
		s.Matchmaking.Clear()
		s.Courses.Clear()
		s.Players.Clear()
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
		log.Info("Store cleared successfully")
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Players.GetAllPlayers()
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			log.Error("Failed to get players from store", "error", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(players); err != nil {
			log.Error("Failed to write response", "error", err)
		}
	}
}

func (s *Server) SearchPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			http.Error(w, "Query parameter 'q' is required", http.StatusBadRequest)
			return
		}

		players, err := s.Players.SearchPlayers(query)
		if err != nil {
			http.Error(w, "Failed to search players", http.StatusInternalServerError)
			log.Error("Failed to search players", "error", err, "query", query)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(players); err != nil {
			log.Error("Failed to write response", "error", err)
		}
	}
}

// LeaderboardHandler returns a handler that serves the rating leaderboard.
func (s *Server) LeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := s.Players.Leaderboard()
		if err != nil {
			http.Error(w, "Failed to get leaderboard", http.StatusInternalServerError)
			log.Error("Failed to get leaderboard from store", "error", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			log.Error("Failed to encode leaderboard to JSON", "error", err)
		}
	}
}

// RatingHistoryHandler serves a player's chronological rating history.
// The 'limit' parameter caps how many events are returned.
func (s *Server) RatingHistoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.URL.Query().Get("playerID")
		if playerID == "" {
			http.Error(w, "Query parameter 'playerID' is required", http.StatusBadRequest)
			return
		}
		limit := parseIntParam(r, "limit", 0)

		history, err := s.Players.RatingHistory(playerID, limit)
		if err != nil {
			http.Error(w, "Failed to get rating history", http.StatusInternalServerError)
			log.Error("Failed to get rating history", "error", err, "playerID", playerID)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(history); err != nil {
			log.Error("Failed to write response", "error", err)
		}
	}
}

// RatingPreviewHandler shows what a player's rating would become on a
// win, draw or loss against a given opponent, before the match is played.
func (s *Server) RatingPreviewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.URL.Query().Get("player_id")
		opponentID := r.URL.Query().Get("opponent_id")
		if playerID == "" || opponentID == "" {
			http.Error(w, "Query parameters 'player_id' and 'opponent_id' are required", http.StatusBadRequest)
			return
		}

		prPlayer, err := s.Players.GetRating(playerID)
		if err != nil {
			http.Error(w, "Failed to get player rating", http.StatusInternalServerError)
			log.Error("Failed to get player rating", "error", err, "playerID", playerID)
			return
		}
		prOpponent, err := s.Players.GetRating(opponentID)
		if err != nil {
			http.Error(w, "Failed to get opponent rating", http.StatusInternalServerError)
			log.Error("Failed to get opponent rating", "error", err, "playerID", opponentID)
			return
		}

		preview := s.Calc.PreviewOutcomes(prPlayer.Rating, prOpponent.Rating)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(preview); err != nil {
			log.Error("Failed to encode rating preview to JSON", "error", err)
		}
	}
}

func (s *Server) CoursesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var c course.Course
			if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
				http.Error(w, "Invalid JSON", http.StatusBadRequest)
				return
			}
			if c.ID == "" {
				c.ID = uuid.New().String()
			}
			if err := s.Courses.UpsertCourse(c); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				log.Error("Failed to upsert course", "error", err)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(c)
		default:
			courses, err := s.Courses.GetAllCourses()
			if err != nil {
				http.Error(w, "Failed to get courses", http.StatusInternalServerError)
				log.Error("Failed to get courses from store", "error", err)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(courses); err != nil {
				log.Error("Failed to write response", "error", err)
			}
		}
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Matches.GetAllMatches()
		if err != nil {
			http.Error(w, "Failed to get matches", http.StatusInternalServerError)
			log.Error("Failed to get matches from store", "error", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(matches); err != nil {
			log.Error("Failed to encode matches to JSON", "error", err)
		}
	}
}

type createMatchRequest struct {
	CourseID    string `json:"course_id"`
	PlayerAID   string `json:"player_a_id"`
	PlayerBID   string `json:"player_b_id"`
	ScheduledAt int64  `json:"scheduled_at"`
}

func (s *Server) CreateMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.PlayerAID == "" || req.PlayerBID == "" {
			http.Error(w, "Both player IDs are required", http.StatusBadRequest)
			return
		}
		if req.PlayerAID == req.PlayerBID {
			http.Error(w, "A player cannot play against themselves", http.StatusBadRequest)
			return
		}

		m, err := s.createMatch(req.CourseID, req.PlayerAID, req.PlayerBID, req.ScheduledAt, isDryRunFromContext(r))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			log.Error("Failed to create match", "error", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(m)
	}
}

// createMatch builds and persists a match between two known players and
// sends the scheduled notification. Shared by the create endpoint and
// the matchmaking pairing endpoint.
func (s *Server) createMatch(courseID, playerAID, playerBID string, scheduledAt int64, dryRun bool) (*match.Match, error) {
	pA, err := s.Players.GetPlayer(playerAID)
	if err != nil {
		return nil, err
	}
	pB, err := s.Players.GetPlayer(playerBID)
	if err != nil {
		return nil, err
	}
	if courseID != "" {
		if _, err := s.Courses.GetCourse(courseID); err != nil {
			return nil, err
		}
	}
	if scheduledAt == 0 {
		scheduledAt = time.Now().Unix()
	}

	m := match.Match{
		ID:          uuid.New().String(),
		CourseID:    courseID,
		PlayerA:     match.Participant{ID: pA.ID, Name: pA.Name},
		PlayerB:     match.Participant{ID: pB.ID, Name: pB.Name},
		ScheduledAt: scheduledAt,
	}
	if !dryRun {
		if err := s.Matches.CreateMatch(m); err != nil {
			return nil, err
		}
	}
	if err := s.Notifier.SendMatchScheduledNotification(&m, dryRun); err != nil {
		log.Error("Failed to send match scheduled notification", "error", err, "matchID", m.ID)
	}
	return &m, nil
}

func (s *Server) StartMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.URL.Query().Get("matchID")
		if matchID == "" {
			http.Error(w, "Query parameter 'matchID' is required", http.StatusBadRequest)
			return
		}
		if err := s.Matches.StartMatch(matchID, time.Now().Unix()); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			log.Error("Failed to start match", "error", err, "matchID", matchID)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Match started.")
	}
}

type holeScoreRequest struct {
	MatchID    string `json:"match_id"`
	Hole       int    `json:"hole"`
	Strokes    int    `json:"strokes"`
	ForPlayerA bool   `json:"for_player_a"`
}

func (s *Server) HoleScoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req holeScoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		err := s.Matches.UpdateHoleScore(req.MatchID, req.Hole, req.Strokes, req.ForPlayerA)
		if err != nil {
			status := http.StatusInternalServerError
			if scorecard.CheckHole(req.Hole) != nil {
				status = http.StatusBadRequest
			}
			http.Error(w, err.Error(), status)
			log.Error("Failed to update hole score", "error", err, "matchID", req.MatchID, "hole", req.Hole)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Score recorded.")
	}
}

// matchStateResponse is the live view of a match: per-hole scores plus
// the derived running totals for both players.
type matchStateResponse struct {
	Match     *match.Match `json:"match"`
	ScoresA   []int        `json:"scores_a"`
	ScoresB   []int        `json:"scores_b"`
	TotalA    int          `json:"total_a"`
	TotalB    int          `json:"total_b"`
	ToParA    string       `json:"to_par_a"`
	ToParB    string       `json:"to_par_b"`
	HolesA    int          `json:"holes_played_a"`
	HolesB    int          `json:"holes_played_b"`
	CompleteA bool         `json:"complete_a"`
	CompleteB bool         `json:"complete_b"`
}

func (s *Server) MatchStateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.URL.Query().Get("matchID")
		if matchID == "" {
			http.Error(w, "Query parameter 'matchID' is required", http.StatusBadRequest)
			return
		}

		m, err := s.Matches.GetMatch(matchID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		par := func(hole int) int { return 0 }
		if m.CourseID != "" {
			if lookup, err := s.Courses.ParLookup(m.CourseID); err == nil {
				par = lookup
			}
		}

		resp := matchStateResponse{
			Match:     m,
			ScoresA:   m.Card.SideScores(true),
			ScoresB:   m.Card.SideScores(false),
			TotalA:    m.Card.TotalScore(true),
			TotalB:    m.Card.TotalScore(false),
			ToParA:    scorecard.FormatToPar(m.Card.ScoreToPar(true, par)),
			ToParB:    scorecard.FormatToPar(m.Card.ScoreToPar(false, par)),
			HolesA:    m.Card.HolesPlayed(true),
			HolesB:    m.Card.HolesPlayed(false),
			CompleteA: m.Card.IsComplete(true),
			CompleteB: m.Card.IsComplete(false),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Error("Failed to encode match state to JSON", "error", err)
		}
	}
}

type submitScoresRequest struct {
	MatchID string `json:"match_id"`
	ScoresA []int  `json:"scores_a"`
	ScoresB []int  `json:"scores_b"`
}

func (s *Server) SubmitScoresHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitScoresRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if err := s.Matches.SubmitScores(req.MatchID, req.ScoresA, req.ScoresB, time.Now().Unix()); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			log.Error("Failed to submit scores", "error", err, "matchID", req.MatchID)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Scores submitted.")
	}
}

type scanScorecardRequest struct {
	MatchID    string `json:"match_id"`
	Image      string `json:"image"` // base64 encoded photo
	ForPlayerA bool   `json:"for_player_a"`
}

// ScanScorecardHandler sends a scorecard photo to the OCR sidecar and,
// when a match is given, records the recognised scores on that side of
// the card.
func (s *Server) ScanScorecardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scanScorecardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Image == "" {
			http.Error(w, "Field 'image' is required", http.StatusBadRequest)
			return
		}

		s.Metrics.IncScansRequested()
		result, err := s.Scanner.ExtractScores(r.Context(), req.Image, scorecard.Holes)
		if err != nil {
			s.Metrics.IncScansFailed()
			http.Error(w, "Failed to scan scorecard", http.StatusBadGateway)
			log.Error("Failed to scan scorecard", "error", err, "matchID", req.MatchID)
			return
		}

		isDryRun := isDryRunFromContext(r)
		if req.MatchID != "" && !isDryRun {
			for i, strokes := range result.Scores {
				if i >= scorecard.Holes {
					break
				}
				if strokes <= 0 {
					continue
				}
				if err := s.Matches.UpdateHoleScore(req.MatchID, i+1, strokes, req.ForPlayerA); err != nil {
					http.Error(w, err.Error(), http.StatusBadRequest)
					log.Error("Failed to record scanned score", "error", err, "matchID", req.MatchID, "hole", i+1)
					return
				}
			}
			log.Info("Recorded scanned scores", "matchID", req.MatchID, "holesFound", result.HolesFound)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			log.Error("Failed to encode scan result to JSON", "error", err)
		}
	}
}

func (s *Server) AbandonMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.URL.Query().Get("matchID")
		if matchID == "" {
			http.Error(w, "Query parameter 'matchID' is required", http.StatusBadRequest)
			return
		}
		if err := s.Matches.AbandonMatch(matchID); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			log.Error("Failed to abandon match", "error", err, "matchID", matchID)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Match abandoned.")
	}
}

type joinQueueRequest struct {
	PlayerID string `json:"player_id"`
}

func (s *Server) JoinQueueHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req joinQueueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		p, err := s.Players.GetPlayer(req.PlayerID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		pr, err := s.Players.GetRating(req.PlayerID)
		if err != nil {
			http.Error(w, "Failed to get player rating", http.StatusInternalServerError)
			log.Error("Failed to get player rating", "error", err, "playerID", req.PlayerID)
			return
		}

		if err := s.Matchmaking.JoinQueue(p.ID, p.Name, pr.Rating); err != nil {
			http.Error(w, "Failed to join queue", http.StatusInternalServerError)
			log.Error("Failed to join queue", "error", err, "playerID", p.ID)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Joined queue.")
	}
}

func (s *Server) LeaveQueueHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req joinQueueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if err := s.Matchmaking.LeaveQueue(req.PlayerID); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Left queue.")
	}
}

func (s *Server) QueueStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := s.Matchmaking.QueueEntries()
		if err != nil {
			http.Error(w, "Failed to get queue", http.StatusInternalServerError)
			log.Error("Failed to get queue entries", "error", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			log.Error("Failed to write response", "error", err)
		}
	}
}

// PairQueueHandler runs one matchmaking pass. When a pair is found, a
// match between the two players is created on the given course.
func (s *Server) PairQueueHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pairing, err := s.Matchmaking.FindPairing(time.Now().Unix())
		if err != nil {
			http.Error(w, "Failed to find pairing", http.StatusInternalServerError)
			log.Error("Failed to find pairing", "error", err)
			return
		}
		if pairing == nil {
			w.WriteHeader(http.StatusOK)
			fmt.Fprintln(w, "No pairing available.")
			return
		}

		courseID := r.URL.Query().Get("courseID")
		m, err := s.createMatch(courseID, pairing.PlayerA.PlayerID, pairing.PlayerB.PlayerID, 0, isDryRunFromContext(r))
		if err != nil {
			http.Error(w, "Failed to create match from pairing", http.StatusInternalServerError)
			log.Error("Failed to create match from pairing", "error", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"pairing": pairing,
			"match":   m,
		})
	}
}

func (s *Server) ProcessMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Starting match processing...")
		isDryRun := isDryRunFromContext(r)

		s.Processor.ProcessMatches(isDryRun)

		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Match processing completed.")
		log.Info("Match processing finished.")
	}
}

// decodePubSubPush extracts the raw MessagePack payload from a pubsub
// push delivery: an outer JSON wrapper carrying base64 encoded data.
func decodePubSubPush(body io.Reader) ([]byte, error) {
	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	var pubsubMsg struct {
		Subscription string `json:"subscription"`
		Message      struct {
			Data string `json:"data"` // base64-encoded message payload
		} `json:"message"`
	}
	if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wrapper JSON: %w", err)
	}

	rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 data: %w", err)
	}
	return rawData, nil
}

func (s *Server) NotifyResultHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawData, err := decodePubSubPush(r.Body)
		if err != nil {
			log.Error("Failed to decode pubsub push", "error", err)
			http.Error(w, "Invalid pubsub push payload", http.StatusBadRequest)
			return
		}

		isDryRun := isDryRunFromContext(r)
		m := match.Match{}
		if err := s.pubsub.ProcessMessage(rawData, &m); err != nil {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}
		if err := s.Processor.NotifyResult(m.ID, isDryRun); err != nil {
			log.Error("Failed to notify result", "error", err, "matchID", m.ID)
			http.Error(w, "Failed to notify result", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// LeaderboardCommandHandler returns a handler for the /leaderboard Slack command.
func (s *Server) LeaderboardCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := s.Players.Leaderboard()
		if err != nil {
			http.Error(w, "Failed to get leaderboard", http.StatusInternalServerError)
			log.Error("Failed to get leaderboard from store", "error", err)
			return
		}

		msg, err := s.Notifier.FormatLeaderboardResponse(entries)
		if err != nil {
			http.Error(w, "Failed to format leaderboard", http.StatusInternalServerError)
			log.Error("Failed to format leaderboard", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}

		respondWithSlackMsg(w, slackMsg)
	}
}

// PlayerStatsCommandHandler returns a handler for the /player-stats Slack command.
func (s *Server) PlayerStatsCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		playerName := r.FormValue("text")
		if playerName == "" {
			http.Error(w, "Player name is required.", http.StatusBadRequest)
			return
		}

		log.Info("Received player stats command", "player", playerName)

		stats, err := s.Players.GetPlayerStatsByName(playerName)
		var msg any
		if err != nil {
			log.Warn("Could not find player stats", "player", playerName, "error", err)
			msg, err = s.Notifier.FormatPlayerNotFoundResponse(playerName)
		} else {
			msg, err = s.Notifier.FormatPlayerStatsResponse(stats, playerName)
		}

		if err != nil {
			http.Error(w, "Failed to format player stats", http.StatusInternalServerError)
			log.Error("Failed to format player stats", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}
		respondWithSlackMsg(w, slackMsg)
	}
}

// parseIntParam reads an integer query parameter with a fallback.
func parseIntParam(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn("Invalid integer parameter", "name", name, "value", v)
		return def
	}
	return n
}
