package http

import (
	"net/http"

	"github.com/rounds-golf/rounds-server/internal/config"
	"github.com/rounds-golf/rounds-server/internal/course"
	"github.com/rounds-golf/rounds-server/internal/match"
	"github.com/rounds-golf/rounds-server/internal/matchmaking"
	"github.com/rounds-golf/rounds-server/internal/metrics"
	"github.com/rounds-golf/rounds-server/internal/notifier"
	"github.com/rounds-golf/rounds-server/internal/player"
	"github.com/rounds-golf/rounds-server/internal/processor"
	"github.com/rounds-golf/rounds-server/internal/pubsub"
	"github.com/rounds-golf/rounds-server/internal/rating"
	"github.com/rounds-golf/rounds-server/internal/scanner"
)

func NewServer(
	players player.PlayerStore,
	matches match.MatchStore,
	courses course.CourseStore,
	queue matchmaking.MatchmakingService,
	scannerClient scanner.ScannerClient,
	calc *rating.Calculator,
	metricsSvc metrics.Metrics,
	metricsHandler http.Handler,
	cfg config.Config,
	notifier notifier.Notifier,
	processor *processor.Processor,
	pubsub pubsub.PubSubClient,
) *Server {
	server := &Server{
		Players:        players,
		Matches:        matches,
		Courses:        courses,
		Matchmaking:    queue,
		Scanner:        scannerClient,
		Calc:           calc,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Processor:      processor,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))

	s.Router.Handle("/players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("/players/search", Chain(s.SearchPlayersHandler(), paramsMiddleware))
	s.Router.Handle("/leaderboard", Chain(s.LeaderboardHandler(), paramsMiddleware))
	s.Router.Handle("/rating/preview", Chain(s.RatingPreviewHandler(), paramsMiddleware))
	s.Router.Handle("/rating/history", Chain(s.RatingHistoryHandler(), paramsMiddleware))

	s.Router.Handle("/courses", Chain(s.CoursesHandler(), paramsMiddleware))

	s.Router.Handle("/matches", Chain(s.ListMatchesHandler(), paramsMiddleware))
	s.Router.Handle("/matches/create", Chain(s.CreateMatchHandler(), paramsMiddleware))
	s.Router.Handle("/matches/start", Chain(s.StartMatchHandler(), paramsMiddleware))
	s.Router.Handle("/matches/score", Chain(s.HoleScoreHandler(), paramsMiddleware))
	s.Router.Handle("/matches/state", Chain(s.MatchStateHandler(), paramsMiddleware))
	s.Router.Handle("/matches/submit", Chain(s.SubmitScoresHandler(), paramsMiddleware))
	s.Router.Handle("/matches/scan", Chain(s.ScanScorecardHandler(), paramsMiddleware))
	s.Router.Handle("/matches/abandon", Chain(s.AbandonMatchHandler(), paramsMiddleware))

	s.Router.Handle("/queue/join", Chain(s.JoinQueueHandler(), paramsMiddleware))
	s.Router.Handle("/queue/leave", Chain(s.LeaveQueueHandler(), paramsMiddleware))
	s.Router.Handle("/queue", Chain(s.QueueStatusHandler(), paramsMiddleware))
	s.Router.Handle("/queue/pair", Chain(s.PairQueueHandler(), paramsMiddleware))

	s.Router.Handle("/process", Chain(s.ProcessMatchesHandler(), paramsMiddleware))
	s.Router.Handle("/notify-result", Chain(s.NotifyResultHandler(), paramsMiddleware))

	s.Router.Handle("/slack/command/leaderboard", Chain(s.LeaderboardCommandHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/player-stats", Chain(s.PlayerStatsCommandHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
