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

type Server struct {
	Players        player.PlayerStore
	Matches        match.MatchStore
	Courses        course.CourseStore
	Matchmaking    matchmaking.MatchmakingService
	Scanner        scanner.ScannerClient
	Calc           *rating.Calculator
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Processor      *processor.Processor
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
