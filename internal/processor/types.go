package processor

import (
	"github.com/rounds-golf/rounds-server/internal/course"
	"github.com/rounds-golf/rounds-server/internal/match"
	"github.com/rounds-golf/rounds-server/internal/metrics"
	"github.com/rounds-golf/rounds-server/internal/player"
	"github.com/rounds-golf/rounds-server/internal/pubsub"
	"github.com/rounds-golf/rounds-server/internal/rating"
)

// Processor handles the business logic of advancing played matches
// through the result pipeline.
type Processor struct {
	matches  match.MatchStore
	players  player.PlayerStore
	courses  course.CourseStore
	calc     *rating.Calculator
	notifier Notifier
	metrics  metrics.Metrics
	pubsub   pubsub.PubSubClient
}
