package match

import (
	"database/sql"
	"sync"

	"github.com/rounds-golf/rounds-server/internal/scorecard"
)

// store handles all database operations for matches.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Status describes the lifecycle of a match itself.
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusLive      Status = "LIVE"
	StatusPlayed    Status = "PLAYED"
	StatusAbandoned Status = "ABANDONED"
)

// ProcessingStatus tracks how far the result pipeline has taken a
// played match.
type ProcessingStatus string

const (
	ProcessingNew             ProcessingStatus = "NEW"
	ProcessingScoresConfirmed ProcessingStatus = "SCORES_CONFIRMED"
	ProcessingRatingsUpdated  ProcessingStatus = "RATINGS_UPDATED"
	ProcessingResultNotified  ProcessingStatus = "RESULT_NOTIFIED"
	ProcessingCompleted       ProcessingStatus = "COMPLETED"
)

// Participant is one side of a match.
type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Match represents a two player round on a course.
type Match struct {
	ID               string           `json:"id"`
	CourseID         string           `json:"course_id"`
	PlayerA          Participant      `json:"player_a"`
	PlayerB          Participant      `json:"player_b"`
	ScheduledAt      int64            `json:"scheduled_at"`
	StartedAt        int64            `json:"started_at,omitempty"`
	EndedAt          int64            `json:"ended_at,omitempty"`
	Status           Status           `json:"status"`
	ProcessingStatus ProcessingStatus `json:"processing_status"`

	// Card holds both players' hole scores. Player A is the card's
	// "current user" side.
	Card *scorecard.Card `json:"-"`

	WinnerID         string `json:"winner_id,omitempty"`
	Draw             bool   `json:"draw"`
	RatingDeltaA     int    `json:"rating_delta_a"`
	RatingDeltaB     int    `json:"rating_delta_b"`
	ResultNotifiedTS int64  `json:"result_notified_ts,omitempty"`
	CreatedAt        int64  `json:"created_at"`
}

// Result is the final outcome written back by the processor.
type Result struct {
	WinnerID     string
	Draw         bool
	RatingDeltaA int
	RatingDeltaB int
}
