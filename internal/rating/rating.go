// Package rating implements the Elo-style rating calculation used to rank
// players. All functions are pure: they take ratings in, return deltas or
// updated snapshots out, and never touch storage.
package rating

import (
	"math"
	"time"
)

const (
	// DefaultK is the conventional sensitivity constant. A single match can
	// move a rating by at most K points.
	DefaultK = 32

	// InitialRating is assigned to a player before their first rated match.
	InitialRating = 1200
)

// Calculator computes rating changes for two-player match outcomes.
// The zero value is not usable; construct with New.
type Calculator struct {
	k float64
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithKFactor overrides the default K sensitivity constant.
func WithKFactor(k float64) Option {
	return func(c *Calculator) {
		if k > 0 {
			c.k = k
		}
	}
}

// New creates a Calculator with K=32 unless overridden.
func New(opts ...Option) *Calculator {
	c := &Calculator{k: DefaultK}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// expectedScore is the logistic win probability of a player rated `rating`
// against an opponent rated `opponent`.
func expectedScore(rating, opponent int) float64 {
	return 1.0 / (1.0 + math.Pow(10, float64(opponent-rating)/400.0))
}

// ComputeRatingChange returns the integer rating delta for the player given
// the match outcome. Deltas are rounded half away from zero (math.Round),
// so the two players' deltas are not guaranteed to sum to exactly zero.
// That rounding asymmetry is an accepted property, not a bug.
func (c *Calculator) ComputeRatingChange(playerRating, opponentRating int, outcome Outcome) int {
	expected := expectedScore(playerRating, opponentRating)
	return int(math.Round(c.k * (outcome.Score() - expected)))
}

// Preview holds the three possible deltas for a match before it is played.
type Preview struct {
	WinDelta  int `json:"win_delta"`
	DrawDelta int `json:"draw_delta"`
	LossDelta int `json:"loss_delta"`
}

// PreviewOutcomes computes all three possible deltas without committing any
// change. Used to show "if you win: +N / if you lose: -M" before a match.
func (c *Calculator) PreviewOutcomes(playerRating, opponentRating int) Preview {
	return Preview{
		WinDelta:  c.ComputeRatingChange(playerRating, opponentRating, OutcomeWin),
		DrawDelta: c.ComputeRatingChange(playerRating, opponentRating, OutcomeDraw),
		LossDelta: c.ComputeRatingChange(playerRating, opponentRating, OutcomeLoss),
	}
}

// ApplyMatchResult produces a new PlayerRating with the outcome applied:
// one history entry appended, current/highest rating and counters updated.
// The input is never mutated; the history slice is copied so the returned
// snapshot does not alias the old one. No floor is applied to the new
// rating; it may go negative over many losses.
func (c *Calculator) ApplyMatchResult(pr PlayerRating, outcome MatchOutcome) PlayerRating {
	delta := c.ComputeRatingChange(pr.Rating, outcome.OpponentRating, outcome.Outcome)

	ts := outcome.Timestamp
	if ts == 0 {
		ts = time.Now().Unix()
	}

	event := Event{
		OpponentRating: outcome.OpponentRating,
		Outcome:        outcome.Outcome,
		Delta:          delta,
		NewRating:      pr.Rating + delta,
		Timestamp:      ts,
	}

	updated := pr
	updated.Rating = event.NewRating
	if updated.Rating > updated.HighestRating {
		updated.HighestRating = updated.Rating
	}
	updated.MatchesPlayed++
	if outcome.Outcome == OutcomeWin {
		updated.Wins++
	}

	updated.History = make([]Event, 0, len(pr.History)+1)
	updated.History = append(updated.History, pr.History...)
	updated.History = append(updated.History, event)

	return updated
}
