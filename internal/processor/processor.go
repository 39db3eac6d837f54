package processor

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rounds-golf/rounds-server/internal/course"
	"github.com/rounds-golf/rounds-server/internal/match"
	"github.com/rounds-golf/rounds-server/internal/metrics"
	"github.com/rounds-golf/rounds-server/internal/notifier"
	"github.com/rounds-golf/rounds-server/internal/player"
	"github.com/rounds-golf/rounds-server/internal/pubsub"
	"github.com/rounds-golf/rounds-server/internal/rating"
)

// notifyWindow is how long after a match ends a result notification is
// still worth sending. Older matches are processed silently so historic
// data can be backfilled without spamming the channel.
const notifyWindow = 24 * time.Hour

// New creates a new Processor.
func New(
	matches match.MatchStore,
	players player.PlayerStore,
	courses course.CourseStore,
	calc *rating.Calculator,
	notifier Notifier,
	metrics metrics.Metrics,
	pubsub pubsub.PubSubClient,
) *Processor {
	return &Processor{
		matches:  matches,
		players:  players,
		courses:  courses,
		calc:     calc,
		notifier: notifier,
		metrics:  metrics,
		pubsub:   pubsub,
	}
}

// ProcessMatches fetches matches that need processing and advances them through the state machine.
func (p *Processor) ProcessMatches(dryRun bool) {
	log.Info("Starting match processing...")
	p.metrics.IncProcessorRuns()

	matches, err := p.matches.GetMatchesForProcessing()
	if err != nil {
		log.Error("Failed to get matches for processing", "error", err)
		return
	}

	if len(matches) == 0 {
		log.Info("No matches to process.")
		return
	}

	log.Info("Found matches to process", "count", len(matches))
	for i := range matches {
		startTime := time.Now()
		p.processMatch(&matches[i], dryRun)
		duration := time.Since(startTime).Milliseconds()
		p.metrics.ObserveProcessingDuration(float64(duration))
	}
	log.Info("Match processing finished.")
}

func (p *Processor) processMatch(m *match.Match, dryRun bool) {
	log.Info("Processing match", "matchID", m.ID, "initial_status", m.ProcessingStatus)
	for {
		currentState := m.ProcessingStatus
		log.Debug("Evaluating match state", "matchID", m.ID, "status", currentState)

		switch currentState {
		case match.ProcessingNew:
			// Scores are confirmed once both players have all 18 holes
			// recorded. Until then the match just waits here.
			if !m.Card.IsComplete(true) || !m.Card.IsComplete(false) {
				log.Info("Match scores are not complete yet. Waiting.",
					"matchID", m.ID,
					"holesA", m.Card.HolesPlayed(true),
					"holesB", m.Card.HolesPlayed(false))
				return
			}
			log.Info("Both scorecards complete. Confirming scores.", "matchID", m.ID)
			p.updateStatus(m, match.ProcessingScoresConfirmed, dryRun)

		case match.ProcessingScoresConfirmed:
			log.Info("Scores confirmed. Applying rating changes.", "matchID", m.ID)
			if err := p.applyRatings(m, dryRun); err != nil {
				log.Error("Failed to apply ratings", "error", err, "matchID", m.ID)
				return
			}
			p.updateStatus(m, match.ProcessingRatingsUpdated, dryRun)

		case match.ProcessingRatingsUpdated:
			timeEnded := time.Unix(m.EndedAt, 0)
			// Matches ended too long ago are processed without a
			// notification so historic imports stay quiet.
			if time.Since(timeEnded) < notifyWindow {
				log.Info("Ratings updated. Queuing result notification.", "matchID", m.ID)
				if !dryRun {
					if err := p.pubsub.SendMessage(pubsub.EventNotifyResult, m); err != nil {
						log.Error("Failed to publish result notification event", "error", err, "matchID", m.ID)
					}
				}
			} else {
				log.Info("Match ended too long ago. Skipping result notification.", "matchID", m.ID)
			}
			p.updateStatus(m, match.ProcessingResultNotified, dryRun)

		case match.ProcessingResultNotified:
			log.Info("Result handled. Marking match as complete.", "matchID", m.ID)
			p.updateStatus(m, match.ProcessingCompleted, dryRun)
			p.metrics.IncMatchesProcessed()

		case match.ProcessingCompleted:
			log.Debug("Match is complete. No further processing needed.", "matchID", m.ID)
			return // End of the line for this match

		default:
			log.Warn("Unknown processing status", "status", currentState, "matchID", m.ID)
			return // Exit if status is unknown
		}

		// If the status hasn't changed, we're done with this match for now.
		if m.ProcessingStatus == currentState {
			log.Debug("Match state did not change. Finished processing for now.", "matchID", m.ID, "status", currentState)
			break
		}
	}
	log.Info("Finished processing match", "matchID", m.ID, "final_status", m.ProcessingStatus)
}

func (p *Processor) updateStatus(m *match.Match, newStatus match.ProcessingStatus, dryRun bool) {
	if dryRun {
		log.Info("[Dry Run] Would update match status", "matchID", m.ID, "from", m.ProcessingStatus, "to", newStatus)
		m.ProcessingStatus = newStatus // Update in-memory for the loop
		return
	}

	err := p.matches.UpdateProcessingStatus(m.ID, newStatus)
	if err != nil {
		log.Error("Failed to update processing status", "error", err, "matchID", m.ID)
	} else {
		log.Debug("Successfully updated status", "matchID", m.ID, "from", m.ProcessingStatus, "to", newStatus)
		m.ProcessingStatus = newStatus // Keep the in-memory object in sync
	}
}

// applyRatings derives the outcome from the two completed cards, applies
// the rating change to both players and writes the result back to the
// match. Lower total strokes wins; equal totals are a draw.
func (p *Processor) applyRatings(m *match.Match, dryRun bool) error {
	totalA := m.Card.TotalScore(true)
	totalB := m.Card.TotalScore(false)

	outcomeA := rating.OutcomeDraw
	switch {
	case totalA < totalB:
		outcomeA = rating.OutcomeWin
	case totalA > totalB:
		outcomeA = rating.OutcomeLoss
	}
	outcomeB := outcomeA.Inverse()

	prA, err := p.players.GetRating(m.PlayerA.ID)
	if err != nil {
		return fmt.Errorf("failed to load rating for %s: %w", m.PlayerA.ID, err)
	}
	prB, err := p.players.GetRating(m.PlayerB.ID)
	if err != nil {
		return fmt.Errorf("failed to load rating for %s: %w", m.PlayerB.ID, err)
	}

	// Both changes are computed from the pre-match ratings before
	// either side is updated.
	newA := p.calc.ApplyMatchResult(prA, rating.MatchOutcome{
		OpponentRating: prB.Rating,
		Outcome:        outcomeA,
		Timestamp:      m.EndedAt,
	})
	newB := p.calc.ApplyMatchResult(prB, rating.MatchOutcome{
		OpponentRating: prA.Rating,
		Outcome:        outcomeB,
		Timestamp:      m.EndedAt,
	})

	deltaA := newA.Rating - prA.Rating
	deltaB := newB.Rating - prB.Rating

	res := match.Result{
		Draw:         outcomeA == rating.OutcomeDraw,
		RatingDeltaA: deltaA,
		RatingDeltaB: deltaB,
	}
	switch outcomeA {
	case rating.OutcomeWin:
		res.WinnerID = m.PlayerA.ID
	case rating.OutcomeLoss:
		res.WinnerID = m.PlayerB.ID
	}

	if dryRun {
		log.Info("[Dry Run] Would apply ratings",
			"matchID", m.ID, "winner", res.WinnerID, "deltaA", deltaA, "deltaB", deltaB)
		m.WinnerID = res.WinnerID
		m.Draw = res.Draw
		m.RatingDeltaA = deltaA
		m.RatingDeltaB = deltaB
		return nil
	}

	if err := p.players.SaveRating(newA, m.PlayerB.ID, m.ID); err != nil {
		return fmt.Errorf("failed to save rating for %s: %w", m.PlayerA.ID, err)
	}
	if err := p.players.SaveRating(newB, m.PlayerA.ID, m.ID); err != nil {
		return fmt.Errorf("failed to save rating for %s: %w", m.PlayerB.ID, err)
	}
	if err := p.matches.SetResult(m.ID, res); err != nil {
		return fmt.Errorf("failed to set match result: %w", err)
	}

	// Keep the in-memory match in sync for the rest of the loop.
	m.WinnerID = res.WinnerID
	m.Draw = res.Draw
	m.RatingDeltaA = deltaA
	m.RatingDeltaB = deltaB

	p.metrics.IncRatingsUpdated()
	log.Info("Applied ratings",
		"matchID", m.ID, "winner", res.WinnerID, "draw", res.Draw,
		"deltaA", deltaA, "deltaB", deltaB)
	return nil
}

// NotifyResult sends the result notification for a match. It is invoked
// by the pubsub push handler consuming the notify-result topic.
func (p *Processor) NotifyResult(matchID string, dryRun bool) error {
	m, err := p.matches.GetMatch(matchID)
	if err != nil {
		return err
	}

	courseName := ""
	par := func(hole int) int { return 0 }
	if c, err := p.courses.GetCourse(m.CourseID); err == nil {
		courseName = c.Name
		lookup, lerr := p.courses.ParLookup(m.CourseID)
		if lerr == nil {
			par = lookup
		}
	} else {
		log.Warn("Course not found for result notification", "courseID", m.CourseID, "matchID", m.ID)
	}

	prA, err := p.players.GetRating(m.PlayerA.ID)
	if err != nil {
		return err
	}
	prB, err := p.players.GetRating(m.PlayerB.ID)
	if err != nil {
		return err
	}

	res := &notifier.ResultNotification{
		Match:        m,
		CourseName:   courseName,
		ScoreA:       m.Card.TotalScore(true),
		ScoreB:       m.Card.TotalScore(false),
		ToParA:       m.Card.ScoreToPar(true, par),
		ToParB:       m.Card.ScoreToPar(false, par),
		RatingDeltaA: m.RatingDeltaA,
		RatingDeltaB: m.RatingDeltaB,
		NewRatingA:   prA.Rating,
		NewRatingB:   prB.Rating,
	}

	if err := p.notifier.SendResultNotification(res, dryRun); err != nil {
		return err
	}
	if !dryRun {
		if err := p.matches.MarkResultNotified(m.ID, time.Now().Unix()); err != nil {
			log.Error("Failed to mark result as notified", "error", err, "matchID", m.ID)
		}
	}
	return nil
}
