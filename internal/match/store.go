package match

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rounds-golf/rounds-server/internal/scorecard"
)

// New creates a new MatchStore.
func New(db *sql.DB) MatchStore {
	return &store{
		db: db,
	}
}

func (s *store) CreateMatch(m Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.Status == "" {
		m.Status = StatusScheduled
	}
	if m.ProcessingStatus == "" {
		m.ProcessingStatus = ProcessingNew
	}
	if m.CreatedAt == 0 {
		m.CreatedAt = time.Now().Unix()
	}

	// Every match starts from a blank card, regardless of what the
	// caller passed in. A stale card from a previous round must never
	// leak into a new match.
	card := scorecard.New()
	scoresA, scoresB, err := marshalCard(card)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO matches (
			id, course_id, player_a_id, player_a_name, player_b_id, player_b_name,
			scheduled_at, started_at, ended_at, status, processing_status,
			player_a_scores_json, player_b_scores_json,
			winner_id, draw, rating_delta_a, rating_delta_b, result_notified_ts, created_at
		) VALUES (?, NULLIF(?, ''), ?, ?, ?, ?, ?, 0, 0, ?, ?, ?, ?, '', 0, 0, 0, 0, ?)
	`, m.ID, m.CourseID, m.PlayerA.ID, m.PlayerA.Name, m.PlayerB.ID, m.PlayerB.Name,
		m.ScheduledAt, string(m.Status), string(m.ProcessingStatus), scoresA, scoresB, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create match %s: %w", m.ID, err)
	}
	log.Info("Created match", "matchID", m.ID, "playerA", m.PlayerA.Name, "playerB", m.PlayerB.Name)
	return nil
}

func (s *store) GetMatch(matchID string) (*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getMatchLocked(matchID)
}

func (s *store) getMatchLocked(matchID string) (*Match, error) {
	row := s.db.QueryRow(selectMatchSQL+" WHERE id = ?", matchID)
	m, err := scanMatch(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("match %s not found", matchID)
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return m, nil
}

func (s *store) GetAllMatches() ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryMatches(selectMatchSQL + " ORDER BY scheduled_at DESC")
}

// GetMatchesForProcessing returns played matches that the result
// pipeline has not finished with yet, oldest first.
func (s *store) GetMatchesForProcessing() ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryMatches(
		selectMatchSQL+" WHERE status = ? AND processing_status != ? ORDER BY ended_at ASC",
		string(StatusPlayed), string(ProcessingCompleted),
	)
}

func (s *store) StartMatch(matchID string, startedAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.execOnMatch(matchID,
		"UPDATE matches SET status = ?, started_at = ? WHERE id = ? AND status = ?",
		string(StatusLive), startedAt, matchID, string(StatusScheduled))
}

func (s *store) UpdateHoleScore(matchID string, hole, strokes int, forPlayerA bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.getMatchLocked(matchID)
	if err != nil {
		return err
	}

	if err := m.Card.UpdateScore(hole, strokes, forPlayerA); err != nil {
		return err
	}
	return s.writeCard(matchID, m.Card)
}

func (s *store) SubmitScores(matchID string, scoresA, scoresB []int, endedAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	card := scorecard.Restore(scoresA, scoresB)
	a, b, err := marshalCard(card)
	if err != nil {
		return err
	}

	return s.execOnMatch(matchID, `
		UPDATE matches SET
			player_a_scores_json = ?, player_b_scores_json = ?,
			status = ?, ended_at = ?
		WHERE id = ?
	`, a, b, string(StatusPlayed), endedAt, matchID)
}

func (s *store) AbandonMatch(matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.execOnMatch(matchID,
		"UPDATE matches SET status = ?, ended_at = ? WHERE id = ?",
		string(StatusAbandoned), time.Now().Unix(), matchID)
}

func (s *store) UpdateProcessingStatus(matchID string, status ProcessingStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.execOnMatch(matchID,
		"UPDATE matches SET processing_status = ? WHERE id = ?",
		string(status), matchID)
}

func (s *store) SetResult(matchID string, res Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.execOnMatch(matchID, `
		UPDATE matches SET winner_id = ?, draw = ?, rating_delta_a = ?, rating_delta_b = ?
		WHERE id = ?
	`, res.WinnerID, res.Draw, res.RatingDeltaA, res.RatingDeltaB, matchID)
}

func (s *store) MarkResultNotified(matchID string, ts int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.execOnMatch(matchID,
		"UPDATE matches SET result_notified_ts = ? WHERE id = ?", ts, matchID)
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		log.Error("Failed to clear matches", "error", err)
	}
}

// execOnMatch runs an UPDATE and errors if no row was touched.
func (s *store) execOnMatch(matchID, query string, args ...any) error {
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update match %s: %w", matchID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("match %s not found or not in expected state", matchID)
	}
	return nil
}

func (s *store) writeCard(matchID string, card *scorecard.Card) error {
	a, b, err := marshalCard(card)
	if err != nil {
		return err
	}
	return s.execOnMatch(matchID,
		"UPDATE matches SET player_a_scores_json = ?, player_b_scores_json = ? WHERE id = ?",
		a, b, matchID)
}

const selectMatchSQL = `
	SELECT
		id, COALESCE(course_id, ''), player_a_id, player_a_name, player_b_id, player_b_name,
		scheduled_at, started_at, ended_at, status, processing_status,
		player_a_scores_json, player_b_scores_json,
		winner_id, draw, rating_delta_a, rating_delta_b, result_notified_ts, created_at
	FROM matches
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (*Match, error) {
	var m Match
	var status, processing string
	var scoresA, scoresB string
	err := row.Scan(
		&m.ID, &m.CourseID, &m.PlayerA.ID, &m.PlayerA.Name, &m.PlayerB.ID, &m.PlayerB.Name,
		&m.ScheduledAt, &m.StartedAt, &m.EndedAt, &status, &processing,
		&scoresA, &scoresB,
		&m.WinnerID, &m.Draw, &m.RatingDeltaA, &m.RatingDeltaB, &m.ResultNotifiedTS, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Status = Status(status)
	m.ProcessingStatus = ProcessingStatus(processing)

	var a, b []int
	if err := json.Unmarshal([]byte(scoresA), &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player A scores for match %s: %w", m.ID, err)
	}
	if err := json.Unmarshal([]byte(scoresB), &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player B scores for match %s: %w", m.ID, err)
	}
	m.Card = scorecard.Restore(a, b)
	return &m, nil
}

func (s *store) queryMatches(query string, args ...any) ([]Match, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		matches = append(matches, *m)
	}
	return matches, nil
}

func marshalCard(card *scorecard.Card) (string, string, error) {
	a, err := json.Marshal(card.SideScores(true))
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal scores: %w", err)
	}
	b, err := json.Marshal(card.SideScores(false))
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal scores: %w", err)
	}
	return string(a), string(b), nil
}
