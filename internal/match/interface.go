package match

// MatchStore defines the interface for match persistence.
type MatchStore interface {
	// CreateMatch persists the match with a freshly reset scorecard.
	// Any scores carried on the passed-in card are discarded.
	CreateMatch(m Match) error
	GetMatch(matchID string) (*Match, error)
	GetAllMatches() ([]Match, error)
	GetMatchesForProcessing() ([]Match, error)

	StartMatch(matchID string, startedAt int64) error
	// UpdateHoleScore records one hole score. forPlayerA selects which
	// side of the card is written. Hole numbers outside 1-18 are
	// rejected with scorecard.ErrInvalidHole.
	UpdateHoleScore(matchID string, hole, strokes int, forPlayerA bool) error
	// SubmitScores replaces both sides of the card in one write and
	// marks the match PLAYED.
	SubmitScores(matchID string, scoresA, scoresB []int, endedAt int64) error
	AbandonMatch(matchID string) error

	UpdateProcessingStatus(matchID string, status ProcessingStatus) error
	SetResult(matchID string, res Result) error
	MarkResultNotified(matchID string, ts int64) error

	Clear()
}
