package rating

// Outcome is the result of a match from one player's perspective.
type Outcome string

const (
	OutcomeWin  Outcome = "WIN"
	OutcomeLoss Outcome = "LOSS"
	OutcomeDraw Outcome = "DRAW"
)

// Score maps an outcome to its actual-score value in the Elo formula.
func (o Outcome) Score() float64 {
	switch o {
	case OutcomeWin:
		return 1.0
	case OutcomeDraw:
		return 0.5
	default:
		return 0.0
	}
}

// Inverse returns the outcome from the opponent's perspective.
func (o Outcome) Inverse() Outcome {
	switch o {
	case OutcomeWin:
		return OutcomeLoss
	case OutcomeLoss:
		return OutcomeWin
	default:
		return OutcomeDraw
	}
}

// Event is one rating change in a player's history. The history is
// append-only and ordered by time; the player's current rating always equals
// NewRating of the last event.
type Event struct {
	OpponentRating int     `json:"opponent_rating"`
	Outcome        Outcome `json:"outcome"`
	Delta          int     `json:"delta"`
	NewRating      int     `json:"new_rating"`
	Timestamp      int64   `json:"timestamp"`
}

// PlayerRating is an immutable snapshot of a player's skill estimate.
// The surrounding store overwrites snapshots atomically, so ApplyMatchResult
// returns a new value instead of mutating in place.
type PlayerRating struct {
	PlayerID      string  `json:"player_id"`
	Rating        int     `json:"rating"`
	HighestRating int     `json:"highest_rating"`
	MatchesPlayed int     `json:"matches_played"`
	Wins          int     `json:"wins"`
	History       []Event `json:"history,omitempty"`
}

// NewPlayerRating is the snapshot a player has before any rated match.
func NewPlayerRating(playerID string) PlayerRating {
	return PlayerRating{
		PlayerID:      playerID,
		Rating:        InitialRating,
		HighestRating: InitialRating,
	}
}

// MatchOutcome describes the result of one completed match from the
// perspective of the player it is applied to. It is transient: consumed
// immediately to produce a PlayerRating mutation, never persisted itself.
type MatchOutcome struct {
	OpponentRating int
	Outcome        Outcome
	Timestamp      int64
}
