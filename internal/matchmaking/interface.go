package matchmaking

// MatchmakingService manages the rating-based matchmaking queue.
type MatchmakingService interface {
	// JoinQueue adds a player to the queue, or refreshes their rating
	// if they are already queued.
	JoinQueue(playerID, playerName string, rating int) error
	LeaveQueue(playerID string) error
	InQueue(playerID string) (bool, error)
	// QueueEntries returns all waiting players, longest waiting first.
	QueueEntries() ([]QueueEntry, error)
	// FindPairing picks the closest-rated pair whose rating gap fits
	// inside both players' wait windows, removes them from the queue
	// and returns the pairing. Returns nil when no pair qualifies.
	FindPairing(now int64) (*Pairing, error)
	Clear()
}
