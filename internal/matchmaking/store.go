package matchmaking

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// NewStore creates a new matchmaking store.
func NewStore(db *sql.DB) MatchmakingService {
	return &store{
		db: db,
	}
}

func (s *store) JoinQueue(playerID, playerName string, rating int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO matchmaking_queue (player_id, player_name, rating, joined_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(player_id) DO UPDATE SET rating = excluded.rating;
	`, playerID, playerName, rating, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to join queue: %w", err)
	}

	log.Info("Player joined matchmaking queue", "playerID", playerID, "rating", rating)
	return nil
}

func (s *store) LeaveQueue(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM matchmaking_queue WHERE player_id = ?", playerID)
	if err != nil {
		return fmt.Errorf("failed to leave queue: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("player %s is not in the queue", playerID)
	}

	log.Info("Player left matchmaking queue", "playerID", playerID)
	return nil
}

func (s *store) InQueue(playerID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM matchmaking_queue WHERE player_id = ?)", playerID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check queue membership: %w", err)
	}
	return exists, nil
}

func (s *store) QueueEntries() ([]QueueEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queueEntriesLocked()
}

func (s *store) queueEntriesLocked() ([]QueueEntry, error) {
	rows, err := s.db.Query(`
		SELECT player_id, player_name, rating, joined_at
		FROM matchmaking_queue
		ORDER BY joined_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query queue: %w", err)
	}
	defer rows.Close()

	var entries []QueueEntry
	for rows.Next() {
		var e QueueEntry
		if err := rows.Scan(&e.PlayerID, &e.PlayerName, &e.Rating, &e.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan queue row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// FindPairing scans the queue for the pair with the smallest rating gap
// that fits inside both players' wait windows. Windows widen the longer
// a player has been waiting, so two distant ratings will eventually
// match rather than starve.
func (s *store) FindPairing(now int64) (*Pairing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.queueEntriesLocked()
	if err != nil {
		return nil, err
	}
	if len(entries) < 2 {
		return nil, nil
	}

	best := -1
	var bestA, bestB QueueEntry
	for i := 0; i < len(entries)-1; i++ {
		for j := i + 1; j < len(entries); j++ {
			gap := entries[i].Rating - entries[j].Rating
			if gap < 0 {
				gap = -gap
			}
			if gap > windowFor(entries[i].JoinedAt, now) || gap > windowFor(entries[j].JoinedAt, now) {
				continue
			}
			if best == -1 || gap < best {
				best = gap
				bestA, bestB = entries[i], entries[j]
			}
		}
	}
	if best == -1 {
		return nil, nil
	}

	if err := s.removePairLocked(bestA.PlayerID, bestB.PlayerID); err != nil {
		return nil, err
	}

	log.Info("Paired players from queue",
		"playerA", bestA.PlayerID, "playerB", bestB.PlayerID, "ratingGap", best)
	return &Pairing{PlayerA: bestA, PlayerB: bestB, RatingGap: best}, nil
}

func (s *store) removePairLocked(playerA, playerB string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, id := range []string{playerA, playerB} {
		if _, err := tx.Exec("DELETE FROM matchmaking_queue WHERE player_id = ?", id); err != nil {
			return fmt.Errorf("failed to dequeue player %s: %w", id, err)
		}
	}
	return tx.Commit()
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM matchmaking_queue"); err != nil {
		log.Error("Failed to clear matchmaking queue", "error", err)
	}
}
