package player

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rounds-golf/rounds-server/internal/rating"
)

// New creates a new PlayerStore.
func New(db *sql.DB) PlayerStore {
	return &store{
		db: db,
	}
}

func (s *store) AddPlayer(playerID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM players WHERE id = ?)", playerID).Scan(&exists)
	if err != nil {
		log.Error("Failed to check if player exists", "error", err, "playerID", playerID)
		return
	}

	if !exists {
		_, err := s.db.Exec("INSERT INTO players (id, name, created_at) VALUES (?, ?, ?)", playerID, name, time.Now().Unix())
		if err != nil {
			log.Error("Failed to add player", "error", err, "playerID", playerID)
		} else {
			log.Info("Added new player to the store", "playerID", playerID, "name", name)
		}
	} else {
		_, err := s.db.Exec("UPDATE players SET name = ? WHERE id = ?", name, playerID)
		if err != nil {
			log.Error("Failed to update player", "error", err, "playerID", playerID)
		}
	}
}

// UpsertPlayers inserts or updates a batch of players in one transaction.
func (s *store) UpsertPlayers(players []PlayerInfo) error {
	if len(players) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO players (id, name, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name;
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for _, p := range players {
		if _, err := stmt.Exec(p.ID, p.Name, now); err != nil {
			return fmt.Errorf("failed to upsert player %s: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

func (s *store) IsKnownPlayer(playerID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM players WHERE id = ?)", playerID).Scan(&exists)
	if err != nil {
		log.Error("Failed to check if player exists", "error", err, "playerID", playerID)
		return false
	}
	return exists
}

func (s *store) GetPlayer(playerID string) (*PlayerInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p PlayerInfo
	err := s.db.QueryRow("SELECT id, name, created_at FROM players WHERE id = ?", playerID).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("player %s not found", playerID)
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return &p, nil
}

func (s *store) GetAllPlayers() ([]PlayerInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, created_at FROM players ORDER BY name")
	if err != nil {
		log.Error("Failed to query all players", "error", err)
		return nil, err
	}
	defer rows.Close()

	var players []PlayerInfo
	for rows.Next() {
		var p PlayerInfo
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, p)
	}
	return players, nil
}

// SearchPlayers performs a case-insensitive fuzzy search over player names
// (e.g. "mrtn" will match "Morten Voss"). Results are ordered best-first.
func (s *store) SearchPlayers(query string) ([]PlayerInfo, error) {
	players, err := s.GetAllPlayers()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(players))
	byName := make(map[string]PlayerInfo, len(players))
	for i, p := range players {
		names[i] = p.Name
		byName[p.Name] = p
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	matched := make([]PlayerInfo, 0, len(ranks))
	for _, r := range ranks {
		matched = append(matched, byName[r.Target])
	}
	return matched, nil
}

// GetRating returns the player's current rating snapshot with full history.
// A player with no rated matches gets the initial snapshot.
func (s *store) GetRating(playerID string) (rating.PlayerRating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pr := rating.NewPlayerRating(playerID)
	err := s.db.QueryRow(`
		SELECT rating, highest_rating, matches_played, wins
		FROM player_ratings WHERE player_id = ?
	`, playerID).Scan(&pr.Rating, &pr.HighestRating, &pr.MatchesPlayed, &pr.Wins)
	if err != nil {
		if err == sql.ErrNoRows {
			return pr, nil
		}
		return pr, fmt.Errorf("failed to get rating for %s: %w", playerID, err)
	}

	history, err := s.ratingHistoryLocked(playerID, 0)
	if err != nil {
		return pr, err
	}
	pr.History = history
	return pr, nil
}

// SaveRating overwrites the rating row with the snapshot and appends its
// last history event. The snapshot must have been produced by
// rating.ApplyMatchResult, so its history is never empty.
func (s *store) SaveRating(pr rating.PlayerRating, opponentID, matchID string) error {
	if len(pr.History) == 0 {
		return fmt.Errorf("rating snapshot for %s has no history to append", pr.PlayerID)
	}
	last := pr.History[len(pr.History)-1]

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO player_ratings (player_id, rating, highest_rating, matches_played, wins)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(player_id) DO UPDATE SET
			rating = excluded.rating,
			highest_rating = excluded.highest_rating,
			matches_played = excluded.matches_played,
			wins = excluded.wins;
	`, pr.PlayerID, pr.Rating, pr.HighestRating, pr.MatchesPlayed, pr.Wins)
	if err != nil {
		return fmt.Errorf("failed to save rating for %s: %w", pr.PlayerID, err)
	}

	_, err = tx.Exec(`
		INSERT INTO rating_history (player_id, opponent_id, match_id, opponent_rating, outcome, delta, new_rating, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, pr.PlayerID, opponentID, matchID, last.OpponentRating, string(last.Outcome), last.Delta, last.NewRating, last.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to append rating history for %s: %w", pr.PlayerID, err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Saved rating", "playerID", pr.PlayerID, "rating", pr.Rating, "delta", last.Delta)
	return nil
}

func (s *store) RatingHistory(playerID string, limit int) ([]rating.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ratingHistoryLocked(playerID, limit)
}

func (s *store) ratingHistoryLocked(playerID string, limit int) ([]rating.Event, error) {
	query := `
		SELECT opponent_rating, outcome, delta, new_rating, created_at
		FROM rating_history
		WHERE player_id = ?
		ORDER BY created_at ASC, id ASC
	`
	args := []any{playerID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rating history: %w", err)
	}
	defer rows.Close()

	var events []rating.Event
	for rows.Next() {
		var ev rating.Event
		var outcome string
		if err := rows.Scan(&ev.OpponentRating, &outcome, &ev.Delta, &ev.NewRating, &ev.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan rating history row: %w", err)
		}
		ev.Outcome = rating.Outcome(outcome)
		events = append(events, ev)
	}
	return events, nil
}

func (s *store) Leaderboard() ([]LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT
			p.id,
			p.name,
			COALESCE(pr.rating, 1200),
			COALESCE(pr.highest_rating, 1200),
			COALESCE(pr.matches_played, 0),
			COALESCE(pr.wins, 0)
		FROM players p
		LEFT JOIN player_ratings pr ON p.id = pr.player_id
		ORDER BY COALESCE(pr.rating, 1200) DESC, p.name ASC;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		err := rows.Scan(&e.PlayerID, &e.PlayerName, &e.Rating, &e.HighestRating, &e.MatchesPlayed, &e.Wins)
		if err != nil {
			return nil, err
		}
		if e.MatchesPlayed > 0 {
			e.WinPercentage = (float64(e.Wins) / float64(e.MatchesPlayed)) * 100
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// GetPlayerStatsByName retrieves leaderboard stats for a single player by
// name. It performs a case-insensitive, fuzzy search (e.g. "morten" will
// match "Morten Voss").
func (s *store) GetPlayerStatsByName(playerName string) (*LeaderboardEntry, error) {
	entries, err := s.Leaderboard()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.PlayerName
	}

	ranks := fuzzy.RankFindNormalizedFold(playerName, names)
	if len(ranks) == 0 {
		log.Info("No stats found for player matching query", "query", playerName)
		return nil, fmt.Errorf("player matching '%s' not found", playerName)
	}
	sort.Sort(ranks)

	for _, e := range entries {
		if e.PlayerName == ranks[0].Target {
			log.Debug("Found player stats by name", "player", e.PlayerName)
			return &e, nil
		}
	}
	return nil, fmt.Errorf("player matching '%s' not found", playerName)
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}
	defer tx.Rollback()

	for _, table := range []string{"rating_history", "player_ratings", "players"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "table", table, "error", err)
			return
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}
