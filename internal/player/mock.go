package player

import (
	"sync"

	"github.com/rounds-golf/rounds-server/internal/rating"
)

// MockStore is a mock implementation of the PlayerStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	AddPlayerFunc            func(playerID, name string)
	UpsertPlayersFunc        func(players []PlayerInfo) error
	IsKnownPlayerFunc        func(playerID string) bool
	GetPlayerFunc            func(playerID string) (*PlayerInfo, error)
	GetAllPlayersFunc        func() ([]PlayerInfo, error)
	SearchPlayersFunc        func(query string) ([]PlayerInfo, error)
	GetRatingFunc            func(playerID string) (rating.PlayerRating, error)
	SaveRatingFunc           func(pr rating.PlayerRating, opponentID, matchID string) error
	RatingHistoryFunc        func(playerID string, limit int) ([]rating.Event, error)
	LeaderboardFunc          func() ([]LeaderboardEntry, error)
	GetPlayerStatsByNameFunc func(playerName string) (*LeaderboardEntry, error)
	ClearFunc                func()

	// Call records
	UpsertPlayersCalls [][]PlayerInfo
	SaveRatingCalls    []SaveRatingCall
	GetRatingCalls     []string
}

// SaveRatingCall holds the arguments for a call to SaveRating.
type SaveRatingCall struct {
	Rating     rating.PlayerRating
	OpponentID string
	MatchID    string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertPlayersCalls = nil
	m.SaveRatingCalls = nil
	m.GetRatingCalls = nil
}

func (m *MockStore) AddPlayer(playerID, name string) {
	if m.AddPlayerFunc != nil {
		m.AddPlayerFunc(playerID, name)
	}
}

func (m *MockStore) UpsertPlayers(players []PlayerInfo) error {
	m.mu.Lock()
	m.UpsertPlayersCalls = append(m.UpsertPlayersCalls, players)
	m.mu.Unlock()
	if m.UpsertPlayersFunc != nil {
		return m.UpsertPlayersFunc(players)
	}
	return nil
}

func (m *MockStore) IsKnownPlayer(playerID string) bool {
	if m.IsKnownPlayerFunc != nil {
		return m.IsKnownPlayerFunc(playerID)
	}
	return true
}

func (m *MockStore) GetPlayer(playerID string) (*PlayerInfo, error) {
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(playerID)
	}
	return &PlayerInfo{ID: playerID}, nil
}

func (m *MockStore) GetAllPlayers() ([]PlayerInfo, error) {
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) SearchPlayers(query string) ([]PlayerInfo, error) {
	if m.SearchPlayersFunc != nil {
		return m.SearchPlayersFunc(query)
	}
	return nil, nil
}

func (m *MockStore) GetRating(playerID string) (rating.PlayerRating, error) {
	m.mu.Lock()
	m.GetRatingCalls = append(m.GetRatingCalls, playerID)
	m.mu.Unlock()
	if m.GetRatingFunc != nil {
		return m.GetRatingFunc(playerID)
	}
	return rating.NewPlayerRating(playerID), nil
}

func (m *MockStore) SaveRating(pr rating.PlayerRating, opponentID, matchID string) error {
	m.mu.Lock()
	m.SaveRatingCalls = append(m.SaveRatingCalls, SaveRatingCall{Rating: pr, OpponentID: opponentID, MatchID: matchID})
	m.mu.Unlock()
	if m.SaveRatingFunc != nil {
		return m.SaveRatingFunc(pr, opponentID, matchID)
	}
	return nil
}

func (m *MockStore) RatingHistory(playerID string, limit int) ([]rating.Event, error) {
	if m.RatingHistoryFunc != nil {
		return m.RatingHistoryFunc(playerID, limit)
	}
	return nil, nil
}

func (m *MockStore) Leaderboard() ([]LeaderboardEntry, error) {
	if m.LeaderboardFunc != nil {
		return m.LeaderboardFunc()
	}
	return nil, nil
}

func (m *MockStore) GetPlayerStatsByName(playerName string) (*LeaderboardEntry, error) {
	if m.GetPlayerStatsByNameFunc != nil {
		return m.GetPlayerStatsByNameFunc(playerName)
	}
	return nil, nil
}

func (m *MockStore) Clear() {
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}
