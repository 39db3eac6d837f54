package match

import (
	"sync"

	"github.com/rounds-golf/rounds-server/internal/scorecard"
)

// MockStore is a mock implementation of the MatchStore interface for testing.
type MockStore struct {
	mu sync.Mutex

	CreateMatchFunc             func(m Match) error
	GetMatchFunc                func(matchID string) (*Match, error)
	GetAllMatchesFunc           func() ([]Match, error)
	GetMatchesForProcessingFunc func() ([]Match, error)
	StartMatchFunc              func(matchID string, startedAt int64) error
	UpdateHoleScoreFunc         func(matchID string, hole, strokes int, forPlayerA bool) error
	SubmitScoresFunc            func(matchID string, scoresA, scoresB []int, endedAt int64) error
	AbandonMatchFunc            func(matchID string) error
	UpdateProcessingStatusFunc  func(matchID string, status ProcessingStatus) error
	SetResultFunc               func(matchID string, res Result) error
	MarkResultNotifiedFunc      func(matchID string, ts int64) error

	// Call records
	CreateMatchCalls            []Match
	UpdateProcessingStatusCalls []ProcessingStatusCall
	SetResultCalls              []SetResultCall
	MarkResultNotifiedCalls     []string
}

// ProcessingStatusCall holds the arguments for a call to UpdateProcessingStatus.
type ProcessingStatusCall struct {
	MatchID string
	Status  ProcessingStatus
}

// SetResultCall holds the arguments for a call to SetResult.
type SetResultCall struct {
	MatchID string
	Result  Result
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateMatchCalls = nil
	m.UpdateProcessingStatusCalls = nil
	m.SetResultCalls = nil
	m.MarkResultNotifiedCalls = nil
}

func (m *MockStore) CreateMatch(match Match) error {
	m.mu.Lock()
	m.CreateMatchCalls = append(m.CreateMatchCalls, match)
	m.mu.Unlock()
	if m.CreateMatchFunc != nil {
		return m.CreateMatchFunc(match)
	}
	return nil
}

func (m *MockStore) GetMatch(matchID string) (*Match, error) {
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(matchID)
	}
	return &Match{ID: matchID, Card: scorecard.New()}, nil
}

func (m *MockStore) GetAllMatches() ([]Match, error) {
	if m.GetAllMatchesFunc != nil {
		return m.GetAllMatchesFunc()
	}
	return nil, nil
}

func (m *MockStore) GetMatchesForProcessing() ([]Match, error) {
	if m.GetMatchesForProcessingFunc != nil {
		return m.GetMatchesForProcessingFunc()
	}
	return nil, nil
}

func (m *MockStore) StartMatch(matchID string, startedAt int64) error {
	if m.StartMatchFunc != nil {
		return m.StartMatchFunc(matchID, startedAt)
	}
	return nil
}

func (m *MockStore) UpdateHoleScore(matchID string, hole, strokes int, forPlayerA bool) error {
	if m.UpdateHoleScoreFunc != nil {
		return m.UpdateHoleScoreFunc(matchID, hole, strokes, forPlayerA)
	}
	return nil
}

func (m *MockStore) SubmitScores(matchID string, scoresA, scoresB []int, endedAt int64) error {
	if m.SubmitScoresFunc != nil {
		return m.SubmitScoresFunc(matchID, scoresA, scoresB, endedAt)
	}
	return nil
}

func (m *MockStore) AbandonMatch(matchID string) error {
	if m.AbandonMatchFunc != nil {
		return m.AbandonMatchFunc(matchID)
	}
	return nil
}

func (m *MockStore) UpdateProcessingStatus(matchID string, status ProcessingStatus) error {
	m.mu.Lock()
	m.UpdateProcessingStatusCalls = append(m.UpdateProcessingStatusCalls, ProcessingStatusCall{MatchID: matchID, Status: status})
	m.mu.Unlock()
	if m.UpdateProcessingStatusFunc != nil {
		return m.UpdateProcessingStatusFunc(matchID, status)
	}
	return nil
}

func (m *MockStore) SetResult(matchID string, res Result) error {
	m.mu.Lock()
	m.SetResultCalls = append(m.SetResultCalls, SetResultCall{MatchID: matchID, Result: res})
	m.mu.Unlock()
	if m.SetResultFunc != nil {
		return m.SetResultFunc(matchID, res)
	}
	return nil
}

func (m *MockStore) MarkResultNotified(matchID string, ts int64) error {
	m.mu.Lock()
	m.MarkResultNotifiedCalls = append(m.MarkResultNotifiedCalls, matchID)
	m.mu.Unlock()
	if m.MarkResultNotifiedFunc != nil {
		return m.MarkResultNotifiedFunc(matchID, ts)
	}
	return nil
}

func (m *MockStore) Clear() {}
