package notifier

import (
	"sync"

	"github.com/rounds-golf/rounds-server/internal/match"
	"github.com/rounds-golf/rounds-server/internal/player"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendMatchScheduledCalls []struct{ Match *match.Match }
	SendResultCalls         []struct{ Result *ResultNotification }
	SendLeaderboardCalls    [][]player.LeaderboardEntry
	SendPlayerStatsCalls    []struct {
		Stats *player.LeaderboardEntry
		Query string
	}
	SendPlayerNotFoundCalls []string

	// Spies for format functions
	FormatLeaderboardResponseFunc    func(entries []player.LeaderboardEntry) (any, error)
	FormatPlayerStatsResponseFunc    func(stats *player.LeaderboardEntry, query string) (any, error)
	FormatPlayerNotFoundResponseFunc func(query string) (any, error)
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchScheduledCalls = nil
	m.SendResultCalls = nil
	m.SendLeaderboardCalls = nil
	m.SendPlayerStatsCalls = nil
	m.SendPlayerNotFoundCalls = nil
}

func (m *Mock) SendMatchScheduledNotification(mt *match.Match, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchScheduledCalls = append(m.SendMatchScheduledCalls, struct{ Match *match.Match }{mt})
	return nil
}

func (m *Mock) SendResultNotification(res *ResultNotification, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultCalls = append(m.SendResultCalls, struct{ Result *ResultNotification }{res})
	return nil
}

func (m *Mock) SendLeaderboard(entries []player.LeaderboardEntry, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, entries)
	return nil
}

func (m *Mock) SendPlayerStats(stats *player.LeaderboardEntry, query string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPlayerStatsCalls = append(m.SendPlayerStatsCalls, struct {
		Stats *player.LeaderboardEntry
		Query string
	}{stats, query})
	return nil
}

func (m *Mock) SendPlayerNotFound(query string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPlayerNotFoundCalls = append(m.SendPlayerNotFoundCalls, query)
	return nil
}

func (m *Mock) FormatLeaderboardResponse(entries []player.LeaderboardEntry) (any, error) {
	if m.FormatLeaderboardResponseFunc != nil {
		return m.FormatLeaderboardResponseFunc(entries)
	}
	return nil, nil
}

func (m *Mock) FormatPlayerStatsResponse(stats *player.LeaderboardEntry, query string) (any, error) {
	if m.FormatPlayerStatsResponseFunc != nil {
		return m.FormatPlayerStatsResponseFunc(stats, query)
	}
	return nil, nil
}

func (m *Mock) FormatPlayerNotFoundResponse(query string) (any, error) {
	if m.FormatPlayerNotFoundResponseFunc != nil {
		return m.FormatPlayerNotFoundResponseFunc(query)
	}
	return nil, nil
}
