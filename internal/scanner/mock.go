package scanner

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of ScannerClient for testing.
type MockClient struct {
	mu sync.Mutex

	ExtractScoresFunc func(ctx context.Context, imageBase64 string, expectedHoles int) (*ExtractResponse, error)
	HealthFunc        func(ctx context.Context) (*HealthResponse, error)

	// Call records
	ExtractScoresCalls []ExtractScoresCall
}

// ExtractScoresCall holds the arguments for a call to ExtractScores.
type ExtractScoresCall struct {
	ImageBase64   string
	ExpectedHoles int
}

// NewMock creates a new mock instance.
func NewMock() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ExtractScoresCalls = nil
}

func (m *MockClient) ExtractScores(ctx context.Context, imageBase64 string, expectedHoles int) (*ExtractResponse, error) {
	m.mu.Lock()
	m.ExtractScoresCalls = append(m.ExtractScoresCalls, ExtractScoresCall{ImageBase64: imageBase64, ExpectedHoles: expectedHoles})
	m.mu.Unlock()
	if m.ExtractScoresFunc != nil {
		return m.ExtractScoresFunc(ctx, imageBase64, expectedHoles)
	}
	return &ExtractResponse{Success: true, HolesFound: expectedHoles}, nil
}

func (m *MockClient) Health(ctx context.Context) (*HealthResponse, error) {
	if m.HealthFunc != nil {
		return m.HealthFunc(ctx)
	}
	return &HealthResponse{Status: "healthy", Message: "EasyOCR server is running"}, nil
}
