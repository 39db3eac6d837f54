package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	processorRuns       int
	matchesProcessed    int
	processingDurations []float64
	ratingsUpdated      int
	scansRequested      int
	scansFailed         int
	slackNotifSent      int
	slackNotifFailed    int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		processingDurations: make([]float64, 0),
	}
}

func (m *Mock) IncProcessorRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processorRuns++
}

func (m *Mock) IncMatchesProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesProcessed++
}

func (m *Mock) ObserveProcessingDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processingDurations = append(m.processingDurations, duration)
}

func (m *Mock) IncRatingsUpdated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ratingsUpdated++
}

func (m *Mock) IncScansRequested() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scansRequested++
}

func (m *Mock) IncScansFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scansFailed++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// ProcessorRuns returns the number of times IncProcessorRuns was called.
func (m *Mock) ProcessorRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.processorRuns
}

// MatchesProcessed returns the number of times IncMatchesProcessed was called.
func (m *Mock) MatchesProcessed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesProcessed
}

// RatingsUpdated returns the number of times IncRatingsUpdated was called.
func (m *Mock) RatingsUpdated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ratingsUpdated
}

// ScansRequested returns the number of times IncScansRequested was called.
func (m *Mock) ScansRequested() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scansRequested
}

// ScansFailed returns the number of times IncScansFailed was called.
func (m *Mock) ScansFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scansFailed
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
