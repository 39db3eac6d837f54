package pubsub

import (
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// MockPubSubClient is an in-memory PubSubClient for tests. Published
// messages are recorded instead of leaving the process, and incoming
// payloads decode the same way the real client decodes them. Safe for
// concurrent use.
type MockPubSubClient struct {
	mu sync.Mutex

	SendMessageFunc    func(topic EventType, data any) error
	ProcessMessageFunc func(data []byte, returnValue any) error

	SendMessageCalls    []SendMessageCall
	ProcessMessageCalls []ProcessMessageCall
}

// SendMessageCall records one SendMessage invocation.
type SendMessageCall struct {
	Topic string
	Data  any
}

// ProcessMessageCall records one ProcessMessage invocation.
type ProcessMessageCall struct {
	Data        []byte
	ReturnValue any
}

// NewMock creates a mock client. The projectID is accepted to mirror
// New but never used.
func NewMock(projectID string) *MockPubSubClient {
	return &MockPubSubClient{}
}

// Reset clears the recorded calls.
func (m *MockPubSubClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMessageCalls = nil
	m.ProcessMessageCalls = nil
}

func (m *MockPubSubClient) SendMessage(topic EventType, data any) error {
	m.mu.Lock()
	m.SendMessageCalls = append(m.SendMessageCalls, SendMessageCall{Topic: string(topic), Data: data})
	fn := m.SendMessageFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(topic, data)
	}
	return nil
}

// ProcessMessage records the call and decodes the MessagePack payload
// into returnValue, unless ProcessMessageFunc overrides it.
func (m *MockPubSubClient) ProcessMessage(data []byte, returnValue any) error {
	m.mu.Lock()
	m.ProcessMessageCalls = append(m.ProcessMessageCalls, ProcessMessageCall{Data: data, ReturnValue: returnValue})
	fn := m.ProcessMessageFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(data, returnValue)
	}
	return msgpack.Unmarshal(data, returnValue)
}
