package testutil

import (
	"context"
	"sync"

	"github.com/thenoetrevino/basket/internal/events"
)

// MockEventPublisher records published events for verification in tests.
type MockEventPublisher struct {
	mu sync.Mutex

	SentEvents []events.Event

	CloseCalled   bool
	ConnectCalled bool
	ListenCalled  bool

	// SendErr, when set, is returned by every SendEvent call.
	SendErr error
}

// NewMockEventPublisher creates a new mock event publisher.
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

// Connect is a no-op for the mock.
func (m *MockEventPublisher) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ConnectCalled = true
	return nil
}

// SendEvent records the event.
func (m *MockEventPublisher) SendEvent(event events.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SendErr != nil {
		return m.SendErr
	}
	m.SentEvents = append(m.SentEvents, event)
	return nil
}

// Listen returns a closed channel.
func (m *MockEventPublisher) Listen(ctx context.Context) (<-chan events.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListenCalled = true
	ch := make(chan events.Event)
	close(ch)
	return ch, nil
}

// Close marks the publisher as closed.
func (m *MockEventPublisher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCalled = true
	return nil
}

// Events returns a copy of everything sent so far.
func (m *MockEventPublisher) Events() []events.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]events.Event, len(m.SentEvents))
	copy(out, m.SentEvents)
	return out
}

// EventCount returns the total number of events sent.
func (m *MockEventPublisher) EventCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SentEvents)
}

var _ events.EventPublisher = (*MockEventPublisher)(nil)
