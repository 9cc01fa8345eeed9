package events

import (
	"context"
	"errors"
	"sync"
)

// ErrHubClosed is returned when subscribing to a closed Hub.
var ErrHubClosed = errors.New("hub closed")

// Hub fans values out to any number of in-process subscribers.
//
// Every subscriber channel holds at most one value. A slow subscriber never
// blocks Publish: its pending value is replaced, so it always ends up holding
// the most recent one.
type Hub[T any] struct {
	mu     sync.Mutex
	subs   map[chan T]struct{}
	closed bool
	done   chan struct{}
}

// NewHub creates an empty Hub.
func NewHub[T any]() *Hub[T] {
	return &Hub[T]{
		subs: make(map[chan T]struct{}),
		done: make(chan struct{}),
	}
}

// Subscribe registers a subscriber whose channel already holds initial.
// The channel is closed once ctx is done or the hub is closed.
func (h *Hub[T]) Subscribe(ctx context.Context, initial T) (<-chan T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHubClosed
	}

	ch := make(chan T, 1)
	ch <- initial
	h.subs[ch] = struct{}{}

	go func() {
		select {
		case <-ctx.Done():
			h.unsubscribe(ch)
		case <-h.done:
		}
	}()

	return ch, nil
}

func (h *Hub[T]) unsubscribe(ch chan T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[ch]; !ok {
		return
	}
	delete(h.subs, ch)
	close(ch)
}

// Publish delivers v to every subscriber, replacing any value a subscriber
// has not consumed yet. Publishing to a closed hub is a no-op.
func (h *Hub[T]) Publish(v T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- v:
			continue
		default:
		}
		// Drop the stale value; only Publish sends, and it holds the lock
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}

// Len returns the number of active subscribers.
func (h *Hub[T]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close closes every subscriber channel. Later Subscribe calls fail.
func (h *Hub[T]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	close(h.done)
	for ch := range h.subs {
		delete(h.subs, ch)
		close(ch)
	}
}
