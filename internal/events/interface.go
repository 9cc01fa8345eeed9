package events

import "context"

// ChangeNotifier announces that this process changed the item list.
type ChangeNotifier interface {
	SendEvent(event Event) error
}

// ChangeListener delivers item list changes made by other processes.
type ChangeListener interface {
	Listen(ctx context.Context) (<-chan Event, error)
}

// EventPublisher is a connection to the event daemon. The store notifies
// through it and the app follows remote changes from it.
type EventPublisher interface {
	ChangeNotifier
	ChangeListener
	Connect(ctx context.Context) error
	Close() error
}

var _ EventPublisher = (*Client)(nil)
