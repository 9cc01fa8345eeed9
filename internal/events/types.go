// Package events carries change notifications: an in-process latest-value
// hub for live queries, and a client for the cross-process event daemon.
package events

import "time"

// ProtocolVersion is stamped on every wire message.
const ProtocolVersion = 1

// EventType indicates what kind of change occurred
type EventType string

const (
	EventItemsChanged EventType = "items_changed"
	EventPing         EventType = "ping"
	EventPong         EventType = "pong"
)

// Message types on the wire.
const (
	MessageEvent = "event"
	MessagePing  = "ping"
	MessagePong  = "pong"
)

// Event represents an item table change notification
type Event struct {
	Type       EventType
	Origin     string    // Identifies the publishing store so it can skip its own echo
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Assigned by the daemon, monotonically increasing
}

// Message wraps events and control messages for the wire protocol
type Message struct {
	Version int
	Type    string
	Event   *Event `json:",omitempty"`
}
