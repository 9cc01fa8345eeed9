package daemon

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// Metrics counts what the daemon relays. Safe for concurrent use.
type Metrics struct {
	changesReceived atomic.Int64 // items_changed events published by clients
	broadcasts      atomic.Int64 // changes fanned out, one per sequence id
	queued          atomic.Int64 // messages handed to client writers, pings included
	dropped         atomic.Int64 // changes skipped because a client queue was full
	clients         atomic.Int32

	started time.Time
}

// NewMetrics starts the uptime clock.
func NewMetrics() *Metrics {
	return &Metrics{started: time.Now()}
}

func (m *Metrics) changeReceived() { m.changesReceived.Add(1) }
func (m *Metrics) broadcast()      { m.broadcasts.Add(1) }
func (m *Metrics) messageQueued()  { m.queued.Add(1) }
func (m *Metrics) changeDropped()  { m.dropped.Add(1) }

func (m *Metrics) setClients(n int) {
	m.clients.Store(int32(n))
}

// Clients is the number of connected basket processes.
func (m *Metrics) Clients() int {
	return int(m.clients.Load())
}

// MetricsSnapshot is a point-in-time copy of the counters.
type MetricsSnapshot struct {
	ChangesReceived int64         `json:"changes_received"`
	Broadcasts      int64         `json:"broadcasts"`
	MessagesQueued  int64         `json:"messages_queued"`
	ChangesDropped  int64         `json:"changes_dropped"`
	Clients         int           `json:"clients"`
	Uptime          time.Duration `json:"uptime"`
}

// Snapshot copies the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		ChangesReceived: m.changesReceived.Load(),
		Broadcasts:      m.broadcasts.Load(),
		MessagesQueued:  m.queued.Load(),
		ChangesDropped:  m.dropped.Load(),
		Clients:         m.Clients(),
		Uptime:          time.Since(m.started).Round(time.Second),
	}
}

// LogValue implements slog.LogValuer so a snapshot logs as a group.
func (s MetricsSnapshot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("changes_received", s.ChangesReceived),
		slog.Int64("broadcasts", s.Broadcasts),
		slog.Int64("messages_queued", s.MessagesQueued),
		slog.Int64("changes_dropped", s.ChangesDropped),
		slog.Int("clients", s.Clients),
		slog.Duration("uptime", s.Uptime),
	)
}
