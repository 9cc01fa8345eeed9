// Package daemon implements basket-daemon, a unix socket hub that relays
// item change notifications between basket processes.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/basket/internal/events"
)

// client represents a connected client to the daemon
type client struct {
	id        string
	conn      net.Conn
	send      chan events.Message
	lastPong  time.Time
	mu        sync.Mutex // Protects lastPong
	closeOnce sync.Once  // Ensures send channel is closed only once
}

func (c *client) touch() {
	c.mu.Lock()
	c.lastPong = time.Now()
	c.mu.Unlock()
}

func (c *client) idleFor(now time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return now.Sub(c.lastPong)
}

// Server is the basket event daemon
type Server struct {
	socketPath      string
	listener        net.Listener
	clients         map[*client]bool
	mu              sync.RWMutex
	ctx             context.Context
	cancel          context.CancelFunc
	broadcast       chan events.Event
	metrics         *Metrics
	sequenceCounter atomic.Int64
	shutdownOnce    sync.Once

	clientBufferSize int
	pingInterval     time.Duration
	staleAfter       time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithClientBuffer sets the per-client send queue size.
func WithClientBuffer(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.clientBufferSize = n
		}
	}
}

// WithHealthCheck sets how often clients are pinged and how long a silent
// client survives before it is dropped.
func WithHealthCheck(pingInterval, staleAfter time.Duration) Option {
	return func(s *Server) {
		s.pingInterval = pingInterval
		s.staleAfter = staleAfter
	}
}

// NewServer creates the socket listener, replacing a stale socket file if present.
func NewServer(socketPath string, opts ...Option) (*Server, error) {
	if dir := filepath.Dir(socketPath); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create socket directory: %w", err)
		}
	}

	if _, err := os.Stat(socketPath); err == nil {
		if err := os.Remove(socketPath); err != nil {
			return nil, fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create socket listener: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		socketPath:       socketPath,
		listener:         listener,
		clients:          make(map[*client]bool),
		ctx:              ctx,
		cancel:           cancel,
		broadcast:        make(chan events.Event, 100),
		metrics:          NewMetrics(),
		clientBufferSize: 10,
		pingInterval:     30 * time.Second,
		staleAfter:       90 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Metrics exposes the daemon counters.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start runs the accept, broadcast and health loops until ctx is done
// or Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	slog.Info("daemon starting", "socket_path", s.socketPath)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-s.ctx.Done():
			cancel()
		case <-runCtx.Done():
		}
	}()

	acceptErr := make(chan error, 1)
	go func() {
		acceptErr <- s.acceptLoop(runCtx)
	}()

	go s.broadcastLoop(runCtx)
	go s.monitorHealth(runCtx)

	select {
	case <-runCtx.Done():
		slog.Info("daemon context cancelled, shutting down")
	case err := <-acceptErr:
		if err != nil {
			slog.Error("accept loop error", "error", err)
		}
	}

	return s.Shutdown()
}

func (s *Server) acceptLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// Deadline lets the loop notice cancellation
		if ul, ok := s.listener.(*net.UnixListener); ok {
			if err := ul.SetDeadline(time.Now().Add(1 * time.Second)); err != nil {
				slog.Warn("failed to set listener deadline", "error", err)
			}
		}

		conn, err := s.listener.Accept()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept error: %w", err)
		}

		c := &client{
			id:       uuid.NewString(),
			conn:     conn,
			send:     make(chan events.Message, s.clientBufferSize),
			lastPong: time.Now(),
		}

		s.mu.Lock()
		s.clients[c] = true
		s.mu.Unlock()
		s.updateClientCount()

		slog.Info("client connected", "client_id", c.id, "clients", s.getClientCount())

		go s.handleClient(c)
		go s.clientWriter(c)
	}
}

// broadcastLoop stamps each event with a sequence number and fans it out to every client
func (s *Server) broadcastLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event := <-s.broadcast:
			event.SequenceID = s.sequenceCounter.Add(1)
			s.metrics.broadcast()

			msg := events.Message{
				Version: events.ProtocolVersion,
				Type:    events.MessageEvent,
				Event:   &event,
			}

			s.mu.RLock()
			for c := range s.clients {
				if !s.sendToClient(c, msg) {
					s.metrics.changeDropped()
					slog.Warn("client send queue full, event dropped", "client_id", c.id)
				}
			}
			s.mu.RUnlock()
		}
	}
}

// handleClient reads messages from a connected client
func (s *Server) handleClient(c *client) {
	defer func() {
		s.removeClient(c)
		slog.Info("client disconnected", "client_id", c.id, "clients", s.getClientCount())
	}()

	decoder := json.NewDecoder(c.conn)

	for {
		var msg events.Message
		if err := decoder.Decode(&msg); err != nil {
			return
		}

		if msg.Version != 0 && msg.Version != events.ProtocolVersion {
			slog.Warn("protocol version mismatch", "got", msg.Version, "want", events.ProtocolVersion)
		}

		// Any traffic proves the client is alive
		c.touch()

		switch msg.Type {
		case events.MessageEvent:
			if msg.Event == nil {
				continue
			}
			s.metrics.changeReceived()
			if err := s.Broadcast(*msg.Event); err != nil {
				slog.Warn("event dropped", "client_id", c.id, "error", err)
			}

		case events.MessagePong:
			// handled by touch
		}
	}
}

// clientWriter sends queued messages to a client
func (s *Server) clientWriter(c *client) {
	encoder := json.NewEncoder(c.conn)

	for msg := range c.send {
		if err := encoder.Encode(msg); err != nil {
			return
		}
	}
}

// monitorHealth pings clients and removes the ones that stopped answering
func (s *Server) monitorHealth(ctx context.Context) {
	ticker := time.NewTicker(s.pingInterval)
	defer ticker.Stop()

	pingMsg := events.Message{
		Version: events.ProtocolVersion,
		Type:    events.MessagePing,
	}

	for {
		select {
		case <-ctx.Done():
			return

		case now := <-ticker.C:
			// Collect under the read lock, remove outside it
			s.mu.RLock()
			var stale []*client
			for c := range s.clients {
				if c.idleFor(now) > s.staleAfter {
					stale = append(stale, c)
				}
			}
			s.mu.RUnlock()

			for _, c := range stale {
				slog.Info("removing stale client", "client_id", c.id, "idle", c.idleFor(now))
				s.removeClient(c)
			}

			s.mu.RLock()
			for c := range s.clients {
				if !s.sendToClient(c, pingMsg) {
					slog.Warn("failed to ping client, queue full", "client_id", c.id)
				}
			}
			s.mu.RUnlock()
		}
	}
}

// Broadcast queues an event for every connected client (non-blocking)
func (s *Server) Broadcast(event events.Event) error {
	if s.ctx.Err() != nil {
		return errors.New("daemon shut down")
	}
	select {
	case s.broadcast <- event:
		return nil
	default:
		return errors.New("broadcast channel full")
	}
}

// Shutdown closes the listener and every client, then removes the socket file.
// It is safe to call more than once.
func (s *Server) Shutdown() error {
	var err error
	s.shutdownOnce.Do(func() {
		slog.Info("shutting down daemon", "metrics", s.metrics.Snapshot())

		s.cancel()

		if s.listener != nil {
			if closeErr := s.listener.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
				err = fmt.Errorf("failed to close listener: %w", closeErr)
			}
		}

		s.mu.Lock()
		for c := range s.clients {
			_ = c.conn.Close()
			c.closeOnce.Do(func() { close(c.send) })
		}
		s.clients = make(map[*client]bool)
		s.mu.Unlock()
		s.updateClientCount()

		if removeErr := os.Remove(s.socketPath); removeErr != nil && !os.IsNotExist(removeErr) {
			slog.Warn("failed to remove socket file", "error", removeErr)
		}
	})

	return err
}

func (s *Server) getClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) updateClientCount() {
	s.metrics.setClients(s.getClientCount())
}

// removeClient safely removes a client from the server.
// The send channel is closed under the write lock so senders holding
// the read lock never see it closed.
func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	c.closeOnce.Do(func() { close(c.send) })
	s.mu.Unlock()

	if err := c.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		slog.Debug("error closing client connection", "client_id", c.id, "error", err)
	}

	s.updateClientCount()
}

// sendToClient attempts a non-blocking send; false means the queue is full.
// Callers must hold s.mu for reading.
func (s *Server) sendToClient(c *client, msg events.Message) bool {
	select {
	case c.send <- msg:
		s.metrics.messageQueued()
		return true
	default:
		return false
	}
}
