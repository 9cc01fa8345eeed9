package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultDebounce is the batching window used when none is configured.
const DefaultDebounce = 100 * time.Millisecond

// Client is a connection to the basket daemon for sending and receiving
// change notifications. It batches outgoing events and reconnects on failure.
type Client struct {
	socketPath string
	conn       net.Conn
	encoder    *json.Encoder
	decoder    *json.Decoder
	mu         sync.Mutex

	// Batching configuration
	eventQueue chan Event
	debounce   time.Duration
	closed     bool

	// Reconnection configuration
	maxRetries int
	baseDelay  time.Duration

	lastSequence int64
	reconnects   atomic.Int64

	ctx    context.Context
	cancel context.CancelFunc

	batcherOnce sync.Once
	batcherDone chan struct{}
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithDebounce sets the batching window for outgoing events.
func WithDebounce(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// WithReconnect sets how many reconnection attempts are made and the initial backoff.
func WithReconnect(maxRetries int, baseDelay time.Duration) ClientOption {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.baseDelay = baseDelay
	}
}

// NewClient creates a new event client but does not connect.
// socketPath is the full path to the daemon's unix domain socket.
func NewClient(socketPath string, opts ...ClientOption) *Client {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Client{
		socketPath:  socketPath,
		eventQueue:  make(chan Event, 100),
		debounce:    DefaultDebounce,
		maxRetries:  5,
		baseDelay:   1 * time.Second,
		ctx:         ctx,
		cancel:      cancel,
		batcherDone: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect establishes a connection to the daemon socket and starts the batcher.
func (c *Client) Connect(ctx context.Context) error {
	if err := c.dial(ctx); err != nil {
		return err
	}
	c.batcherOnce.Do(func() {
		go c.startBatcher()
	})
	return nil
}

func (c *Client) dial(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.New("client closed")
	}

	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("failed to dial daemon socket: %w", err)
	}

	c.conn = conn
	c.encoder = json.NewEncoder(conn)
	c.decoder = json.NewDecoder(conn)
	return nil
}

// SendEvent queues an event to be sent to the daemon.
// Events are coalesced within the debounce window. The call never blocks;
// ErrQueueFull is returned when the queue is saturated.
func (c *Client) SendEvent(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.New("client closed")
	}

	select {
	case c.eventQueue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// startBatcher drains the queue and sends at most one event per debounce tick.
// Only the most recent pending event is sent since every event means
// "the item table changed".
func (c *Client) startBatcher() {
	defer close(c.batcherDone)

	ticker := time.NewTicker(c.debounce)
	defer ticker.Stop()

	var (
		pending bool
		latest  Event
	)

	flushPending := func() {
		if !pending {
			return
		}
		latest.Type = EventItemsChanged
		if latest.Timestamp.IsZero() {
			latest.Timestamp = time.Now()
		}
		if err := c.send(Message{Type: MessageEvent, Event: &latest}); err != nil {
			if !isConnectionError(err) {
				slog.Warn("failed to send batched event", "error", err)
			}
		}
		pending = false
	}

	for {
		select {
		case <-c.ctx.Done():
			flushPending()
			return

		case event, ok := <-c.eventQueue:
			if !ok {
				flushPending()
				return
			}
			pending = true
			latest = event

		case <-ticker.C:
			flushPending()
		}
	}
}

// send writes a message to the daemon socket.
func (c *Client) send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return errors.New("not connected to daemon")
	}

	// Short write deadline to detect dead connections
	if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
		return fmt.Errorf("connection error: %w", err)
	}

	msg.Version = ProtocolVersion
	return c.encoder.Encode(msg)
}

// Listen starts listening for events from the daemon.
// The returned channel is closed when ctx is done or reconnection gives up.
func (c *Client) Listen(ctx context.Context) (<-chan Event, error) {
	c.mu.Lock()
	connected := c.conn != nil
	c.mu.Unlock()
	if !connected {
		return nil, errors.New("not connected to daemon")
	}

	eventChan := make(chan Event, 10)
	go c.listenLoop(ctx, eventChan)
	return eventChan, nil
}

func (c *Client) listenLoop(ctx context.Context, eventChan chan Event) {
	defer close(eventChan)

	for {
		if ctx.Err() != nil || c.ctx.Err() != nil {
			return
		}

		err := c.readEvents(ctx, eventChan)
		if err == nil || ctx.Err() != nil || c.ctx.Err() != nil {
			return
		}

		slog.Info("daemon connection lost, reconnecting", "error", err)
		if !c.reconnect(ctx) {
			slog.Warn("failed to reconnect to daemon, giving up", "attempts", c.maxRetries)
			return
		}
		slog.Info("reconnected to daemon")
	}
}

// readEvents decodes messages until the connection fails.
func (c *Client) readEvents(ctx context.Context, eventChan chan Event) error {
	for {
		var msg Message

		c.mu.Lock()
		if c.conn == nil {
			c.mu.Unlock()
			return errors.New("connection closed")
		}
		// The daemon pings every 30s, so a 60s silence means the connection is hung
		if err := c.conn.SetReadDeadline(time.Now().Add(60 * time.Second)); err != nil {
			c.mu.Unlock()
			return fmt.Errorf("failed to set read deadline: %w", err)
		}
		decoder := c.decoder
		c.mu.Unlock()

		if err := decoder.Decode(&msg); err != nil {
			return fmt.Errorf("failed to decode message: %w", err)
		}

		switch msg.Type {
		case MessageEvent:
			if msg.Event == nil || msg.Event.SequenceID <= c.lastSequence {
				continue
			}
			c.lastSequence = msg.Event.SequenceID
			select {
			case eventChan <- *msg.Event:
			case <-ctx.Done():
				return nil
			}

		case MessagePing:
			if err := c.send(Message{Type: MessagePong}); err != nil && !isConnectionError(err) {
				slog.Warn("failed to send pong", "error", err)
			}
		}
	}
}

// isConnectionError reports whether err is an expected network teardown error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, net.ErrClosed) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// reconnect retries the dial with exponential backoff: 1s, 2s, 4s, 8s, 16s by default.
// The daemon restarts its sequence counter, so the dedupe watermark resets too.
func (c *Client) reconnect(ctx context.Context) bool {
	delay := c.baseDelay

	for i := 0; i < c.maxRetries; i++ {
		select {
		case <-ctx.Done():
			return false
		case <-c.ctx.Done():
			return false
		case <-time.After(delay):
			c.mu.Lock()
			if c.conn != nil {
				if err := c.conn.Close(); err != nil && !isConnectionError(err) {
					slog.Debug("error closing connection during reconnect", "error", err)
				}
				c.conn = nil
			}
			c.mu.Unlock()

			err := c.dial(ctx)
			if err == nil {
				c.lastSequence = 0
				c.reconnects.Add(1)
				slog.Info("reconnected to daemon", "attempt", i+1, "max_retries", c.maxRetries)
				return true
			}
			slog.Debug("reconnection attempt failed",
				"attempt", i+1,
				"max_retries", c.maxRetries,
				"retry_in", delay,
				"hint", ClassifyDaemonError(err).Hint)
			delay *= 2
		}
	}

	return false
}

// Reconnects reports how many times the client re-established its connection.
func (c *Client) Reconnects() int64 {
	return c.reconnects.Load()
}

// Close flushes pending events, closes the connection and stops all goroutines.
// It is safe to call more than once.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	// Lets the batcher flush what is pending before it exits
	close(c.eventQueue)
	c.mu.Unlock()

	started := true
	c.batcherOnce.Do(func() { started = false })
	if started {
		<-c.batcherDone
	}
	c.cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		if err != nil && !isConnectionError(err) {
			return err
		}
	}
	return nil
}
