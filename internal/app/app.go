// Package app wires the store, the list controller and the optional
// daemon connection into one container shared by the CLI and the TUI.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/basket/internal/config"
	"github.com/thenoetrevino/basket/internal/events"
	"github.com/thenoetrevino/basket/internal/services/list"
	"github.com/thenoetrevino/basket/internal/store"
)

// daemonDialTimeout bounds how long startup waits for the daemon
const daemonDialTimeout = 500 * time.Millisecond

// App holds all application services.
type App struct {
	store       *store.Store
	eventClient events.EventPublisher
	logger      *slog.Logger

	// Service layer
	ListService list.Service

	stopFollow context.CancelFunc
	followDone chan struct{}
}

// New creates an App over an already opened store.
// Remote changes are followed when WithEventPublisher is given.
func New(s *store.Store, opts ...Option) *App {
	cfg := buildConfig(opts)
	a := &App{
		store:       s,
		eventClient: cfg.eventClient,
		logger:      cfg.logger,
		ListService: list.NewService(s, list.WithClock(cfg.now)),
	}
	a.follow()
	return a
}

// Open builds the App described by cfg: it connects to the event daemon when
// enabled and reachable, then opens the database.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	built := buildConfig(opts)

	if built.eventClient == nil && cfg.Daemon.Enabled {
		if client := dialDaemon(ctx, cfg, built.logger); client != nil {
			opts = append(opts, WithEventPublisher(client))
			built.eventClient = client
		}
	}

	var storeOpts []store.Option
	if built.eventClient != nil {
		storeOpts = append(storeOpts, store.WithPublisher(built.eventClient))
	}

	s, err := store.Open(ctx, cfg.DBPath(), storeOpts...)
	if err != nil {
		if built.eventClient != nil {
			_ = built.eventClient.Close()
		}
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return New(s, opts...), nil
}

// dialDaemon returns a connected client, or nil when the daemon is unavailable.
// Live updates then stay within this process.
func dialDaemon(ctx context.Context, cfg *config.Config, logger *slog.Logger) *events.Client {
	client := events.NewClient(cfg.SocketPath, events.WithDebounce(cfg.Daemon.Debounce))

	dialCtx, cancel := context.WithTimeout(ctx, daemonDialTimeout)
	defer cancel()

	if err := client.Connect(dialCtx); err != nil {
		logger.Debug("event daemon unavailable, live updates are local only",
			"socket_path", cfg.SocketPath,
			"error", events.ClassifyDaemonError(err))
		_ = client.Close()
		return nil
	}
	logger.Info("connected to event daemon", "socket_path", cfg.SocketPath)
	return client
}

func (a *App) follow() {
	if a.eventClient == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	evs, err := a.eventClient.Listen(ctx)
	if err != nil {
		cancel()
		a.logger.Warn("failed to listen for daemon events", "error", err)
		return
	}

	a.stopFollow = cancel
	a.followDone = make(chan struct{})
	go func() {
		defer close(a.followDone)
		a.store.Follow(ctx, evs)
	}()
}

// Store exposes the underlying store.
func (a *App) Store() *store.Store {
	return a.store
}

// Live reports whether changes are shared with other processes.
func (a *App) Live() bool {
	return a.eventClient != nil
}

// Close stops following remote changes, flushes pending notifications and
// closes the store.
func (a *App) Close() error {
	if a.stopFollow != nil {
		a.stopFollow()
		<-a.followDone
	}

	var errs []error
	if a.eventClient != nil {
		if err := a.eventClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event client: %w", err))
		}
	}
	if err := a.store.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
