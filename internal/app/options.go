package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/basket/internal/events"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// WithEventPublisher uses ec instead of dialing the daemon from config
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithClock sets the clock used to stamp new items
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.now = now
	}
}

func buildConfig(opts []Option) *appConfig {
	cfg := &appConfig{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
