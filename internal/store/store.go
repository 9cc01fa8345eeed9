// Package store is the persistent item store. It wraps the SQLite item
// repository and keeps every ObserveAll subscriber supplied with the latest
// snapshot after each successful write, whether the write happened in this
// process or, via the event daemon, in another one.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/thenoetrevino/basket/internal/database"
	"github.com/thenoetrevino/basket/internal/events"
	"github.com/thenoetrevino/basket/internal/models"
)

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("store closed")

const publishRetries = 3

// Store serializes writes and fans out snapshots.
type Store struct {
	repo      database.ItemRepository
	db        *sql.DB // owned; closed by Close when set
	hub       *events.Hub[[]models.Item]
	publisher events.ChangeNotifier
	origin    string

	// mu spans each write plus the re-query and publish that follow it,
	// so subscribers receive snapshots in mutation order.
	mu     sync.Mutex
	closed bool
}

// Option configures a Store.
type Option func(*Store)

// WithPublisher notifies other processes through the event daemon after each write.
func WithPublisher(p events.ChangeNotifier) Option {
	return func(s *Store) {
		s.publisher = p
	}
}

// WithOrigin overrides the generated origin id stamped on published events.
func WithOrigin(origin string) Option {
	return func(s *Store) {
		s.origin = origin
	}
}

// New creates a Store over repo. The caller keeps ownership of the repository's database.
func New(repo database.ItemRepository, opts ...Option) *Store {
	s := &Store{
		repo:   repo,
		hub:    events.NewHub[[]models.Item](),
		origin: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open opens (creating if needed) the database at path and returns a Store that owns it.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	db, err := database.InitDB(ctx, path)
	if err != nil {
		return nil, err
	}
	s := New(database.NewItemRepo(db), opts...)
	s.db = db
	return s, nil
}

// Origin identifies this Store on events it publishes.
func (s *Store) Origin() string {
	return s.origin
}

// Insert stores item under a fresh id and returns that id. item.ID is ignored.
func (s *Store) Insert(ctx context.Context, item models.Item) (int, error) {
	var id int
	err := s.mutate(ctx, func() error {
		var err error
		id, err = s.repo.Insert(ctx, item)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update replaces the stored item with the same id. A missing id is a no-op.
func (s *Store) Update(ctx context.Context, item models.Item) error {
	return s.mutate(ctx, func() error {
		return s.repo.Update(ctx, item)
	})
}

// Delete removes the stored item with item's id. A missing id is a no-op.
func (s *Store) Delete(ctx context.Context, item models.Item) error {
	return s.mutate(ctx, func() error {
		return s.repo.Delete(ctx, item.ID)
	})
}

// DeleteAll removes every item.
func (s *Store) DeleteAll(ctx context.Context) error {
	return s.mutate(ctx, func() error {
		return s.repo.DeleteAll(ctx)
	})
}

// ObserveAll returns a channel that holds the current snapshot immediately
// and receives a new one after every successful write. A slow reader only
// ever sees the most recent snapshot. The channel is closed when ctx is done
// or the Store is closed. Snapshots are shared and must not be modified.
func (s *Store) ObserveAll(ctx context.Context) (<-chan []models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	snapshot, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return s.hub.Subscribe(ctx, snapshot)
}

// Snapshot reads every item once, ordered by id.
func (s *Store) Snapshot(ctx context.Context) ([]models.Item, error) {
	return s.repo.GetAll(ctx)
}

// Get reads one item. Returns models.ErrItemNotFound if it does not exist.
func (s *Store) Get(ctx context.Context, id int) (models.Item, error) {
	return s.repo.GetByID(ctx, id)
}

// Refresh re-reads the table and pushes the result to every subscriber.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	return s.publishLocked(ctx)
}

// Follow refreshes subscribers whenever another process reports a change.
// Events published by this Store are skipped. It blocks until ctx is done
// or evs is closed.
func (s *Store) Follow(ctx context.Context, evs <-chan events.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-evs:
			if !ok {
				return
			}
			if ev.Type != events.EventItemsChanged || ev.Origin == s.origin {
				continue
			}
			slog.Debug("refreshing after remote change", "origin", ev.Origin, "sequence", ev.SequenceID)
			if err := s.Refresh(ctx); err != nil {
				if errors.Is(err, ErrClosed) {
					return
				}
				slog.Error("failed to refresh after remote change", "error", err)
			}
		}
	}
}

// Close ends every subscription and closes the database if the Store owns it.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.hub.Close()

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}

func (s *Store) mutate(ctx context.Context, write func() error) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if err := write(); err != nil {
		s.mu.Unlock()
		return err
	}
	err := s.publishLocked(ctx)
	s.mu.Unlock()

	if err != nil {
		// The write itself succeeded
		slog.Error("failed to re-query items after write", "error", err)
	}
	s.notify(ctx)
	return nil
}

func (s *Store) publishLocked(ctx context.Context) error {
	snapshot, err := s.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	s.hub.Publish(snapshot)
	return nil
}

// notify tells other processes about the change. Failures never fail the write.
func (s *Store) notify(ctx context.Context) {
	if s.publisher == nil {
		return
	}
	if err := events.NotifyItemsChanged(ctx, s.publisher, s.origin, publishRetries); err != nil {
		slog.Debug("daemon notification failed", "error", err)
	}
}
