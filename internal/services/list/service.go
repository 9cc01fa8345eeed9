// Package list is the shopping list controller. It passes operations through
// to the item store and derives values such as the total estimated cost.
package list

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/basket/internal/models"
)

// ItemStore is the persistence contract the controller depends on.
type ItemStore interface {
	Insert(ctx context.Context, item models.Item) (int, error)
	Update(ctx context.Context, item models.Item) error
	Delete(ctx context.Context, item models.Item) error
	DeleteAll(ctx context.Context) error
	ObserveAll(ctx context.Context) (<-chan []models.Item, error)
	Snapshot(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, id int) (models.Item, error)
}

// Service defines all list operations
type Service interface {
	// Read operations
	ListItems(ctx context.Context) (<-chan []models.Item, error)
	Snapshot(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, id int) (models.Item, error)
	TotalCost(items []models.Item) Cost

	// Write operations
	AddItem(ctx context.Context, req AddItemRequest) (int, error)
	EditItem(ctx context.Context, original, edited models.Item) error
	ToggleDone(ctx context.Context, item models.Item, done bool) error
	DeleteItem(ctx context.Context, item models.Item) error
	ClearAll(ctx context.Context) error
}

// AddItemRequest carries the user-supplied fields of a new item
type AddItemRequest struct {
	Title       string
	Description string
	Price       string
	Category    models.Category
}

// ValidateAddRequest reports the first blank field of req.
// AddItem itself never validates; callers decide how to surface the error.
func ValidateAddRequest(req AddItemRequest) error {
	switch {
	case strings.TrimSpace(req.Title) == "":
		return ErrEmptyTitle
	case strings.TrimSpace(req.Description) == "":
		return ErrEmptyDescription
	case strings.TrimSpace(req.Price) == "":
		return ErrEmptyPrice
	}
	return nil
}

// Option configures the service
type Option func(*service)

// WithClock replaces time.Now for stamping creation dates.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

type service struct {
	store ItemStore
	now   func() time.Time
}

// NewService creates a new list service
func NewService(store ItemStore, opts ...Option) Service {
	s := &service{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) ListItems(ctx context.Context) (<-chan []models.Item, error) {
	return s.store.ObserveAll(ctx)
}

func (s *service) Snapshot(ctx context.Context) ([]models.Item, error) {
	return s.store.Snapshot(ctx)
}

func (s *service) Get(ctx context.Context, id int) (models.Item, error) {
	return s.store.Get(ctx, id)
}

// AddItem creates a not-done, normal priority item stamped with the current time.
func (s *service) AddItem(ctx context.Context, req AddItemRequest) (int, error) {
	item := models.Item{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		CreateDate:  s.now().Format(time.UnixDate),
		Priority:    models.PriorityNormal,
		IsDone:      false,
		Category:    req.Category,
	}

	id, err := s.store.Insert(ctx, item)
	if err != nil {
		return 0, fmt.Errorf("failed to add item: %w", err)
	}
	return id, nil
}

// EditItem stores edited in place of original. The creation date always
// comes from original.
func (s *service) EditItem(ctx context.Context, original, edited models.Item) error {
	if original.ID != edited.ID {
		return fmt.Errorf("%w: %d != %d", ErrIDMismatch, edited.ID, original.ID)
	}
	edited.CreateDate = original.CreateDate

	if err := s.store.Update(ctx, edited); err != nil {
		return fmt.Errorf("failed to edit item %d: %w", original.ID, err)
	}
	return nil
}

func (s *service) ToggleDone(ctx context.Context, item models.Item, done bool) error {
	return s.EditItem(ctx, item, item.WithDone(done))
}

func (s *service) DeleteItem(ctx context.Context, item models.Item) error {
	if err := s.store.Delete(ctx, item); err != nil {
		return fmt.Errorf("failed to delete item %d: %w", item.ID, err)
	}
	return nil
}

func (s *service) ClearAll(ctx context.Context) error {
	if err := s.store.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}
	return nil
}

func (s *service) TotalCost(items []models.Item) Cost {
	return TotalCost(items)
}
