package tui

import (
	"context"
	"sync"

	"github.com/thenoetrevino/basket/internal/models"
	"github.com/thenoetrevino/basket/internal/services/list"
)

// fakeService records calls and lets tests push snapshots by hand.
type fakeService struct {
	mu        sync.Mutex
	added     []list.AddItemRequest
	edited    [][2]models.Item
	toggled   []models.Item
	toggledTo []bool
	deleted   []models.Item
	cleared   int
	err       error

	snapshots chan []models.Item
}

var _ list.Service = (*fakeService)(nil)

func newFakeService() *fakeService {
	return &fakeService{snapshots: make(chan []models.Item, 8)}
}

func (f *fakeService) ListItems(ctx context.Context) (<-chan []models.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshots, nil
}

func (f *fakeService) Snapshot(ctx context.Context) ([]models.Item, error) {
	return nil, f.err
}

func (f *fakeService) Get(ctx context.Context, id int) (models.Item, error) {
	return models.Item{}, models.ErrItemNotFound
}

func (f *fakeService) TotalCost(items []models.Item) list.Cost {
	return list.TotalCost(items)
}

func (f *fakeService) AddItem(ctx context.Context, req list.AddItemRequest) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, req)
	return len(f.added), f.err
}

func (f *fakeService) EditItem(ctx context.Context, original, edited models.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edited = append(f.edited, [2]models.Item{original, edited})
	return f.err
}

func (f *fakeService) ToggleDone(ctx context.Context, item models.Item, done bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toggled = append(f.toggled, item)
	f.toggledTo = append(f.toggledTo, done)
	return f.err
}

func (f *fakeService) DeleteItem(ctx context.Context, item models.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, item)
	return f.err
}

func (f *fakeService) ClearAll(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared++
	return f.err
}
