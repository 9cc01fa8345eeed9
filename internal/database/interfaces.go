package database

import (
	"context"

	"github.com/thenoetrevino/basket/internal/models"
)

// ItemReader defines read operations for items.
type ItemReader interface {
	GetAll(ctx context.Context) ([]models.Item, error)
	GetByID(ctx context.Context, id int) (models.Item, error)
}

// ItemWriter defines write operations for items.
type ItemWriter interface {
	Insert(ctx context.Context, item models.Item) (int, error)
	Update(ctx context.Context, item models.Item) error
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) error
}

// ItemRepository combines all item-related operations.
type ItemRepository interface {
	ItemReader
	ItemWriter
}

// Compile-time verification that *ItemRepo implements ItemRepository
var _ ItemRepository = (*ItemRepo)(nil)
