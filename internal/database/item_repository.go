package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/basket/internal/models"
)

const itemColumns = `id, title, price, description, create_date, priority, is_done, category`

// ItemRepo handles all item-related database operations.
type ItemRepo struct {
	db *sql.DB
}

// NewItemRepo creates a new ItemRepo wrapping the given database connection.
func NewItemRepo(db *sql.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

// Insert stores a new item and returns the ID assigned by the database.
// Any ID set on item is ignored.
func (r *ItemRepo) Insert(ctx context.Context, item models.Item) (int, error) {
	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO items (title, price, description, create_date, priority, is_done, category)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			item.Title, item.Price, item.Description, item.CreateDate,
			string(item.Priority), item.IsDone, string(item.Category),
		)
		if err != nil {
			return err
		}
		id, err = result.LastInsertId()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert item: %w", err)
	}
	return int(id), nil
}

// Update replaces every stored field of the row matching item.ID.
// Updating an ID that does not exist affects no rows and is not an error.
func (r *ItemRepo) Update(ctx context.Context, item models.Item) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE items
		 SET title = ?, price = ?, description = ?, create_date = ?,
		     priority = ?, is_done = ?, category = ?
		 WHERE id = ?`,
		item.Title, item.Price, item.Description, item.CreateDate,
		string(item.Priority), item.IsDone, string(item.Category), item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update item %d: %w", item.ID, err)
	}
	return nil
}

// Delete removes the item with the given ID. Missing IDs are a no-op.
func (r *ItemRepo) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete item %d: %w", id, err)
	}
	return nil
}

// DeleteAll removes every item.
func (r *ItemRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM items"); err != nil {
		return fmt.Errorf("failed to delete items: %w", err)
	}
	return nil
}

// GetAll retrieves every item in insertion order
func (r *ItemRepo) GetAll(ctx context.Context) ([]models.Item, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// GetByID retrieves a single item. Returns models.ErrItemNotFound if absent.
func (r *ItemRepo) GetByID(ctx context.Context, id int) (models.Item, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, fmt.Errorf("item %d: %w", id, models.ErrItemNotFound)
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("failed to get item %d: %w", id, err)
	}
	return item, nil
}

func scanItem(s rowScanner) (models.Item, error) {
	var (
		item     models.Item
		priority string
		category string
	)
	err := s.Scan(
		&item.ID, &item.Title, &item.Price, &item.Description,
		&item.CreateDate, &priority, &item.IsDone, &category,
	)
	if err != nil {
		return models.Item{}, err
	}
	item.Priority = models.Priority(priority)
	item.Category = models.Category(category)
	return item, nil
}
