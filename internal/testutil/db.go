// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/basket/internal/database"
	"github.com/thenoetrevino/basket/internal/models"
	"github.com/thenoetrevino/basket/internal/store"
)

// SetupTestDB creates an in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	require.NoError(t, err, "failed to create test database")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupTestStore creates a Store over a fresh in-memory database.
// The store is closed automatically when the test ends.
func SetupTestStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()
	s := store.New(database.NewItemRepo(SetupTestDB(t)), opts...)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// NewItem returns an unsaved item with plausible defaults.
func NewItem(title, price string) models.Item {
	return models.Item{
		Title:       title,
		Description: title + " description",
		Price:       price,
		CreateDate:  "Mon Jan  2 15:04:05 UTC 2006",
		Priority:    models.PriorityNormal,
		Category:    models.CategoryFood,
	}
}

// CreateTestItem inserts an item and returns it with its assigned id.
func CreateTestItem(t *testing.T, s *store.Store, title, price string) models.Item {
	t.Helper()
	item := NewItem(title, price)
	id, err := s.Insert(context.Background(), item)
	require.NoError(t, err, "failed to create test item")
	item.ID = id
	return item
}
