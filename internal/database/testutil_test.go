package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/basket/internal/models"
)

// setupTestDB creates an in-memory database with the schema applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), ":memory:")
	require.NoError(t, err, "failed to create test database")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across reopen
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "basket-test.db")
	db, err := InitDB(context.Background(), path)
	require.NoError(t, err, "failed to open test database")
	return db, path
}

func newTestItem(title string) models.Item {
	return models.Item{
		Title:       title,
		Description: title + " description",
		Price:       "1.50",
		CreateDate:  "Mon Jan  2 15:04:05 UTC 2006",
		Priority:    models.PriorityNormal,
		Category:    models.CategoryFood,
	}
}
