package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/basket/internal/models"
)

func TestItemRepo_InsertAssignsIncreasingIDs(t *testing.T) {
	t.Parallel()
	repo := NewItemRepo(setupTestDB(t))
	ctx := context.Background()

	first := newTestItem("Milk")
	first.ID = 99 // ignored on insert
	id1, err := repo.Insert(ctx, first)
	require.NoError(t, err)
	id2, err := repo.Insert(ctx, newTestItem("Eggs"))
	require.NoError(t, err)

	assert.Positive(t, id1)
	assert.Greater(t, id2, id1)

	got, err := repo.GetByID(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, "Milk", got.Title)
	assert.Equal(t, "Milk description", got.Description)
	assert.Equal(t, "1.50", got.Price)
	assert.Equal(t, models.PriorityNormal, got.Priority)
	assert.Equal(t, models.CategoryFood, got.Category)
	assert.False(t, got.IsDone)
}

func TestItemRepo_GetAllOrderedByID(t *testing.T) {
	t.Parallel()
	repo := NewItemRepo(setupTestDB(t))
	ctx := context.Background()

	items, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	for _, title := range []string{"A", "B", "C"} {
		_, err := repo.Insert(ctx, newTestItem(title))
		require.NoError(t, err)
	}

	items, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "A", items[0].Title)
	assert.Equal(t, "B", items[1].Title)
	assert.Equal(t, "C", items[2].Title)
	assert.Less(t, items[0].ID, items[1].ID)
	assert.Less(t, items[1].ID, items[2].ID)
}

func TestItemRepo_UpdateReplacesFields(t *testing.T) {
	t.Parallel()
	repo := NewItemRepo(setupTestDB(t))
	ctx := context.Background()

	id, err := repo.Insert(ctx, newTestItem("Pens"))
	require.NoError(t, err)

	updated := models.Item{
		ID:          id,
		Title:       "Gel pens",
		Description: "blue",
		Price:       "4",
		CreateDate:  "Tue Jan  3 10:00:00 UTC 2006",
		Priority:    models.PriorityHigh,
		IsDone:      true,
		Category:    models.CategorySupplies,
	}
	require.NoError(t, repo.Update(ctx, updated))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestItemRepo_UpdateMissingIsNoop(t *testing.T) {
	t.Parallel()
	repo := NewItemRepo(setupTestDB(t))
	ctx := context.Background()

	missing := newTestItem("Ghost")
	missing.ID = 42
	require.NoError(t, repo.Update(ctx, missing))

	items, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemRepo_Delete(t *testing.T) {
	t.Parallel()
	repo := NewItemRepo(setupTestDB(t))
	ctx := context.Background()

	keep, err := repo.Insert(ctx, newTestItem("Keep"))
	require.NoError(t, err)
	drop, err := repo.Insert(ctx, newTestItem("Drop"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, drop))
	require.NoError(t, repo.Delete(ctx, 12345), "deleting a missing id is a no-op")

	items, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, keep, items[0].ID)

	_, err = repo.GetByID(ctx, drop)
	assert.ErrorIs(t, err, models.ErrItemNotFound)
}

func TestItemRepo_DeleteAll(t *testing.T) {
	t.Parallel()
	repo := NewItemRepo(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.DeleteAll(ctx), "clearing an empty table is fine")

	for _, title := range []string{"A", "B"} {
		_, err := repo.Insert(ctx, newTestItem(title))
		require.NoError(t, err)
	}
	require.NoError(t, repo.DeleteAll(ctx))

	items, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// ids are never reused after a clear
	id, err := repo.Insert(ctx, newTestItem("C"))
	require.NoError(t, err)
	assert.Equal(t, 3, id)
}

func TestItemRepo_DuplicateTitlesAllowed(t *testing.T) {
	t.Parallel()
	repo := NewItemRepo(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.Insert(ctx, newTestItem("Bread"))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, newTestItem("Bread"))
	require.NoError(t, err)

	items, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestItemRepo_RejectsUnknownCategory(t *testing.T) {
	t.Parallel()
	repo := NewItemRepo(setupTestDB(t))

	bad := newTestItem("Widget")
	bad.Category = models.Category("TOYS")
	_, err := repo.Insert(context.Background(), bad)
	assert.Error(t, err)
}

func TestItemRepo_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db, path := setupTestDBFile(t)
	id, err := NewItemRepo(db).Insert(ctx, newTestItem("Coffee"))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reopened, err := InitDB(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := NewItemRepo(reopened).GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Coffee", got.Title)
}
