package huhforms

import (
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/basket/internal/models"
	"github.com/thenoetrevino/basket/internal/services/list"
)

func TestItemValues_RoundTrip(t *testing.T) {
	item := models.Item{
		ID: 4, Title: "Milk", Description: "skimmed", Price: "2.50",
		CreateDate: "Mon Jan  2 15:04:05 UTC 2006",
		Priority:   models.PriorityNormal, Category: models.CategoryFood,
	}

	v := ValuesFromItem(item)
	v.Title = "Oat milk"
	v.Priority = models.PriorityHigh
	v.Bought = true

	got := v.Apply(item)
	assert.Equal(t, 4, got.ID)
	assert.Equal(t, item.CreateDate, got.CreateDate)
	assert.Equal(t, "Oat milk", got.Title)
	assert.Equal(t, "skimmed", got.Description)
	assert.Equal(t, models.PriorityHigh, got.Priority)
	assert.True(t, got.IsDone)
}

func TestItemValues_AddRequest(t *testing.T) {
	v := NewItemValues()
	assert.Equal(t, models.CategoryFood, v.Category)
	assert.ErrorIs(t, list.ValidateAddRequest(v.AddRequest()), list.ErrEmptyTitle)

	v.Title, v.Description, v.Price, v.Category = "Dune", "paperback", "9.99", models.CategoryBook
	req := v.AddRequest()
	require.NoError(t, list.ValidateAddRequest(req))
	assert.Equal(t, models.CategoryBook, req.Category)
}

func TestForms_Build(t *testing.T) {
	v := NewItemValues()

	add := CreateAddItemForm(v, 3)
	require.NotNil(t, add)
	assert.Equal(t, huh.StateNormal, add.State)

	edit := CreateEditItemForm(v, 3)
	require.NotNil(t, edit)
	assert.Equal(t, huh.StateNormal, edit.State)
}
