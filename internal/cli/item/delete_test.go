package item_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/basket/internal/cli"
	"github.com/thenoetrevino/basket/internal/cli/item"
	"github.com/thenoetrevino/basket/internal/models"
	"github.com/thenoetrevino/basket/internal/testutil"
)

func TestDeleteItem(t *testing.T) {
	c, s := setupCLITest(t)
	milk := testutil.CreateTestItem(t, s, "Milk", "2.50")
	eggs := testutil.CreateTestItem(t, s, "Eggs", "3.00")

	output, err := executeCLICommand(t, c, item.DeleteCmd(), []string{"1", "--json"})

	require.NoError(t, err)
	assert.Equal(t, float64(milk.ID), testutil.ParseJSON(t, output)["id"])

	_, err = s.Get(context.Background(), milk.ID)
	assert.ErrorIs(t, err, models.ErrItemNotFound)

	items, err := s.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Item{eggs}, items)
}

func TestDeleteItem_NotFound(t *testing.T) {
	c, _ := setupCLITest(t)

	_, err := executeCLICommand(t, c, item.DeleteCmd(), []string{"1"})

	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeOf(err))
}
