package item_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/basket/internal/cli"
	"github.com/thenoetrevino/basket/internal/cli/item"
	"github.com/thenoetrevino/basket/internal/testutil"
)

func TestDoneItem(t *testing.T) {
	c, s := setupCLITest(t)
	original := testutil.CreateTestItem(t, s, "Milk", "2.50")

	output, err := executeCLICommand(t, c, item.DoneCmd(), []string{"1"})
	require.NoError(t, err)
	assert.Contains(t, output, "Bought 'Milk'")

	got, err := s.Get(context.Background(), original.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDone)

	output, err = executeCLICommand(t, c, item.DoneCmd(), []string{"1", "--undo", "--json"})
	require.NoError(t, err)
	assert.Equal(t, false, testutil.ParseJSON(t, output)["item"].(map[string]any)["is_done"])

	got, err = s.Get(context.Background(), original.ID)
	require.NoError(t, err)
	assert.Equal(t, original, got, "done then undo restores the item")
}

func TestDoneItem_NotFound(t *testing.T) {
	c, _ := setupCLITest(t)

	_, err := executeCLICommand(t, c, item.DoneCmd(), []string{"5"})

	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeOf(err))
}
