package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/basket/internal/cli"
	"github.com/thenoetrevino/basket/internal/cli/item"
	"github.com/thenoetrevino/basket/internal/testutil"
)

func TestShowItem(t *testing.T) {
	c, s := setupCLITest(t)
	testutil.CreateTestItem(t, s, "Milk", "2.5")

	t.Run("renders details", func(t *testing.T) {
		output, err := executeCLICommand(t, c, item.ShowCmd(), []string{"1"})

		require.NoError(t, err)
		assert.Contains(t, output, "Milk")
		assert.Contains(t, output, "Milk description")
		assert.Contains(t, output, "2.50")
		assert.Contains(t, output, "2006")
	})

	t.Run("json output", func(t *testing.T) {
		output, err := executeCLICommand(t, c, item.ShowCmd(), []string{"1", "--json"})

		require.NoError(t, err)
		got := testutil.ParseJSON(t, output)["item"].(map[string]any)
		assert.Equal(t, "Milk", got["title"])
		assert.Equal(t, "2.5", got["price"])
		assert.Equal(t, "2.50", got["cost"])
	})
}

func TestShowItem_Errors(t *testing.T) {
	c, _ := setupCLITest(t)

	t.Run("missing item", func(t *testing.T) {
		output, err := executeCLICommand(t, c, item.ShowCmd(), []string{"99", "--json"})

		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCodeOf(err))
		errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
		assert.Equal(t, "ITEM_NOT_FOUND", errData["code"])
	})

	t.Run("bad id", func(t *testing.T) {
		_, err := executeCLICommand(t, c, item.ShowCmd(), []string{"abc"})

		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCodeOf(err))
	})

	t.Run("no id", func(t *testing.T) {
		_, err := executeCLICommand(t, c, item.ShowCmd(), nil)

		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCodeOf(err))
	})
}
