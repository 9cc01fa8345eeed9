package item_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/basket/internal/cli"
	"github.com/thenoetrevino/basket/internal/cli/item"
	"github.com/thenoetrevino/basket/internal/models"
	"github.com/thenoetrevino/basket/internal/testutil"
)

func TestAddItem_Positive(t *testing.T) {
	c, s := setupCLITest(t)

	t.Run("default output", func(t *testing.T) {
		output, err := executeCLICommand(t, c, item.AddCmd(), []string{
			"--title=Milk", "--description=2 liters", "--price=2.50",
		})

		require.NoError(t, err)
		assert.Contains(t, output, "Added 'Milk' (ID: 1)")
		assert.Contains(t, output, "Category: FOOD")
	})

	t.Run("quiet mode prints the id", func(t *testing.T) {
		output, err := executeCLICommand(t, c, item.AddCmd(), []string{
			"--title=Dune", "--description=paperback", "--price=9.99", "--category=book", "--quiet",
		})

		require.NoError(t, err)
		assert.Equal(t, "2\n", output)
	})

	t.Run("json output", func(t *testing.T) {
		output, err := executeCLICommand(t, c, item.AddCmd(), []string{
			"--title=Cups", "--description=for the party", "--price=3", "--category=SUPPLIES", "--json",
		})

		require.NoError(t, err)
		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		got := result["item"].(map[string]any)
		assert.Equal(t, float64(3), got["id"])
		assert.Equal(t, "Cups", got["title"])
		assert.Equal(t, "SUPPLIES", got["category"])
		assert.Equal(t, "NORMAL", got["priority"])
		assert.Equal(t, false, got["is_done"])
		assert.Equal(t, "3.00", got["cost"])
		assert.Equal(t, fixedNow.Format(time.UnixDate), got["create_date"])
	})

	items, err := s.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, models.CategoryBook, items[1].Category)
}

func TestAddItem_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing title", []string{"--description=d", "--price=1"}},
		{"blank title", []string{"--title=   ", "--description=d", "--price=1"}},
		{"missing description", []string{"--title=t", "--price=1"}},
		{"missing price", []string{"--title=t", "--description=d"}},
		{"unknown category", []string{"--title=t", "--description=d", "--price=1", "--category=toys"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, s := setupCLITest(t)

			_, err := executeCLICommand(t, c, item.AddCmd(), append(tt.args, "--json"))

			require.Error(t, err)
			assert.Equal(t, cli.ExitValidation, cli.ExitCodeOf(err))

			items, err := s.Snapshot(context.Background())
			require.NoError(t, err)
			assert.Empty(t, items, "nothing is stored on validation failure")
		})
	}
}

func TestAddItem_ValidationJSONError(t *testing.T) {
	c, _ := setupCLITest(t)

	output, err := executeCLICommand(t, c, item.AddCmd(), []string{"--description=d", "--price=1", "--json"})

	require.Error(t, err)
	result := testutil.ParseJSON(t, output)
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_ERROR", errData["code"])
	assert.True(t, strings.Contains(errData["message"].(string), "title"))
}

func TestAddItem_RejectsPositionalArgs(t *testing.T) {
	c, _ := setupCLITest(t)

	_, err := executeCLICommand(t, c, item.AddCmd(), []string{"extra", "--title=t", "--description=d", "--price=1"})

	assert.Error(t, err)
}
