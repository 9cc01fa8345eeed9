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

func TestClearItems_RequiresForce(t *testing.T) {
	c, s := setupCLITest(t)
	testutil.CreateTestItem(t, s, "Milk", "2.50")

	_, err := executeCLICommand(t, c, item.ClearCmd(), nil)

	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeOf(err))

	items, err := s.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestClearItems_Force(t *testing.T) {
	c, s := setupCLITest(t)
	testutil.CreateTestItem(t, s, "Milk", "2.50")
	testutil.CreateTestItem(t, s, "Eggs", "3.00")

	output, err := executeCLICommand(t, c, item.ClearCmd(), []string{"--force"})

	require.NoError(t, err)
	assert.Contains(t, output, "Cleared 2 item(s)")

	items, err := s.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}
