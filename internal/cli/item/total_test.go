package item_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/basket/internal/cli/item"
	"github.com/thenoetrevino/basket/internal/testutil"
)

func TestTotal(t *testing.T) {
	c, s := setupCLITest(t)

	output, err := executeCLICommand(t, c, item.TotalCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "0.00\n", output)

	a := testutil.CreateTestItem(t, s, "A", "5.00")
	testutil.CreateTestItem(t, s, "B", "3.25")

	output, err = executeCLICommand(t, c, item.TotalCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "Total Estimated Cost:")
	assert.Contains(t, output, "$8.25")

	require.NoError(t, s.Delete(context.Background(), a))

	output, err = executeCLICommand(t, c, item.TotalCmd(), []string{"--json"})
	require.NoError(t, err)
	result := testutil.ParseJSON(t, output)
	assert.Equal(t, "3.25", result["total"])
	assert.Equal(t, float64(1), result["count"])
}

func TestCommands_AllRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range item.Commands() {
		names[cmd.Name()] = true
		assert.NotNil(t, cmd.Flags().Lookup("json"), "%s has --json", cmd.Name())
		assert.NotNil(t, cmd.Flags().Lookup("quiet"), "%s has --quiet", cmd.Name())
	}
	for _, want := range []string{"add", "list", "show", "edit", "done", "delete", "clear", "total"} {
		assert.True(t, names[want], "missing %s", want)
	}
}
