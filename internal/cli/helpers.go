package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/basket/internal/models"
)

// ItemIDArg accepts exactly one positional argument holding a positive item ID.
// Anything else is a usage error.
func ItemIDArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return WithExitCode(ExitUsage, fmt.Errorf("accepts 1 item ID, received %d", len(args)))
	}
	if _, err := ParseItemID(args[0]); err != nil {
		return WithExitCode(ExitUsage, err)
	}
	return nil
}

// ParseItemID parses a positive integer item ID.
func ParseItemID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(arg), "#"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("item ID must be a positive integer, got %q", arg)
	}
	return id, nil
}

// ReadDescription returns value, or all of stdin when value is "-".
func ReadDescription(value string) (string, error) {
	return readDescription(value, os.Stdin)
}

func readDescription(value string, stdin io.Reader) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// LookupItem fetches the item named by the first argument, reporting a
// missing item with ExitNotFound.
func LookupItem(ctx context.Context, c *CLI, f *OutputFormatter, arg string) (models.Item, error) {
	id, err := ParseItemID(arg)
	if err != nil {
		return models.Item{}, f.Fail(ExitUsage, "INVALID_ITEM_ID", err, "")
	}

	item, err := c.List().Get(ctx, id)
	if errors.Is(err, models.ErrItemNotFound) {
		return models.Item{}, f.Fail(ExitNotFound, "ITEM_NOT_FOUND",
			fmt.Errorf("item %d not found", id),
			"Use 'basket list' to see the items on your list")
	}
	if err != nil {
		return models.Item{}, f.Fail(ExitError, "ITEM_FETCH_ERROR", err, "")
	}
	return item, nil
}

// Session returns the CLI for cmd, reporting a missing one as a general error.
func Session(cmd *cobra.Command, f *OutputFormatter) (*CLI, error) {
	c, err := FromContext(cmd.Context())
	if err != nil {
		return nil, f.Fail(ExitError, "INITIALIZATION_ERROR", err, "")
	}
	return c, nil
}
