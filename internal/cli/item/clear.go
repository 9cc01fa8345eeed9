package item

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/basket/internal/cli"
)

// ClearCmd returns the clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every item",
		Long: `Remove every item from the shopping list. This cannot be undone,
so --force is required.

Example:
  basket clear --force
`,
		Args: cobra.NoArgs,
		RunE: runClear,
	}

	cmd.Flags().BoolP("force", "f", false, "Confirm deleting every item")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	force, _ := cmd.Flags().GetBool("force")

	if !force {
		return formatter.Fail(cli.ExitUsage, "CONFIRMATION_REQUIRED",
			errors.New("refusing to clear the list without --force"),
			"Run 'basket clear --force' to delete every item")
	}

	c, err := cli.Session(cmd, formatter)
	if err != nil {
		return err
	}

	items, err := c.List().Snapshot(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "ITEM_FETCH_ERROR", err, "")
	}

	if err := c.List().ClearAll(ctx); err != nil {
		return formatter.Fail(cli.ExitError, "ITEM_CLEAR_ERROR", err, "")
	}

	if formatter.Quiet {
		formatter.Printf("%d\n", len(items))
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"cleared": len(items),
		})
	}

	formatter.Printf("✓ Cleared %d item(s)\n", len(items))
	return nil
}
