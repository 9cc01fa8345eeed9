package item

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/basket/internal/cli"
)

// DeleteCmd returns the delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an item",
		Args:    cli.ItemIDArg,
		RunE:    runDelete,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	c, err := cli.Session(cmd, formatter)
	if err != nil {
		return err
	}

	item, err := cli.LookupItem(ctx, c, formatter, args[0])
	if err != nil {
		return err
	}

	if err := c.List().DeleteItem(ctx, item); err != nil {
		return formatter.Fail(cli.ExitError, "ITEM_DELETE_ERROR", err, "")
	}

	if formatter.Quiet {
		formatter.Printf("%d\n", item.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"id":      item.ID,
		})
	}

	formatter.Printf("%s\n", describeChange("Deleted", item))
	return nil
}
