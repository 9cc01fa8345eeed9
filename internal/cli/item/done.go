package item

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/basket/internal/cli"
)

// DoneCmd returns the done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark an item as bought",
		Long: `Check an item off the list, or put it back with --undo.

Examples:
  basket done 3
  basket done 3 --undo
`,
		Args: cli.ItemIDArg,
		RunE: runDone,
	}

	cmd.Flags().Bool("undo", false, "Mark the item as not bought")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDone(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	undo, _ := cmd.Flags().GetBool("undo")

	c, err := cli.Session(cmd, formatter)
	if err != nil {
		return err
	}

	item, err := cli.LookupItem(ctx, c, formatter, args[0])
	if err != nil {
		return err
	}

	if err := c.List().ToggleDone(ctx, item, !undo); err != nil {
		return formatter.Fail(cli.ExitError, "ITEM_UPDATE_ERROR", err, "")
	}
	item = item.WithDone(!undo)

	if formatter.Quiet {
		formatter.Printf("%d\n", item.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"item":    toJSON(item),
		})
	}

	verb := "Bought"
	if undo {
		verb = "Reopened"
	}
	formatter.Printf("%s\n", describeChange(verb, item))
	return nil
}
