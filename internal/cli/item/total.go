package item

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/basket/internal/cli"
	"github.com/thenoetrevino/basket/internal/cli/styles"
	"github.com/thenoetrevino/basket/internal/services/list"
)

// TotalCmd returns the total subcommand
func TotalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "total",
		Short: "Print the total estimated cost",
		Long: `Sum the prices of every item, bought or not. Prices that are not
numbers count as zero.`,
		Args: cobra.NoArgs,
		RunE: runTotal,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runTotal(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	c, err := cli.Session(cmd, formatter)
	if err != nil {
		return err
	}

	items, err := c.List().Snapshot(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "ITEM_FETCH_ERROR", err, "")
	}
	total := list.FormatCost(c.List().TotalCost(items))

	if formatter.Quiet {
		formatter.Printf("%s\n", total)
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"total":   total,
			"count":   len(items),
		})
	}

	formatter.Printf("%s\n", styles.RenderTotal(total))
	return nil
}
