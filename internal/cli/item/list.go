package item

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/basket/internal/cli"
	"github.com/thenoetrevino/basket/internal/cli/styles"
	"github.com/thenoetrevino/basket/internal/models"
	"github.com/thenoetrevino/basket/internal/services/list"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the items on the shopping list",
		Long: `List every item in insertion order with the total estimated cost.

With --watch the list is printed again every time it changes, including
changes made by other basket processes while the daemon is running.
Press Ctrl+C to stop watching.

Examples:
  basket list
  basket list --json
  basket list --watch --json   # one JSON document per change
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().BoolP("watch", "w", false, "Keep printing the list as it changes")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	watch, _ := cmd.Flags().GetBool("watch")

	c, err := cli.Session(cmd, formatter)
	if err != nil {
		return err
	}

	if !watch {
		items, err := c.List().Snapshot(cmd.Context())
		if err != nil {
			return formatter.Fail(cli.ExitError, "ITEM_FETCH_ERROR", err, "")
		}
		return printItems(formatter, c.List(), items)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchItems(ctx, formatter, c.List())
}

// watchItems prints every snapshot until ctx is done.
func watchItems(ctx context.Context, formatter *cli.OutputFormatter, svc list.Service) error {
	snapshots, err := svc.ListItems(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "ITEM_FETCH_ERROR", err, "")
	}

	first := true
	for items := range snapshots {
		if !first && !formatter.JSON && !formatter.Quiet {
			formatter.Printf("\n")
		}
		first = false
		if err := printItems(formatter, svc, items); err != nil {
			return err
		}
	}
	return nil
}

func printItems(formatter *cli.OutputFormatter, svc list.Service, items []models.Item) error {
	total := list.FormatCost(svc.TotalCost(items))

	if formatter.Quiet {
		for _, item := range items {
			formatter.Printf("%d\n", item.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"items":   toJSONList(items),
			"count":   len(items),
			"total":   total,
		})
	}

	formatter.Printf("%s\n", styles.TitleStyle.Render("Shopping List"))
	if len(items) == 0 {
		formatter.Printf("%s\n", styles.SubtleStyle.Render("Your shopping list is empty. Add something with 'basket add'."))
	}
	for _, item := range items {
		formatter.Printf("%s\n", styles.RenderItemLine(item))
	}
	formatter.Printf("\n%s\n", styles.RenderTotal(total))
	return nil
}
