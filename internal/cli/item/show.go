package item

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/basket/internal/cli"
	"github.com/thenoetrevino/basket/internal/cli/styles"
	"github.com/thenoetrevino/basket/internal/models"
	"github.com/thenoetrevino/basket/internal/services/list"
)

// ShowCmd returns the show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show item details",
		Long: `Display every field of an item. The description is rendered as markdown.

Examples:
  basket show 3
  basket show 3 --json
`,
		Args: cli.ItemIDArg,
		RunE: runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	c, err := cli.Session(cmd, formatter)
	if err != nil {
		return err
	}

	item, err := cli.LookupItem(cmd.Context(), c, formatter, args[0])
	if err != nil {
		return err
	}

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

	rendered, err := renderMarkdown(itemMarkdown(item))
	if err != nil {
		return formatter.Fail(cli.ExitError, "RENDER_ERROR", err, "")
	}
	formatter.Printf("%s", rendered)
	return nil
}

// itemMarkdown lays an item out as a markdown document.
func itemMarkdown(item models.Item) string {
	bought := "no"
	if item.IsDone {
		bought = "yes"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", styles.CategoryGlyph(item.Category), item.Title)
	fmt.Fprintf(&b, "- **ID:** %d\n", item.ID)
	fmt.Fprintf(&b, "- **Price:** $%s (counted as $%s)\n", item.Price, list.FormatCost(list.ParsePrice(item.Price)))
	fmt.Fprintf(&b, "- **Category:** %s\n", strings.ToLower(string(item.Category)))
	fmt.Fprintf(&b, "- **Priority:** %s\n", strings.ToLower(string(item.Priority)))
	fmt.Fprintf(&b, "- **Bought:** %s\n", bought)
	fmt.Fprintf(&b, "- **Created:** %s\n\n", item.CreateDate)
	b.WriteString("## Description\n\n")
	b.WriteString(item.Description)
	b.WriteString("\n")
	return b.String()
}

func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(styles.CardWidth+20),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
