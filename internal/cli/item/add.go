package item

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/basket/internal/cli"
	"github.com/thenoetrevino/basket/internal/models"
	"github.com/thenoetrevino/basket/internal/services/list"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to the shopping list",
		Long: `Add a new item. Title, description and price are required.

Examples:
  # Simple item (human-readable output)
  basket add --title="Milk" --description="2 liters, skimmed" --price=2.50

  # Pick a category
  basket add --title="Dune" --description="paperback" --price=9.99 --category=book

  # Description from stdin
  echo "for the party" | basket add --title="Cups" --description=- --price=3 --category=supplies

  # Quiet mode for bash capture
  ITEM_ID=$(basket add --title="Eggs" --description="dozen" --price=4 --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Item title (required)")
	cmd.Flags().String("description", "", "Item description, use - for stdin (required)")
	cmd.Flags().String("price", "", "Estimated price (required)")
	cmd.Flags().String("category", "food", "Category: food, supplies, book")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	price, _ := cmd.Flags().GetString("price")
	categoryName, _ := cmd.Flags().GetString("category")

	description, err := cli.ReadDescription(description)
	if err != nil {
		return formatter.Fail(cli.ExitDataErr, "STDIN_READ_ERROR", err, "")
	}

	category, err := models.ParseCategory(categoryName)
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_CATEGORY", err,
			"Valid categories are: food, supplies, book")
	}

	req := list.AddItemRequest{
		Title:       title,
		Description: description,
		Price:       price,
		Category:    category,
	}
	if err := list.ValidateAddRequest(req); err != nil {
		return formatter.Fail(cli.ExitValidation, "VALIDATION_ERROR", err,
			"Please fill in all fields: --title, --description and --price")
	}

	c, err := cli.Session(cmd, formatter)
	if err != nil {
		return err
	}

	id, err := c.List().AddItem(ctx, req)
	if err != nil {
		return formatter.Fail(cli.ExitError, "ITEM_CREATE_ERROR", err, "")
	}

	item, err := c.List().Get(ctx, id)
	if err != nil {
		return formatter.Fail(cli.ExitError, "ITEM_FETCH_ERROR", err, "")
	}

	if formatter.Quiet {
		formatter.Printf("%d\n", id)
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"item":    toJSON(item),
		})
	}

	formatter.Printf("✓ Added '%s' (ID: %d)\n", title, id)
	formatter.Printf("  Category: %s\n", category)
	formatter.Printf("  Price: $%s\n", price)
	return nil
}
