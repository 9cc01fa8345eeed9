package item

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/basket/internal/cli"
	"github.com/thenoetrevino/basket/internal/models"
	"github.com/thenoetrevino/basket/internal/services/list"
)

// EditCmd returns the edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an item",
		Long: `Change one or more fields of an item. Fields without a flag keep their value.
The creation date never changes.

Examples:
  basket edit 3 --price=3.10
  basket edit 3 --title="Oat milk" --category=food --priority=high
  basket edit 3 --done
`,
		Args: cli.ItemIDArg,
		RunE: runEdit,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description, use - for stdin")
	cmd.Flags().String("price", "", "New estimated price")
	cmd.Flags().String("category", "", "New category: food, supplies, book")
	cmd.Flags().String("priority", "", "New priority: normal, high")
	cmd.Flags().Bool("done", false, "Mark as bought (--done=false to reopen)")

	cli.AddOutputFlags(cmd)

	return cmd
}

var (
	errNothingToEdit = errors.New("nothing to edit")
	errFlagValue     = errors.New("failed to parse flag")
)

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	c, err := cli.Session(cmd, formatter)
	if err != nil {
		return err
	}

	original, err := cli.LookupItem(ctx, c, formatter, args[0])
	if err != nil {
		return err
	}

	edited, err := applyEditFlags(cmd, original)
	if errors.Is(err, errFlagValue) {
		return formatter.Fail(cli.ExitUsage, "INVALID_FLAG", err, "")
	}
	if errors.Is(err, errNothingToEdit) {
		return formatter.Fail(cli.ExitUsage, "NOTHING_TO_EDIT", err,
			"Pass at least one of --title, --description, --price, --category, --priority, --done")
	}
	if errors.Is(err, models.ErrInvalidCategory) || errors.Is(err, models.ErrInvalidPriority) ||
		errors.Is(err, list.ErrEmptyTitle) || errors.Is(err, list.ErrEmptyDescription) ||
		errors.Is(err, list.ErrEmptyPrice) {
		return formatter.Fail(cli.ExitValidation, "VALIDATION_ERROR", err, "")
	}
	if err != nil {
		return formatter.Fail(cli.ExitDataErr, "STDIN_READ_ERROR", err, "")
	}

	if err := c.List().EditItem(ctx, original, edited); err != nil {
		return formatter.Fail(cli.ExitError, "ITEM_UPDATE_ERROR", err, "")
	}

	updated, err := c.List().Get(ctx, original.ID)
	if err != nil {
		return formatter.Fail(cli.ExitError, "ITEM_FETCH_ERROR", err, "")
	}

	if formatter.Quiet {
		formatter.Printf("%d\n", updated.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"item":    toJSON(updated),
		})
	}

	formatter.Printf("%s\n", describeChange("Updated", updated))
	return nil
}

// applyEditFlags returns item with every changed flag applied.
// Text fields may not be set to blank.
func applyEditFlags(cmd *cobra.Command, item models.Item) (models.Item, error) {
	flags := cmd.Flags()
	changed := false

	text := []struct {
		name   string
		target *string
		empty  error
	}{
		{"title", &item.Title, list.ErrEmptyTitle},
		{"description", &item.Description, list.ErrEmptyDescription},
		{"price", &item.Price, list.ErrEmptyPrice},
	}
	for _, field := range text {
		if !flags.Changed(field.name) {
			continue
		}
		value, err := flags.GetString(field.name)
		if err != nil {
			return item, fmt.Errorf("%w %s: %w", errFlagValue, field.name, err)
		}
		if field.name == "description" {
			if value, err = cli.ReadDescription(value); err != nil {
				return item, err
			}
		}
		if strings.TrimSpace(value) == "" {
			return item, field.empty
		}
		*field.target = value
		changed = true
	}

	if flags.Changed("category") {
		name, err := flags.GetString("category")
		if err != nil {
			return item, fmt.Errorf("%w category: %w", errFlagValue, err)
		}
		category, err := models.ParseCategory(name)
		if err != nil {
			return item, err
		}
		item.Category = category
		changed = true
	}

	if flags.Changed("priority") {
		name, err := flags.GetString("priority")
		if err != nil {
			return item, fmt.Errorf("%w priority: %w", errFlagValue, err)
		}
		priority, err := models.ParsePriority(name)
		if err != nil {
			return item, err
		}
		item.Priority = priority
		changed = true
	}

	if flags.Changed("done") {
		done, err := flags.GetBool("done")
		if err != nil {
			return item, fmt.Errorf("%w done: %w", errFlagValue, err)
		}
		item.IsDone = done
		changed = true
	}

	if !changed {
		return item, errNothingToEdit
	}
	return item, nil
}
