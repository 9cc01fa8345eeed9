// Package item implements the shopping list subcommands: add, list, show,
// edit, done, delete, clear and total.
package item

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/basket/internal/models"
	"github.com/thenoetrevino/basket/internal/services/list"
)

// Commands returns every item subcommand, ready to be attached to the root.
func Commands() []*cobra.Command {
	return []*cobra.Command{
		AddCmd(),
		ListCmd(),
		ShowCmd(),
		EditCmd(),
		DoneCmd(),
		DeleteCmd(),
		ClearCmd(),
		TotalCmd(),
	}
}

// itemJSON is the wire shape of an item in --json output.
type itemJSON struct {
	models.Item
	Cost string `json:"cost"`
}

func toJSON(item models.Item) itemJSON {
	return itemJSON{Item: item, Cost: list.FormatCost(list.ParsePrice(item.Price))}
}

func toJSONList(items []models.Item) []itemJSON {
	out := make([]itemJSON, 0, len(items))
	for _, item := range items {
		out = append(out, toJSON(item))
	}
	return out
}

func describeChange(verb string, item models.Item) string {
	return fmt.Sprintf("✓ %s '%s' (ID: %d)", verb, item.Title, item.ID)
}
