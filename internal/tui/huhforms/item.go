// Package huhforms builds the huh forms used by the TUI.
package huhforms

import (
	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/basket/internal/models"
	"github.com/thenoetrevino/basket/internal/services/list"
)

// ItemValues holds the fields a form edits. Forms write through pointers to
// it, so it must outlive the form.
type ItemValues struct {
	Title       string
	Description string
	Price       string
	Category    models.Category
	Priority    models.Priority
	Bought      bool
}

// NewItemValues returns empty values for the add form.
func NewItemValues() *ItemValues {
	return &ItemValues{Category: models.CategoryFood, Priority: models.PriorityNormal}
}

// ValuesFromItem copies item into form values for the edit form.
func ValuesFromItem(item models.Item) *ItemValues {
	return &ItemValues{
		Title:       item.Title,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Priority:    item.Priority,
		Bought:      item.IsDone,
	}
}

// AddRequest converts the values into an add request.
func (v *ItemValues) AddRequest() list.AddItemRequest {
	return list.AddItemRequest{
		Title:       v.Title,
		Description: v.Description,
		Price:       v.Price,
		Category:    v.Category,
	}
}

// Apply returns item with every editable field replaced by the form values.
// ID and CreateDate are kept.
func (v *ItemValues) Apply(item models.Item) models.Item {
	item.Title = v.Title
	item.Description = v.Description
	item.Price = v.Price
	item.Category = v.Category
	item.Priority = v.Priority
	item.IsDone = v.Bought
	return item
}

func categoryOptions() []huh.Option[models.Category] {
	return []huh.Option[models.Category]{
		huh.NewOption("Food", models.CategoryFood),
		huh.NewOption("Supplies", models.CategorySupplies),
		huh.NewOption("Book", models.CategoryBook),
	}
}

func commonFields(v *ItemValues, descriptionLines int) []huh.Field {
	return []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("What do you need?").
			Value(&v.Title),
		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Brand, size, where to buy...").
			CharLimit(2000).
			Lines(descriptionLines).
			Value(&v.Description),
		huh.NewInput().
			Key("price").
			Title("Estimated price").
			Placeholder("0.00").
			Value(&v.Price),
		huh.NewSelect[models.Category]().
			Key("category").
			Title("Category").
			Options(categoryOptions()...).
			Value(&v.Category),
	}
}

// CreateAddItemForm creates the form for a new item
func CreateAddItemForm(v *ItemValues, descriptionLines int) *huh.Form {
	form := huh.NewForm(huh.NewGroup(commonFields(v, descriptionLines)...).Title("New item"))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}

// CreateEditItemForm creates the form for an existing item, including the
// priority and the Bought toggle.
func CreateEditItemForm(v *ItemValues, descriptionLines int) *huh.Form {
	fields := append(commonFields(v, descriptionLines),
		huh.NewSelect[models.Priority]().
			Key("priority").
			Title("Priority").
			Options(
				huh.NewOption("Normal", models.PriorityNormal),
				huh.NewOption("High", models.PriorityHigh),
			).
			Value(&v.Priority),
		huh.NewConfirm().
			Key("bought").
			Title("Bought").
			Affirmative("Yes").
			Negative("No").
			Value(&v.Bought),
	)

	form := huh.NewForm(huh.NewGroup(fields...).Title("Edit item"))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}
