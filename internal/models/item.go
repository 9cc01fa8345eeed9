package models

import (
	"fmt"
	"strings"
)

// Category groups shopping items. Stored as its upper-case name.
type Category string

const (
	CategoryFood     Category = "FOOD"
	CategorySupplies Category = "SUPPLIES"
	CategoryBook     Category = "BOOK"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryFood, CategorySupplies, CategoryBook}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategorySupplies, CategoryBook:
		return true
	}
	return false
}

// ParseCategory maps a category name (case-insensitive) to its Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w '%s' (must be: food, supplies, book)", ErrInvalidCategory, s)
	}
	return c, nil
}

// Priority marks how important an item is. New items are always PriorityNormal.
type Priority string

const (
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	return p == PriorityNormal || p == PriorityHigh
}

// ParsePriority maps a priority name (case-insensitive) to its Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w '%s' (must be: normal, high)", ErrInvalidPriority, s)
	}
	return p, nil
}

// Item is a single entry on the shopping list
type Item struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	CreateDate  string   `json:"create_date"`
	Priority    Priority `json:"priority"`
	IsDone      bool     `json:"is_done"`
	Category    Category `json:"category"`
}

// GetID lets output formatters print just the ID in quiet mode.
func (i Item) GetID() int {
	return i.ID
}

// WithDone returns a copy of the item with only the completion flag replaced.
func (i Item) WithDone(done bool) Item {
	i.IsDone = done
	return i
}
