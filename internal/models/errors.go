package models

import "errors"

// Domain-specific errors shared by the store and its callers
var (
	// ErrItemNotFound indicates that no item with the requested ID exists
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidCategory indicates a category name outside FOOD, SUPPLIES, BOOK
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidPriority indicates a priority name outside NORMAL, HIGH
	ErrInvalidPriority = errors.New("invalid priority")
)
