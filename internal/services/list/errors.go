package list

import "errors"

// Validation errors, reported by the presentation layer before AddItem
var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrEmptyPrice       = errors.New("price cannot be empty")
)

// ErrIDMismatch is returned by EditItem when the edited item is not the original one.
var ErrIDMismatch = errors.New("edited item must keep the original id")
