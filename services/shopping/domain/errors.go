// Package domain contains shopping-list domain errors shared across layers.
package domain

import "errors"

// Sentinel errors for the shopping context. Checked with errors.Is; mapped
// to HTTP statuses in pkg/errhttp.
var (
	// ErrListNotFound indicates no stored list document for the owner.
	ErrListNotFound = errors.New("shopping list not found")
	// ErrNotListOwner indicates the caller does not own the list.
	ErrNotListOwner = errors.New("caller is not the shopping list owner")
	// ErrItemOutOfRange indicates an item index outside the list bounds.
	ErrItemOutOfRange = errors.New("shopping list item index out of range")
)
