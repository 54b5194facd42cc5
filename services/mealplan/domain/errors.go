// Package domain contains meal-plan domain errors shared across layers.
package domain

import "errors"

// Sentinel errors for the meal-plan context. Checked with errors.Is; mapped
// to HTTP statuses in pkg/errhttp.
var (
	// ErrInvalidWeekday indicates a day name outside Monday..Sunday.
	ErrInvalidWeekday = errors.New("invalid weekday")
)
