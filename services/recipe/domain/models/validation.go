package models

import "errors"

// Validation failures returned by NewRecipe and Recipe.Apply. The application
// layer wraps these with the ErrInvalidRecipe sentinel before they reach
// callers.
var (
	errEmptyName     = errors.New("recipe name must not be empty")
	errNegativeValue = errors.New("prep time, cook time, and servings must not be negative")
)
