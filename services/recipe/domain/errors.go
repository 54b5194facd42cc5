package domain

import "errors"

// Sentinel errors for the recipe domain. Use errors.Is() to check these.
var (
	// ErrRecipeNotFound indicates the requested recipe does not exist.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrNotRecipeOwner indicates the caller does not own the recipe.
	ErrNotRecipeOwner = errors.New("recipe belongs to another user")

	// ErrInvalidRecipe indicates the recipe violates domain constraints,
	// e.g. an empty name or negative times.
	ErrInvalidRecipe = errors.New("invalid recipe")

	// ErrUnmappableRecord indicates an external record is not an object and
	// cannot be mapped into a recipe draft.
	ErrUnmappableRecord = errors.New("unmappable external record")
)
