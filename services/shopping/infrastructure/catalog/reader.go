// Package catalog adapts the recipe application service to the shopping
// context's CatalogReader port.
package catalog

import (
	"context"

	"github.com/google/uuid"

	recipesvcs "github.com/recipath/recipath/services/recipe/application/services"
)

// Reader exposes recipe ingredient lines to the shopping aggregator.
type Reader struct {
	recipes *recipesvcs.RecipeService
}

func NewReader(recipes *recipesvcs.RecipeService) *Reader {
	return &Reader{recipes: recipes}
}

// Ingredients returns the recipe's normalized ingredient lines. Sentinel
// errors (not found, not owner) pass through for the caller to map.
func (r *Reader) Ingredients(ctx context.Context, ownerID string, recipeID uuid.UUID) ([]string, error) {
	recipe, err := r.recipes.Get(ctx, ownerID, recipeID)
	if err != nil {
		return nil, err
	}
	return recipe.Ingredients, nil
}
