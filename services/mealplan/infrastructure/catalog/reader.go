// Package catalog adapts the recipe application service to the meal-plan
// context's CatalogReader port.
package catalog

import (
	"context"

	"github.com/google/uuid"

	mealplansvcs "github.com/recipath/recipath/services/mealplan/application/services"
	recipesvcs "github.com/recipath/recipath/services/recipe/application/services"
)

// Reader translates recipe aggregates into meal-plan summaries.
type Reader struct {
	recipes *recipesvcs.RecipeService
}

func NewReader(recipes *recipesvcs.RecipeService) *Reader {
	return &Reader{recipes: recipes}
}

// Summary fetches the recipe and projects the fields the plan view displays.
// Sentinel errors (not found, not owner) pass through for the caller to map.
func (r *Reader) Summary(ctx context.Context, ownerID string, recipeID uuid.UUID) (mealplansvcs.RecipeSummary, error) {
	recipe, err := r.recipes.Get(ctx, ownerID, recipeID)
	if err != nil {
		return mealplansvcs.RecipeSummary{}, err
	}
	return mealplansvcs.RecipeSummary{
		ID:              recipe.ID,
		Name:            recipe.Name,
		Category:        recipe.Category,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		CookTimeMinutes: recipe.CookTimeMinutes,
	}, nil
}
