// Package handlers contains the HTTP handlers for the recipe catalog.
package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"

	appsvcs "github.com/recipath/recipath/services/recipe/application/services"
	"github.com/recipath/recipath/services/recipe/domain/models"
)

// RecipeResponse is the wire representation of a catalog recipe.
type RecipeResponse struct {
	ID              uuid.UUID `json:"id"                  example:"123e4567-e89b-12d3-a456-426614174000"`
	Name            string    `json:"name"                example:"Shakshuka"`
	Category        string    `json:"category"            example:"Breakfast"`
	PrepTimeMinutes int       `json:"prep_time_minutes"   example:"10"`
	CookTimeMinutes int       `json:"cook_time_minutes"   example:"25"`
	Servings        int       `json:"servings"            example:"2"`
	Ingredients     []string  `json:"ingredients"`
	Instructions    string    `json:"instructions"`
	PhotoURL        string    `json:"photo_url,omitempty" example:"https://storage.example/photos/abc"`
	CreatedAt       time.Time `json:"created_at"          example:"2024-01-15T10:30:00Z"`
} // @name RecipeResponse

// DraftResponse is an external or clipped recipe before it enters the catalog.
type DraftResponse struct {
	Name            string   `json:"name"              example:"Pie"`
	Category        string   `json:"category"          example:"Uncategorized"`
	PrepTimeMinutes int      `json:"prep_time_minutes" example:"0"`
	CookTimeMinutes int      `json:"cook_time_minutes" example:"0"`
	Servings        int      `json:"servings"          example:"0"`
	Ingredients     []string `json:"ingredients"`
	Instructions    string   `json:"instructions"`
} // @name DraftResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"recipe not found"`
} // @name ErrorResponse

func toRecipeResponse(ctx context.Context, svc *appsvcs.RecipeService, recipe *models.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:              recipe.ID,
		Name:            recipe.Name,
		Category:        recipe.Category,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		CookTimeMinutes: recipe.CookTimeMinutes,
		Servings:        recipe.Servings,
		Ingredients:     recipe.Ingredients,
		Instructions:    recipe.Instructions,
		PhotoURL:        svc.PhotoURL(ctx, recipe),
		CreatedAt:       recipe.CreatedAt,
	}
}

func toRecipeResponses(ctx context.Context, svc *appsvcs.RecipeService, recipes []*models.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, toRecipeResponse(ctx, svc, r))
	}
	return out
}

func toDraftResponse(draft models.RecipeDraft) DraftResponse {
	return DraftResponse{
		Name:            draft.Name,
		Category:        draft.Category,
		PrepTimeMinutes: draft.PrepTimeMinutes,
		CookTimeMinutes: draft.CookTimeMinutes,
		Servings:        draft.Servings,
		Ingredients:     draft.Ingredients,
		Instructions:    draft.Instructions,
	}
}
