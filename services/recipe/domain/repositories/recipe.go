package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/recipath/recipath/services/recipe/domain/models"
)

// RecipeRepository is the persistence interface for the Recipe aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// All lookups are scoped by owner. GetByID returns ErrRecipeNotFound for a
// missing ID regardless of who owns it; the ownership check against the
// caller happens in the application layer so it can distinguish "not found"
// from "not yours".
type RecipeRepository interface {
	Save(ctx context.Context, recipe *models.Recipe) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error)

	// FindByOwner returns every recipe owned by ownerID in insertion order,
	// as reported by the persistence layer. No implicit re-sorting.
	FindByOwner(ctx context.Context, ownerID string) ([]*models.Recipe, error)

	// Update persists changes to an existing recipe.
	Update(ctx context.Context, recipe *models.Recipe) error

	// Delete removes a recipe by ID. Deleting never cascades to meal plans
	// or shopping lists; dangling references are resolved at display time.
	Delete(ctx context.Context, id uuid.UUID) error
}
