package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/recipath/recipath/services/mealplan/domain/models"
)

// PlanRepository persists weekday assignments, one row per (owner, weekday).
type PlanRepository interface {
	// Assign upserts the recipe for (ownerID, day). Last write wins.
	Assign(ctx context.Context, ownerID string, day models.Weekday, recipeID uuid.UUID) error

	// Clear deletes the assignment for (ownerID, day). Clearing a day with
	// no assignment is not an error.
	Clear(ctx context.Context, ownerID string, day models.Weekday) error

	// FindByOwner loads the owner's full week. Owners with no assignments
	// get an empty plan, never an error.
	FindByOwner(ctx context.Context, ownerID string) (*models.WeekPlan, error)
}
