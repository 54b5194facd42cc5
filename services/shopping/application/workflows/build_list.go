// Package workflows holds the Temporal workflow that rebuilds the shopping
// list from the week plan. The workflow is optional infrastructure: the
// from-plan endpoint falls back to a synchronous build when no Temporal
// server is configured.
package workflows

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	mealplansvcs "github.com/recipath/recipath/services/mealplan/application/services"
	"github.com/recipath/recipath/services/mealplan/domain/models"
	shoppingsvcs "github.com/recipath/recipath/services/shopping/application/services"
)

// BuildWeeklyShoppingListName identifies the workflow for StartWorkflow calls.
const BuildWeeklyShoppingListName = "BuildWeeklyShoppingList"

// Activities bundles the application services the workflow's activities use.
// Registered on the worker as a struct so activities resolve by method name.
type Activities struct {
	Plans    *mealplansvcs.PlanService
	Shopping *shoppingsvcs.ShoppingService
}

// PlannedRecipeIDs returns the owner's assigned recipe IDs in weekday order,
// Monday first, deduplicated (a recipe planned twice merges once anyway).
func (a *Activities) PlannedRecipeIDs(ctx context.Context, ownerID string) ([]uuid.UUID, error) {
	plan, err := a.Plans.Plan(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, day := range models.Weekdays {
		id, ok := plan.RecipeFor(day)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

// MergePlannedRecipe folds one planned recipe's ingredients into the list.
// Merging is idempotent, so activity retries are safe.
func (a *Activities) MergePlannedRecipe(ctx context.Context, ownerID string, recipeID uuid.UUID) error {
	_, err := a.Shopping.MergeRecipe(ctx, ownerID, recipeID)
	return err
}

// BuildWeeklyShoppingList walks the owner's week plan and merges every
// assigned recipe's ingredients into the shopping list. Recipes that fail to
// merge (deleted since planning, for example) are skipped, mirroring the
// display-time resolution rule — the workflow builds from what exists.
// Returns the number of recipes merged.
func BuildWeeklyShoppingList(ctx workflow.Context, ownerID string) (int, error) {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval: time.Second,
			MaximumAttempts: 3,
		},
	})
	log := workflow.GetLogger(ctx)

	var ids []uuid.UUID
	if err := workflow.ExecuteActivity(ctx, "PlannedRecipeIDs", ownerID).Get(ctx, &ids); err != nil {
		return 0, err
	}

	merged := 0
	for _, id := range ids {
		if err := workflow.ExecuteActivity(ctx, "MergePlannedRecipe", ownerID, id).Get(ctx, nil); err != nil {
			log.Warn("skipping planned recipe", "recipe_id", id.String(), "error", err)
			continue
		}
		merged++
	}
	return merged, nil
}
