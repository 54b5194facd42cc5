// Package postgres implements the meal-plan repository on PostgreSQL, one
// row per (owner, weekday) with upsert semantics.
package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	pkgdb "github.com/recipath/recipath/pkg/database"
	"github.com/recipath/recipath/services/mealplan/domain/models"
	"github.com/recipath/recipath/services/mealplan/infrastructure/persistence/postgres/db"
)

// PlanRepository persists weekday assignments.
type PlanRepository struct {
	queries *db.Queries
}

func NewPlanRepository(database *pkgdb.Database) *PlanRepository {
	return &PlanRepository{queries: db.New(database.DB())}
}

// Assign upserts the recipe for (ownerID, day); last write wins.
func (r *PlanRepository) Assign(ctx context.Context, ownerID string, day models.Weekday, recipeID uuid.UUID) error {
	err := r.queries.UpsertAssignment(ctx, db.UpsertAssignmentParams{
		OwnerID:  ownerID,
		Weekday:  string(day),
		RecipeID: recipeID,
	})
	if err != nil {
		return fmt.Errorf("upsert assignment: %w", err)
	}
	return nil
}

// Clear deletes the assignment for (ownerID, day); deleting nothing is fine.
func (r *PlanRepository) Clear(ctx context.Context, ownerID string, day models.Weekday) error {
	err := r.queries.ClearAssignment(ctx, db.ClearAssignmentParams{
		OwnerID: ownerID,
		Weekday: string(day),
	})
	if err != nil {
		return fmt.Errorf("clear assignment: %w", err)
	}
	return nil
}

// FindByOwner loads all of the owner's assignments into a WeekPlan. Rows with
// a weekday label the domain no longer recognizes are skipped.
func (r *PlanRepository) FindByOwner(ctx context.Context, ownerID string) (*models.WeekPlan, error) {
	rows, err := r.queries.ListAssignmentsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}

	plan := models.NewWeekPlan(ownerID)
	for _, row := range rows {
		day, err := models.ParseWeekday(row.Weekday)
		if err != nil {
			continue
		}
		plan.Assign(day, row.RecipeID)
	}
	return plan, nil
}
