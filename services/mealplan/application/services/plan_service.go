package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/recipath/recipath/services/mealplan/domain/models"
	"github.com/recipath/recipath/services/mealplan/domain/repositories"
)

// NoMealPlanned is the display value for a weekday with no resolvable
// recipe — either nothing assigned or the assigned recipe no longer exists.
const NoMealPlanned = "No meal planned"

// RecipeSummary is the slice of catalog data the meal plan displays.
type RecipeSummary struct {
	ID              uuid.UUID
	Name            string
	Category        string
	PrepTimeMinutes int
	CookTimeMinutes int
}

// CatalogReader looks up a recipe summary in the owner's catalog. The
// concrete implementation is an adapter over the recipe service, wired in
// cmd/api; the meal plan context never imports recipe internals.
type CatalogReader interface {
	Summary(ctx context.Context, ownerID string, recipeID uuid.UUID) (RecipeSummary, error)
}

// DayView is one resolved weekday: either the assigned recipe's display data
// or the NoMealPlanned sentinel. Title is always set.
type DayView struct {
	Day      models.Weekday
	Assigned bool
	Title    string
	Recipe   *RecipeSummary
}

// PlanService manages the template week. Resolution against the catalog is
// done per read so the view never shows a stale name.
type PlanService struct {
	repo    repositories.PlanRepository
	catalog CatalogReader
}

func NewPlanService(repo repositories.PlanRepository, catalog CatalogReader) *PlanService {
	return &PlanService{repo: repo, catalog: catalog}
}

// Assign sets recipeID as day's meal after confirming the recipe exists in
// the caller's catalog. A recipe that is missing or owned by someone else
// surfaces the catalog's sentinel error unchanged.
func (s *PlanService) Assign(ctx context.Context, ownerID string, day models.Weekday, recipeID uuid.UUID) error {
	if _, err := s.catalog.Summary(ctx, ownerID, recipeID); err != nil {
		return err
	}
	if err := s.repo.Assign(ctx, ownerID, day, recipeID); err != nil {
		return fmt.Errorf("assign %s: %w", day, err)
	}
	return nil
}

// Clear removes day's assignment. Clearing an already-empty day succeeds.
func (s *PlanService) Clear(ctx context.Context, ownerID string, day models.Weekday) error {
	if err := s.repo.Clear(ctx, ownerID, day); err != nil {
		return fmt.Errorf("clear %s: %w", day, err)
	}
	return nil
}

// Week resolves the full plan into seven DayViews, Monday first. A dangling
// assignment (recipe deleted since) renders as NoMealPlanned; resolution
// failures are absorbed into the sentinel rather than failing the whole view.
func (s *PlanService) Week(ctx context.Context, ownerID string) ([]DayView, error) {
	plan, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load week plan: %w", err)
	}

	views := make([]DayView, 0, len(models.Weekdays))
	for _, day := range models.Weekdays {
		views = append(views, s.resolveDay(ctx, ownerID, plan, day))
	}
	return views, nil
}

// Plan returns the raw assignments without catalog resolution. Used by the
// shopping-list builder, which needs recipe IDs rather than display data.
func (s *PlanService) Plan(ctx context.Context, ownerID string) (*models.WeekPlan, error) {
	plan, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load week plan: %w", err)
	}
	return plan, nil
}

func (s *PlanService) resolveDay(ctx context.Context, ownerID string, plan *models.WeekPlan, day models.Weekday) DayView {
	recipeID, ok := plan.RecipeFor(day)
	if !ok {
		return DayView{Day: day, Title: NoMealPlanned}
	}

	summary, err := s.catalog.Summary(ctx, ownerID, recipeID)
	if err != nil {
		return DayView{Day: day, Title: NoMealPlanned}
	}

	return DayView{Day: day, Assigned: true, Title: summary.Name, Recipe: &summary}
}
