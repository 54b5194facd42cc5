package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/recipath/recipath/services/mealplan/domain/models"
)

// memoryPlanRepository stores assignments per owner in memory.
type memoryPlanRepository struct {
	plans map[string]*models.WeekPlan
}

func newMemoryPlanRepository() *memoryPlanRepository {
	return &memoryPlanRepository{plans: make(map[string]*models.WeekPlan)}
}

func (m *memoryPlanRepository) Assign(_ context.Context, ownerID string, day models.Weekday, recipeID uuid.UUID) error {
	plan, ok := m.plans[ownerID]
	if !ok {
		plan = models.NewWeekPlan(ownerID)
		m.plans[ownerID] = plan
	}
	plan.Assign(day, recipeID)
	return nil
}

func (m *memoryPlanRepository) Clear(_ context.Context, ownerID string, day models.Weekday) error {
	if plan, ok := m.plans[ownerID]; ok {
		plan.Clear(day)
	}
	return nil
}

func (m *memoryPlanRepository) FindByOwner(_ context.Context, ownerID string) (*models.WeekPlan, error) {
	if plan, ok := m.plans[ownerID]; ok {
		return plan, nil
	}
	return models.NewWeekPlan(ownerID), nil
}

// stubCatalog resolves summaries from a fixed map; unknown IDs fail with
// errRecipeGone.
type stubCatalog struct {
	recipes map[uuid.UUID]RecipeSummary
}

var errRecipeGone = errors.New("recipe not found")

func (c *stubCatalog) Summary(_ context.Context, _ string, recipeID uuid.UUID) (RecipeSummary, error) {
	if s, ok := c.recipes[recipeID]; ok {
		return s, nil
	}
	return RecipeSummary{}, errRecipeGone
}

func TestPlanServiceAssign(t *testing.T) {
	ctx := context.Background()
	recipeID := uuid.New()
	catalog := &stubCatalog{recipes: map[uuid.UUID]RecipeSummary{
		recipeID: {ID: recipeID, Name: "Shakshuka"},
	}}

	t.Run("assigns a catalog recipe", func(t *testing.T) {
		repo := newMemoryPlanRepository()
		svc := NewPlanService(repo, catalog)

		if err := svc.Assign(ctx, "user-1", models.Monday, recipeID); err != nil {
			t.Fatalf("Assign() error = %v", err)
		}
		plan, _ := repo.FindByOwner(ctx, "user-1")
		if got, ok := plan.RecipeFor(models.Monday); !ok || got != recipeID {
			t.Errorf("RecipeFor(Monday) = %v, %v", got, ok)
		}
	})

	t.Run("unknown recipe surfaces the catalog error", func(t *testing.T) {
		repo := newMemoryPlanRepository()
		svc := NewPlanService(repo, catalog)

		err := svc.Assign(ctx, "user-1", models.Monday, uuid.New())
		if !errors.Is(err, errRecipeGone) {
			t.Fatalf("Assign() error = %v, want the catalog error", err)
		}
		plan, _ := repo.FindByOwner(ctx, "user-1")
		if _, ok := plan.RecipeFor(models.Monday); ok {
			t.Error("rejected assignment was persisted")
		}
	})

	t.Run("reassignment replaces silently", func(t *testing.T) {
		other := uuid.New()
		catalog.recipes[other] = RecipeSummary{ID: other, Name: "Carbonara"}
		repo := newMemoryPlanRepository()
		svc := NewPlanService(repo, catalog)

		if err := svc.Assign(ctx, "user-1", models.Friday, recipeID); err != nil {
			t.Fatal(err)
		}
		if err := svc.Assign(ctx, "user-1", models.Friday, other); err != nil {
			t.Fatal(err)
		}
		plan, _ := repo.FindByOwner(ctx, "user-1")
		if got, _ := plan.RecipeFor(models.Friday); got != other {
			t.Errorf("RecipeFor(Friday) = %v, want the later recipe", got)
		}
	})
}

func TestPlanServiceWeek(t *testing.T) {
	ctx := context.Background()
	recipeID := uuid.New()
	catalog := &stubCatalog{recipes: map[uuid.UUID]RecipeSummary{
		recipeID: {ID: recipeID, Name: "Shakshuka", Category: "Breakfast", PrepTimeMinutes: 10},
	}}

	t.Run("empty plan renders seven sentinel days", func(t *testing.T) {
		svc := NewPlanService(newMemoryPlanRepository(), catalog)

		week, err := svc.Week(ctx, "user-1")
		if err != nil {
			t.Fatalf("Week() error = %v", err)
		}
		if len(week) != len(models.Weekdays) {
			t.Fatalf("Week() returned %d days, want %d", len(week), len(models.Weekdays))
		}
		for i, view := range week {
			if view.Day != models.Weekdays[i] {
				t.Errorf("day %d = %s, want %s", i, view.Day, models.Weekdays[i])
			}
			if view.Assigned || view.Title != NoMealPlanned || view.Recipe != nil {
				t.Errorf("%s: %+v, want unassigned sentinel", view.Day, view)
			}
		}
	})

	t.Run("assigned day shows the recipe", func(t *testing.T) {
		repo := newMemoryPlanRepository()
		svc := NewPlanService(repo, catalog)
		if err := svc.Assign(ctx, "user-1", models.Wednesday, recipeID); err != nil {
			t.Fatal(err)
		}

		week, err := svc.Week(ctx, "user-1")
		if err != nil {
			t.Fatalf("Week() error = %v", err)
		}
		wednesday := week[2]
		if !wednesday.Assigned || wednesday.Title != "Shakshuka" {
			t.Errorf("Wednesday = %+v", wednesday)
		}
		if wednesday.Recipe == nil || wednesday.Recipe.PrepTimeMinutes != 10 {
			t.Errorf("Wednesday.Recipe = %+v", wednesday.Recipe)
		}
	})

	t.Run("dangling assignment renders as sentinel, not error", func(t *testing.T) {
		repo := newMemoryPlanRepository()
		svc := NewPlanService(repo, catalog)
		if err := svc.Assign(ctx, "user-1", models.Saturday, recipeID); err != nil {
			t.Fatal(err)
		}

		// Recipe deleted after assignment.
		delete(catalog.recipes, recipeID)
		defer func() {
			catalog.recipes[recipeID] = RecipeSummary{ID: recipeID, Name: "Shakshuka", Category: "Breakfast", PrepTimeMinutes: 10}
		}()

		week, err := svc.Week(ctx, "user-1")
		if err != nil {
			t.Fatalf("Week() error = %v", err)
		}
		saturday := week[5]
		if saturday.Assigned || saturday.Title != NoMealPlanned {
			t.Errorf("Saturday = %+v, want sentinel", saturday)
		}
	})
}

func TestPlanServiceClear(t *testing.T) {
	ctx := context.Background()
	recipeID := uuid.New()
	catalog := &stubCatalog{recipes: map[uuid.UUID]RecipeSummary{
		recipeID: {ID: recipeID, Name: "Shakshuka"},
	}}
	repo := newMemoryPlanRepository()
	svc := NewPlanService(repo, catalog)

	if err := svc.Assign(ctx, "user-1", models.Monday, recipeID); err != nil {
		t.Fatal(err)
	}
	if err := svc.Clear(ctx, "user-1", models.Monday); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	week, err := svc.Week(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if week[0].Assigned || week[0].Title != NoMealPlanned {
		t.Errorf("Monday after clear = %+v", week[0])
	}

	// Clearing again is still fine.
	if err := svc.Clear(ctx, "user-1", models.Monday); err != nil {
		t.Errorf("Clear() on empty day error = %v", err)
	}
}
