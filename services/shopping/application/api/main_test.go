package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/recipath/recipath/pkg/app"
	"github.com/recipath/recipath/pkg/auth"
	"github.com/recipath/recipath/pkg/config"
	"github.com/recipath/recipath/pkg/logger"
	mealplansvcs "github.com/recipath/recipath/services/mealplan/application/services"
	mealplanmodels "github.com/recipath/recipath/services/mealplan/domain/models"
	appsvcs "github.com/recipath/recipath/services/shopping/application/services"
	shoppingdomain "github.com/recipath/recipath/services/shopping/domain"
	"github.com/recipath/recipath/services/shopping/domain/models"
)

type memoryListRepository struct {
	lists map[string]*models.ShoppingList
}

func (m *memoryListRepository) Get(_ context.Context, ownerID string) (*models.ShoppingList, error) {
	if list, ok := m.lists[ownerID]; ok {
		return list.Clone(), nil
	}
	return nil, shoppingdomain.ErrListNotFound
}

func (m *memoryListRepository) Save(_ context.Context, list *models.ShoppingList) error {
	m.lists[list.OwnerID] = list.Clone()
	return nil
}

type memoryPlanRepository struct {
	plans map[string]*mealplanmodels.WeekPlan
}

func (m *memoryPlanRepository) Assign(_ context.Context, ownerID string, day mealplanmodels.Weekday, recipeID uuid.UUID) error {
	plan, ok := m.plans[ownerID]
	if !ok {
		plan = mealplanmodels.NewWeekPlan(ownerID)
		m.plans[ownerID] = plan
	}
	plan.Assign(day, recipeID)
	return nil
}

func (m *memoryPlanRepository) Clear(_ context.Context, ownerID string, day mealplanmodels.Weekday) error {
	if plan, ok := m.plans[ownerID]; ok {
		plan.Clear(day)
	}
	return nil
}

func (m *memoryPlanRepository) FindByOwner(_ context.Context, ownerID string) (*mealplanmodels.WeekPlan, error) {
	if plan, ok := m.plans[ownerID]; ok {
		return plan, nil
	}
	return mealplanmodels.NewWeekPlan(ownerID), nil
}

// stubCatalog serves both contexts' reader interfaces from one recipe table.
type stubCatalog struct {
	ingredients map[uuid.UUID][]string
}

func (c *stubCatalog) Ingredients(_ context.Context, _ string, recipeID uuid.UUID) ([]string, error) {
	if lines, ok := c.ingredients[recipeID]; ok {
		return lines, nil
	}
	return nil, shoppingdomain.ErrListNotFound
}

func (c *stubCatalog) Summary(_ context.Context, _ string, recipeID uuid.UUID) (mealplansvcs.RecipeSummary, error) {
	if _, ok := c.ingredients[recipeID]; ok {
		return mealplansvcs.RecipeSummary{ID: recipeID, Name: "recipe"}, nil
	}
	return mealplansvcs.RecipeSummary{}, shoppingdomain.ErrListNotFound
}

type fixture struct {
	srv     *httptest.Server
	catalog *stubCatalog
	plans   *mealplansvcs.PlanService
}

// newFixture mounts ShoppingRoutes behind a middleware that injects a fixed
// user, mirroring what the session middleware does in production.
func newFixture(t *testing.T, userID string) *fixture {
	t.Helper()

	catalog := &stubCatalog{ingredients: make(map[uuid.UUID][]string)}
	shopping := &appsvcs.Services{
		Shopping: appsvcs.NewShoppingService(&memoryListRepository{lists: make(map[string]*models.ShoppingList)}, catalog),
	}
	plans := mealplansvcs.NewPlanService(&memoryPlanRepository{plans: make(map[string]*mealplanmodels.WeekPlan)}, catalog)
	a := &app.Application{Logger: logger.New(&config.Config{LogLevel: "error"})}

	r := chi.NewRouter()
	if userID != "" {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(auth.WithUserID(req.Context(), userID)))
			})
		})
	}
	ShoppingRoutes(r, a, shopping, plans)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return &fixture{srv: srv, catalog: catalog, plans: plans}
}

func (f *fixture) do(t *testing.T, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, f.srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func itemCount(body map[string]any) int {
	items, _ := body["items"].([]any)
	return len(items)
}

func TestShoppingRoutes(t *testing.T) {
	t.Run("empty list for a fresh user", func(t *testing.T) {
		f := newFixture(t, "user-1")

		resp, body := f.do(t, http.MethodGet, "/shopping-list", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		if itemCount(body) != 0 {
			t.Errorf("items = %v, want none", body["items"])
		}
	})

	t.Run("merge lines then re-merge is idempotent", func(t *testing.T) {
		f := newFixture(t, "user-1")

		resp, body := f.do(t, http.MethodPost, "/shopping-list/merge", `{"ingredients":["2 onions","Tomato"]}`)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		if itemCount(body) != 2 {
			t.Fatalf("items = %v", body["items"])
		}

		resp, body = f.do(t, http.MethodPost, "/shopping-list/merge", `{"ingredients":["tomato"]}`)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		if itemCount(body) != 2 {
			t.Errorf("re-merge grew the list: %v", body["items"])
		}
	})

	t.Run("merge requires ingredients or recipe", func(t *testing.T) {
		f := newFixture(t, "user-1")

		resp, _ := f.do(t, http.MethodPost, "/shopping-list/merge", `{}`)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("merge recipe by id", func(t *testing.T) {
		f := newFixture(t, "user-1")
		recipeID := uuid.New()
		f.catalog.ingredients[recipeID] = []string{"200g spaghetti", "3 egg yolks"}

		resp, body := f.do(t, http.MethodPost, "/shopping-list/merge", `{"recipe_id":"`+recipeID.String()+`"}`)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		if itemCount(body) != 2 {
			t.Errorf("items = %v", body["items"])
		}
	})

	t.Run("toggle and remove by index", func(t *testing.T) {
		f := newFixture(t, "user-1")
		if resp, _ := f.do(t, http.MethodPost, "/shopping-list/merge", `{"ingredients":["a","b"]}`); resp.StatusCode != http.StatusOK {
			t.Fatal("seed merge failed")
		}

		resp, body := f.do(t, http.MethodPost, "/shopping-list/items/0/toggle", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("toggle status = %d", resp.StatusCode)
		}
		items := body["items"].([]any)
		if checked := items[0].(map[string]any)["checked"].(bool); !checked {
			t.Error("item 0 not checked after toggle")
		}

		resp, body = f.do(t, http.MethodDelete, "/shopping-list/items/0", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("remove status = %d", resp.StatusCode)
		}
		if itemCount(body) != 1 {
			t.Errorf("items after remove = %v", body["items"])
		}
	})

	t.Run("bad index values", func(t *testing.T) {
		f := newFixture(t, "user-1")

		resp, _ := f.do(t, http.MethodPost, "/shopping-list/items/abc/toggle", "")
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("non-numeric index status = %d, want 400", resp.StatusCode)
		}

		resp, _ = f.do(t, http.MethodDelete, "/shopping-list/items/5", "")
		if resp.StatusCode != http.StatusUnprocessableEntity {
			t.Errorf("out-of-range index status = %d, want 422", resp.StatusCode)
		}
	})

	t.Run("from-plan merges planned recipes inline", func(t *testing.T) {
		f := newFixture(t, "user-1")
		recipeID := uuid.New()
		f.catalog.ingredients[recipeID] = []string{"4 eggs"}
		if err := f.plans.Assign(context.Background(), "user-1", mealplanmodels.Monday, recipeID); err != nil {
			t.Fatal(err)
		}

		resp, body := f.do(t, http.MethodPost, "/shopping-list/from-plan", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		if itemCount(body) != 1 {
			t.Errorf("items = %v, want the planned recipe's ingredient", body["items"])
		}
	})

	t.Run("clear empties the list", func(t *testing.T) {
		f := newFixture(t, "user-1")
		if resp, _ := f.do(t, http.MethodPost, "/shopping-list/merge", `{"ingredients":["a"]}`); resp.StatusCode != http.StatusOK {
			t.Fatal("seed merge failed")
		}

		resp, body := f.do(t, http.MethodDelete, "/shopping-list", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		if itemCount(body) != 0 {
			t.Errorf("items = %v after clear", body["items"])
		}
	})

	t.Run("unauthenticated requests get 401", func(t *testing.T) {
		f := newFixture(t, "")

		resp, _ := f.do(t, http.MethodGet, "/shopping-list", "")
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", resp.StatusCode)
		}
	})
}
