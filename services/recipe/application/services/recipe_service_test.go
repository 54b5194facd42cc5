package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	recipedomain "github.com/recipath/recipath/services/recipe/domain"
	"github.com/recipath/recipath/services/recipe/domain/models"
)

// memoryRecipeRepository is an in-memory RecipeRepository that preserves
// insertion order per owner.
type memoryRecipeRepository struct {
	recipes []*models.Recipe
	saveErr error
}

func (m *memoryRecipeRepository) Save(_ context.Context, recipe *models.Recipe) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	stored := *recipe
	m.recipes = append(m.recipes, &stored)
	return nil
}

func (m *memoryRecipeRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Recipe, error) {
	for _, r := range m.recipes {
		if r.ID == id {
			copied := *r
			return &copied, nil
		}
	}
	return nil, recipedomain.ErrRecipeNotFound
}

func (m *memoryRecipeRepository) FindByOwner(_ context.Context, ownerID string) ([]*models.Recipe, error) {
	var out []*models.Recipe
	for _, r := range m.recipes {
		if r.OwnerID == ownerID {
			copied := *r
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *memoryRecipeRepository) Update(_ context.Context, recipe *models.Recipe) error {
	for i, r := range m.recipes {
		if r.ID == recipe.ID {
			stored := *recipe
			m.recipes[i] = &stored
			return nil
		}
	}
	return recipedomain.ErrRecipeNotFound
}

func (m *memoryRecipeRepository) Delete(_ context.Context, id uuid.UUID) error {
	for i, r := range m.recipes {
		if r.ID == id {
			m.recipes = append(m.recipes[:i], m.recipes[i+1:]...)
			return nil
		}
	}
	return recipedomain.ErrRecipeNotFound
}

type stubSearcher struct {
	drafts []models.RecipeDraft
	err    error
}

func (s *stubSearcher) Search(context.Context, string) ([]models.RecipeDraft, error) {
	return s.drafts, s.err
}

type stubImporter struct {
	draft models.RecipeDraft
	err   error
}

func (s *stubImporter) Extract(context.Context, string) (models.RecipeDraft, error) {
	return s.draft, s.err
}

type stubPhotoStore struct {
	ref string
}

func (s *stubPhotoStore) Put(_ context.Context, _ string, r io.Reader, _ string) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	return s.ref, nil
}

func (s *stubPhotoStore) PresignGet(_ context.Context, ref string, _ time.Duration) (string, error) {
	return "https://photos.test/" + ref, nil
}

func newTestService(repo *memoryRecipeRepository) *RecipeService {
	return NewRecipeService(repo, nil, nil, nil, nil)
}

func mustCreate(t *testing.T, svc *RecipeService, ownerID string, draft models.RecipeDraft) *models.Recipe {
	t.Helper()
	recipe, err := svc.Create(context.Background(), ownerID, draft)
	if err != nil {
		t.Fatalf("Create(%q, %q) error = %v", ownerID, draft.Name, err)
	}
	return recipe
}

func TestRecipeServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a valid draft", func(t *testing.T) {
		repo := &memoryRecipeRepository{}
		svc := newTestService(repo)

		recipe := mustCreate(t, svc, "user-1", models.RecipeDraft{
			Name:        "Shakshuka",
			Ingredients: []string{"4 eggs", " 1 can tomatoes "},
		})

		stored, err := repo.GetByID(ctx, recipe.ID)
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if stored.OwnerID != "user-1" {
			t.Errorf("OwnerID = %q, want %q", stored.OwnerID, "user-1")
		}
		if len(stored.Ingredients) != 2 || stored.Ingredients[1] != "1 can tomatoes" {
			t.Errorf("Ingredients = %v, want normalized entries", stored.Ingredients)
		}
	})

	t.Run("invalid draft fails with ErrInvalidRecipe", func(t *testing.T) {
		repo := &memoryRecipeRepository{}
		svc := newTestService(repo)

		_, err := svc.Create(ctx, "user-1", models.RecipeDraft{Name: "  "})
		if !errors.Is(err, recipedomain.ErrInvalidRecipe) {
			t.Errorf("Create() error = %v, want ErrInvalidRecipe", err)
		}
		if len(repo.recipes) != 0 {
			t.Error("invalid draft reached the repository")
		}
	})

	t.Run("repository failure is surfaced", func(t *testing.T) {
		repo := &memoryRecipeRepository{saveErr: fmt.Errorf("connection reset")}
		svc := newTestService(repo)

		if _, err := svc.Create(ctx, "user-1", models.RecipeDraft{Name: "x"}); err == nil {
			t.Error("Create() swallowed the repository error")
		}
	})
}

func TestRecipeServiceGet(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRecipeRepository{}
	svc := newTestService(repo)
	recipe := mustCreate(t, svc, "user-1", models.RecipeDraft{Name: "Shakshuka"})

	t.Run("owner reads own recipe", func(t *testing.T) {
		got, err := svc.Get(ctx, "user-1", recipe.ID)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got.Name != "Shakshuka" {
			t.Errorf("Name = %q", got.Name)
		}
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		if _, err := svc.Get(ctx, "user-1", uuid.New()); !errors.Is(err, recipedomain.ErrRecipeNotFound) {
			t.Errorf("Get() error = %v, want ErrRecipeNotFound", err)
		}
	})

	t.Run("other user is rejected as owner mismatch", func(t *testing.T) {
		if _, err := svc.Get(ctx, "user-2", recipe.ID); !errors.Is(err, recipedomain.ErrNotRecipeOwner) {
			t.Errorf("Get() error = %v, want ErrNotRecipeOwner", err)
		}
	})
}

func TestRecipeServiceSearch(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRecipeRepository{}
	svc := newTestService(repo)

	mustCreate(t, svc, "user-1", models.RecipeDraft{Name: "Shakshuka", Category: "Breakfast"})
	mustCreate(t, svc, "user-1", models.RecipeDraft{Name: "Carbonara", Ingredients: []string{"200g spaghetti", "3 egg yolks"}})
	mustCreate(t, svc, "user-2", models.RecipeDraft{Name: "Shakshuka Deluxe"})

	t.Run("empty query returns full catalog in insertion order", func(t *testing.T) {
		got, err := svc.Search(ctx, "user-1", "")
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(got) != 2 || got[0].Name != "Shakshuka" || got[1].Name != "Carbonara" {
			t.Errorf("Search() = %v recipes, want Shakshuka then Carbonara", len(got))
		}
	})

	t.Run("matches ingredients case-insensitively", func(t *testing.T) {
		got, err := svc.Search(ctx, "user-1", "EGG")
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(got) != 1 || got[0].Name != "Carbonara" {
			t.Errorf("Search(EGG) matched %d recipes", len(got))
		}
	})

	t.Run("never crosses owner boundaries", func(t *testing.T) {
		got, err := svc.Search(ctx, "user-2", "shakshuka")
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(got) != 1 || got[0].Name != "Shakshuka Deluxe" {
			t.Errorf("Search() leaked across owners: %d results", len(got))
		}
	})
}

func TestRecipeServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("merges patch into stored recipe", func(t *testing.T) {
		repo := &memoryRecipeRepository{}
		svc := newTestService(repo)
		recipe := mustCreate(t, svc, "user-1", models.RecipeDraft{Name: "Shakshuka", Servings: 2})

		servings := 4
		updated, err := svc.Update(ctx, "user-1", recipe.ID, models.RecipePatch{Servings: &servings})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if updated.Servings != 4 || updated.Name != "Shakshuka" {
			t.Errorf("Update() = %+v", updated)
		}
	})

	t.Run("non-owner cannot update", func(t *testing.T) {
		repo := &memoryRecipeRepository{}
		svc := newTestService(repo)
		recipe := mustCreate(t, svc, "user-1", models.RecipeDraft{Name: "Shakshuka"})

		name := "Stolen"
		_, err := svc.Update(ctx, "user-2", recipe.ID, models.RecipePatch{Name: &name})
		if !errors.Is(err, recipedomain.ErrNotRecipeOwner) {
			t.Fatalf("Update() error = %v, want ErrNotRecipeOwner", err)
		}
		stored, _ := repo.GetByID(ctx, recipe.ID)
		if stored.Name != "Shakshuka" {
			t.Errorf("recipe changed despite rejection: %q", stored.Name)
		}
	})

	t.Run("invalid patch leaves stored record untouched", func(t *testing.T) {
		repo := &memoryRecipeRepository{}
		svc := newTestService(repo)
		recipe := mustCreate(t, svc, "user-1", models.RecipeDraft{Name: "Shakshuka"})

		blank := " "
		_, err := svc.Update(ctx, "user-1", recipe.ID, models.RecipePatch{Name: &blank})
		if !errors.Is(err, recipedomain.ErrInvalidRecipe) {
			t.Fatalf("Update() error = %v, want ErrInvalidRecipe", err)
		}
		stored, _ := repo.GetByID(ctx, recipe.ID)
		if stored.Name != "Shakshuka" {
			t.Errorf("invalid patch persisted: %q", stored.Name)
		}
	})
}

func TestRecipeServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes own recipe", func(t *testing.T) {
		repo := &memoryRecipeRepository{}
		svc := newTestService(repo)
		recipe := mustCreate(t, svc, "user-1", models.RecipeDraft{Name: "Shakshuka"})

		if err := svc.Delete(ctx, "user-1", recipe.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := repo.GetByID(ctx, recipe.ID); !errors.Is(err, recipedomain.ErrRecipeNotFound) {
			t.Error("recipe survived deletion")
		}
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		repo := &memoryRecipeRepository{}
		svc := newTestService(repo)
		recipe := mustCreate(t, svc, "user-1", models.RecipeDraft{Name: "Shakshuka"})

		if err := svc.Delete(ctx, "user-2", recipe.ID); !errors.Is(err, recipedomain.ErrNotRecipeOwner) {
			t.Fatalf("Delete() error = %v, want ErrNotRecipeOwner", err)
		}
		if _, err := repo.GetByID(ctx, recipe.ID); err != nil {
			t.Error("recipe deleted despite rejection")
		}
	})

	t.Run("missing recipe yields not found", func(t *testing.T) {
		svc := newTestService(&memoryRecipeRepository{})
		if err := svc.Delete(ctx, "user-1", uuid.New()); !errors.Is(err, recipedomain.ErrRecipeNotFound) {
			t.Errorf("Delete() error = %v, want ErrRecipeNotFound", err)
		}
	})
}

func TestRecipeServiceExternal(t *testing.T) {
	ctx := context.Background()

	t.Run("search without provider fails", func(t *testing.T) {
		svc := newTestService(&memoryRecipeRepository{})
		if _, err := svc.SearchExternal(ctx, "pasta"); err == nil {
			t.Error("SearchExternal() succeeded without a provider")
		}
	})

	t.Run("search returns provider drafts verbatim", func(t *testing.T) {
		searcher := &stubSearcher{drafts: []models.RecipeDraft{
			{Name: "Second per provider"},
			{Name: "First per provider"},
		}}
		svc := NewRecipeService(&memoryRecipeRepository{}, nil, searcher, nil, nil)

		drafts, err := svc.SearchExternal(ctx, "pasta")
		if err != nil {
			t.Fatalf("SearchExternal() error = %v", err)
		}
		if len(drafts) != 2 || drafts[0].Name != "Second per provider" {
			t.Errorf("drafts reordered: %+v", drafts)
		}
	})

	t.Run("import maps and persists a record", func(t *testing.T) {
		repo := &memoryRecipeRepository{}
		svc := newTestService(repo)

		recipe, err := svc.ImportExternal(ctx, "user-1", map[string]any{"title": "Pie"})
		if err != nil {
			t.Fatalf("ImportExternal() error = %v", err)
		}
		if recipe.Name != "Pie" || recipe.Category != models.DefaultCategory {
			t.Errorf("imported recipe = %+v", recipe)
		}
		if len(repo.recipes) != 1 {
			t.Error("imported recipe not persisted")
		}
	})

	t.Run("non-object record fails without persisting", func(t *testing.T) {
		repo := &memoryRecipeRepository{}
		svc := newTestService(repo)

		_, err := svc.ImportExternal(ctx, "user-1", "not an object")
		if !errors.Is(err, recipedomain.ErrUnmappableRecord) {
			t.Fatalf("ImportExternal() error = %v, want ErrUnmappableRecord", err)
		}
		if len(repo.recipes) != 0 {
			t.Error("unmappable record persisted")
		}
	})

	t.Run("url import persists the clipped draft", func(t *testing.T) {
		repo := &memoryRecipeRepository{}
		importer := &stubImporter{draft: models.RecipeDraft{Name: "Clipped Stew"}}
		svc := NewRecipeService(repo, nil, nil, importer, nil)

		recipe, err := svc.ImportFromURL(ctx, "user-1", "https://example.com/stew")
		if err != nil {
			t.Fatalf("ImportFromURL() error = %v", err)
		}
		if recipe.Name != "Clipped Stew" {
			t.Errorf("Name = %q", recipe.Name)
		}
	})
}

func TestRecipeServicePhotos(t *testing.T) {
	ctx := context.Background()

	t.Run("attach stores reference on the recipe", func(t *testing.T) {
		repo := &memoryRecipeRepository{}
		svc := NewRecipeService(repo, nil, nil, nil, &stubPhotoStore{ref: "photos/user-1/abc"})
		recipe := mustCreate(t, svc, "user-1", models.RecipeDraft{Name: "Shakshuka"})

		updated, err := svc.AttachPhoto(ctx, "user-1", recipe.ID, strings.NewReader("jpeg-bytes"), "image/jpeg")
		if err != nil {
			t.Fatalf("AttachPhoto() error = %v", err)
		}
		if updated.PhotoRef != "photos/user-1/abc" {
			t.Errorf("PhotoRef = %q", updated.PhotoRef)
		}
		if got := svc.PhotoURL(ctx, updated); got != "https://photos.test/photos/user-1/abc" {
			t.Errorf("PhotoURL() = %q", got)
		}
	})

	t.Run("attach without store fails", func(t *testing.T) {
		svc := newTestService(&memoryRecipeRepository{})
		if _, err := svc.AttachPhoto(ctx, "user-1", uuid.New(), strings.NewReader("x"), "image/png"); err == nil {
			t.Error("AttachPhoto() succeeded without a store")
		}
	})

	t.Run("url is empty without a reference", func(t *testing.T) {
		svc := NewRecipeService(&memoryRecipeRepository{}, nil, nil, nil, &stubPhotoStore{})
		if got := svc.PhotoURL(ctx, &models.Recipe{}); got != "" {
			t.Errorf("PhotoURL() = %q, want empty", got)
		}
	})
}
