package models

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func ptr[T any](v T) *T { return &v }

func TestNewRecipe(t *testing.T) {
	t.Run("builds aggregate from draft", func(t *testing.T) {
		recipe, err := NewRecipe("user-1", RecipeDraft{
			Name:            "  Shakshuka  ",
			Category:        " Breakfast ",
			PrepTimeMinutes: 10,
			CookTimeMinutes: 25,
			Servings:        2,
			Ingredients:     []string{" 4 eggs ", "", "1 can tomatoes"},
			Instructions:    "Simmer, crack eggs, cover.",
		})
		if err != nil {
			t.Fatalf("NewRecipe() error = %v", err)
		}
		if recipe.ID == uuid.Nil {
			t.Error("NewRecipe() did not assign an ID")
		}
		if recipe.OwnerID != "user-1" {
			t.Errorf("OwnerID = %q, want %q", recipe.OwnerID, "user-1")
		}
		if recipe.Name != "Shakshuka" {
			t.Errorf("Name = %q, want trimmed %q", recipe.Name, "Shakshuka")
		}
		if recipe.Category != "Breakfast" {
			t.Errorf("Category = %q, want %q", recipe.Category, "Breakfast")
		}
		want := []string{"4 eggs", "1 can tomatoes"}
		if !reflect.DeepEqual(recipe.Ingredients, want) {
			t.Errorf("Ingredients = %v, want %v", recipe.Ingredients, want)
		}
		if recipe.CreatedAt.IsZero() {
			t.Error("CreatedAt is zero")
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		if _, err := NewRecipe("user-1", RecipeDraft{Name: "   "}); err == nil {
			t.Error("NewRecipe() accepted a blank name")
		}
	})

	t.Run("rejects negative values", func(t *testing.T) {
		drafts := []RecipeDraft{
			{Name: "x", PrepTimeMinutes: -1},
			{Name: "x", CookTimeMinutes: -1},
			{Name: "x", Servings: -1},
		}
		for _, d := range drafts {
			if _, err := NewRecipe("user-1", d); err == nil {
				t.Errorf("NewRecipe(%+v) accepted a negative value", d)
			}
		}
	})

	t.Run("zero values are valid", func(t *testing.T) {
		recipe, err := NewRecipe("user-1", RecipeDraft{Name: "Toast"})
		if err != nil {
			t.Fatalf("NewRecipe() error = %v", err)
		}
		if recipe.Servings != 0 || recipe.PrepTimeMinutes != 0 {
			t.Errorf("zero draft fields changed: %+v", recipe)
		}
		if recipe.Ingredients == nil {
			t.Error("Ingredients is nil, want empty slice")
		}
	})
}

func TestRecipeApply(t *testing.T) {
	base := func() *Recipe {
		return &Recipe{
			ID:              uuid.New(),
			OwnerID:         "user-1",
			Name:            "Shakshuka",
			Category:        "Breakfast",
			PrepTimeMinutes: 10,
			CookTimeMinutes: 25,
			Servings:        2,
			Ingredients:     []string{"4 eggs"},
			Instructions:    "Simmer.",
		}
	}

	t.Run("unset fields are unchanged", func(t *testing.T) {
		r := base()
		before := *r
		if err := r.Apply(RecipePatch{}); err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		if r.Name != before.Name || r.Servings != before.Servings || !reflect.DeepEqual(r.Ingredients, before.Ingredients) {
			t.Errorf("empty patch changed fields: got %+v, want %+v", r, before)
		}
	})

	t.Run("set fields are replaced", func(t *testing.T) {
		r := base()
		err := r.Apply(RecipePatch{
			Name:        ptr("  Menemen "),
			Servings:    ptr(4),
			Ingredients: ptr([]string{" 3 eggs ", ""}),
		})
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		if r.Name != "Menemen" {
			t.Errorf("Name = %q, want %q", r.Name, "Menemen")
		}
		if r.Servings != 4 {
			t.Errorf("Servings = %d, want 4", r.Servings)
		}
		if !reflect.DeepEqual(r.Ingredients, []string{"3 eggs"}) {
			t.Errorf("Ingredients = %v, want [3 eggs]", r.Ingredients)
		}
		// Untouched fields survive.
		if r.Category != "Breakfast" || r.CookTimeMinutes != 25 {
			t.Errorf("untouched fields changed: %+v", r)
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		r := base()
		if err := r.Apply(RecipePatch{Name: ptr("  ")}); err == nil {
			t.Error("Apply() accepted a blank name")
		}
		if r.Name != "Shakshuka" {
			t.Errorf("Name changed on failed patch: %q", r.Name)
		}
	})

	t.Run("rejects negative values", func(t *testing.T) {
		r := base()
		if err := r.Apply(RecipePatch{CookTimeMinutes: ptr(-5)}); err == nil {
			t.Error("Apply() accepted a negative cook time")
		}
	})
}

func TestRecipeMatchesQuery(t *testing.T) {
	r := &Recipe{
		Name:        "Shakshuka",
		Category:    "Breakfast",
		Ingredients: []string{"4 eggs", "1 can Tomatoes"},
	}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty query matches", "", true},
		{"whitespace query matches", "   ", true},
		{"name substring", "shak", true},
		{"name case-insensitive", "SHAKSHUKA", true},
		{"category", "breakfast", true},
		{"ingredient", "tomato", true},
		{"no match", "chocolate", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.MatchesQuery(tt.query); got != tt.want {
				t.Errorf("MatchesQuery(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
