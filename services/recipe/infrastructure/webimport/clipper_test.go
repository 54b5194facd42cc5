package webimport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/recipath/recipath/pkg/config"
	"github.com/recipath/recipath/pkg/logger"
)

func testClipper() *Clipper {
	return NewClipper(logger.New(&config.Config{LogLevel: "error"}))
}

func servePage(t *testing.T, html string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestExtractJSONLD(t *testing.T) {
	srv := servePage(t, `<html><head>
<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@type": "Recipe",
  "name": "Shakshuka",
  "recipeCategory": "Breakfast",
  "prepTime": "PT10M",
  "cookTime": "PT1H30M",
  "recipeYield": "4 servings",
  "recipeIngredient": ["4 eggs", " 1 can tomatoes ", ""],
  "recipeInstructions": [
    {"@type": "HowToStep", "text": "Simmer the sauce."},
    {"@type": "HowToStep", "text": "Crack in the eggs."}
  ]
}
</script>
</head><body></body></html>`)

	draft, err := testClipper().Extract(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if draft.Name != "Shakshuka" || draft.Category != "Breakfast" {
		t.Errorf("name/category = %q/%q", draft.Name, draft.Category)
	}
	if draft.PrepTimeMinutes != 10 || draft.CookTimeMinutes != 90 {
		t.Errorf("times = %d/%d, want 10/90", draft.PrepTimeMinutes, draft.CookTimeMinutes)
	}
	if draft.Servings != 4 {
		t.Errorf("Servings = %d, want 4", draft.Servings)
	}
	if !reflect.DeepEqual(draft.Ingredients, []string{"4 eggs", "1 can tomatoes"}) {
		t.Errorf("Ingredients = %v", draft.Ingredients)
	}
	if draft.Instructions != "Simmer the sauce.\nCrack in the eggs." {
		t.Errorf("Instructions = %q", draft.Instructions)
	}
}

func TestExtractGraphEnvelope(t *testing.T) {
	srv := servePage(t, `<html><head>
<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@graph": [
    {"@type": "WebPage", "name": "Some blog"},
    {"@type": ["Recipe", "NewsArticle"], "name": "Stew", "recipeYield": 6}
  ]
}
</script>
</head><body></body></html>`)

	draft, err := testClipper().Extract(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if draft.Name != "Stew" {
		t.Errorf("Name = %q, want the @graph recipe", draft.Name)
	}
	if draft.Servings != 6 {
		t.Errorf("Servings = %d, want 6", draft.Servings)
	}
}

func TestExtractSkipsMalformedBlocks(t *testing.T) {
	srv := servePage(t, `<html><head>
<script type="application/ld+json">{not json</script>
<script type="application/ld+json">{"@type": "Recipe", "name": "Soup"}</script>
</head><body></body></html>`)

	draft, err := testClipper().Extract(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if draft.Name != "Soup" {
		t.Errorf("Name = %q, want the recipe from the second block", draft.Name)
	}
}

func TestExtractTitleFallback(t *testing.T) {
	srv := servePage(t, `<html><head><title> Grandma's Pancakes </title></head><body><p>No structured data here.</p></body></html>`)

	draft, err := testClipper().Extract(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if draft.Name != "Grandma's Pancakes" {
		t.Errorf("Name = %q, want the page title", draft.Name)
	}
	if draft.Category != "Uncategorized" {
		t.Errorf("Category = %q", draft.Category)
	}
	if len(draft.Ingredients) != 0 {
		t.Errorf("Ingredients = %v, want empty", draft.Ingredients)
	}
}

func TestExtractNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	if _, err := testClipper().Extract(context.Background(), srv.URL); err == nil {
		t.Error("Extract() succeeded on a 404 page")
	}
}

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"PT10M", 10},
		{"PT1H", 60},
		{"PT1H30M", 90},
		{"P1DT2H", 1560},
		{"PT45S", 0},
		{"", 0},
		{"90 minutes", 0},
		{"PT-5M", 0},
	}
	for _, tt := range tests {
		if got := durationMinutes(tt.in); got != tt.want {
			t.Errorf("durationMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestYieldCount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"number", float64(4), 4},
		{"string with unit", "6 servings", 6},
		{"bare numeric string", "8", 8},
		{"array of strings", []any{"makes 12", "12 muffins"}, 12},
		{"no digits", "a few", 0},
		{"negative number", float64(-2), 0},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := yieldCount(tt.in); got != tt.want {
				t.Errorf("yieldCount(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestInstructionsText(t *testing.T) {
	t.Run("howto sections flatten recursively", func(t *testing.T) {
		got := instructionsText([]any{
			map[string]any{
				"@type": "HowToSection",
				"itemListElement": []any{
					map[string]any{"@type": "HowToStep", "text": "Make the dough."},
					map[string]any{"@type": "HowToStep", "text": "Rest it."},
				},
			},
			map[string]any{"@type": "HowToStep", "text": "Bake."},
		})
		want := "Make the dough.\nRest it.\nBake."
		if got != want {
			t.Errorf("instructionsText() = %q, want %q", got, want)
		}
	})

	t.Run("array of strings", func(t *testing.T) {
		if got := instructionsText([]any{"Mix.", " Bake. ", ""}); got != "Mix.\nBake." {
			t.Errorf("instructionsText() = %q", got)
		}
	})

	t.Run("flat string", func(t *testing.T) {
		if got := instructionsText(" Mix and bake. "); got != "Mix and bake." {
			t.Errorf("instructionsText() = %q", got)
		}
	})
}
