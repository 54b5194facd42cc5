// Package webimport extracts recipes from public web pages. Most recipe sites
// embed schema.org/Recipe structured data as JSON-LD, so that is the primary
// source; a minimal HTML fallback covers pages without it.
package webimport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/recipath/recipath/pkg/logger"
	"github.com/recipath/recipath/services/recipe/domain/models"
)

const fetchTimeout = 15 * time.Second

// Clipper fetches a page and extracts a recipe draft from it.
type Clipper struct {
	client *http.Client
	log    logger.Logger
}

// NewClipper returns a Clipper with a bounded-timeout HTTP client.
func NewClipper(log logger.Logger) *Clipper {
	return &Clipper{
		client: &http.Client{Timeout: fetchTimeout},
		log:    log,
	}
}

// Extract downloads pageURL and returns a draft built from its JSON-LD
// Recipe block. When no structured data is present the page title becomes the
// recipe name and everything else stays at its default.
func (c *Clipper) Extract(ctx context.Context, pageURL string) (models.RecipeDraft, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return models.RecipeDraft{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "recipath/1.0 (+recipe import)")

	resp, err := c.client.Do(req)
	if err != nil {
		return models.RecipeDraft{}, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.RecipeDraft{}, fmt.Errorf("fetch page: unexpected status %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return models.RecipeDraft{}, fmt.Errorf("parse page: %w", err)
	}

	if draft, ok := c.fromJSONLD(doc); ok {
		return draft, nil
	}

	c.log.DebugContext(ctx, "no structured recipe data found, using page title", "url", pageURL)
	return models.RecipeDraft{
		Name:        strings.TrimSpace(doc.Find("title").First().Text()),
		Category:    models.DefaultCategory,
		Ingredients: []string{},
	}, nil
}

// fromJSONLD scans every JSON-LD script block for a schema.org Recipe object,
// including blocks that wrap it in an array or an @graph envelope.
func (c *Clipper) fromJSONLD(doc *goquery.Document) (models.RecipeDraft, bool) {
	var draft models.RecipeDraft
	found := false

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return true // malformed block, keep scanning
		}
		if recipe, ok := findRecipeObject(data); ok {
			draft = mapJSONLDRecipe(recipe)
			found = true
			return false
		}
		return true
	})

	return draft, found
}

// findRecipeObject walks JSON-LD data looking for an object whose @type is
// (or includes) "Recipe".
func findRecipeObject(data any) (map[string]any, bool) {
	switch v := data.(type) {
	case map[string]any:
		if isRecipeType(v["@type"]) {
			return v, true
		}
		if graph, ok := v["@graph"].([]any); ok {
			return findRecipeObject(graph)
		}
	case []any:
		for _, item := range v {
			if recipe, ok := findRecipeObject(item); ok {
				return recipe, true
			}
		}
	}
	return nil, false
}

func isRecipeType(t any) bool {
	switch v := t.(type) {
	case string:
		return v == "Recipe"
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s == "Recipe" {
				return true
			}
		}
	}
	return false
}

func mapJSONLDRecipe(recipe map[string]any) models.RecipeDraft {
	category := models.DefaultCategory
	if cat := firstString(recipe["recipeCategory"]); cat != "" {
		category = cat
	}

	return models.RecipeDraft{
		Name:            firstString(recipe["name"]),
		Category:        category,
		PrepTimeMinutes: durationMinutes(firstString(recipe["prepTime"])),
		CookTimeMinutes: durationMinutes(firstString(recipe["cookTime"])),
		Servings:        yieldCount(recipe["recipeYield"]),
		Ingredients:     models.NormalizeIngredients(recipe["recipeIngredient"]),
		Instructions:    instructionsText(recipe["recipeInstructions"]),
	}
}

// firstString returns v as a trimmed string, taking the first element when v
// is an array.
func firstString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

var iso8601Duration = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// durationMinutes converts an ISO 8601 duration like "PT1H30M" to whole
// minutes. Unparseable input yields 0.
func durationMinutes(s string) int {
	m := iso8601Duration.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0
	}
	days, _ := strconv.Atoi(zeroIfEmpty(m[1]))
	hours, _ := strconv.Atoi(zeroIfEmpty(m[2]))
	minutes, _ := strconv.Atoi(zeroIfEmpty(m[3]))
	return days*24*60 + hours*60 + minutes
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

// yieldCount extracts a serving count from recipeYield, which sites encode as
// a number, a string like "4 servings", or an array of either.
func yieldCount(v any) int {
	switch t := v.(type) {
	case float64:
		if t < 0 {
			return 0
		}
		return int(t)
	case string:
		return leadingInt(t)
	case []any:
		for _, item := range t {
			if n := yieldCount(item); n > 0 {
				return n
			}
		}
	}
	return 0
}

var leadingDigits = regexp.MustCompile(`\d+`)

func leadingInt(s string) int {
	match := leadingDigits.FindString(s)
	if match == "" {
		return 0
	}
	n, _ := strconv.Atoi(match)
	return n
}

// instructionsText flattens recipeInstructions: a flat string, an array of
// strings, or an array of HowToStep/HowToSection objects.
func instructionsText(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case []any:
		var lines []string
		for _, item := range t {
			switch step := item.(type) {
			case string:
				if s := strings.TrimSpace(step); s != "" {
					lines = append(lines, s)
				}
			case map[string]any:
				if text := firstString(step["text"]); text != "" {
					lines = append(lines, text)
				} else if nested, ok := step["itemListElement"]; ok {
					if section := instructionsText(nested); section != "" {
						lines = append(lines, section)
					}
				}
			}
		}
		return strings.Join(lines, "\n")
	}
	return ""
}
