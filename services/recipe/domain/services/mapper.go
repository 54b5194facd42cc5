// Package services holds stateless domain services for the recipe context.
package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	domain "github.com/recipath/recipath/services/recipe/domain"
	"github.com/recipath/recipath/services/recipe/domain/models"
)

// MapExternalRecord converts a raw search-provider record of arbitrary shape
// into a recipe draft, applying defaults for anything absent:
//
//	title            → Name            (no default; catalog validation rejects empty)
//	readyInMinutes   → PrepTimeMinutes (0)
//	cookingMinutes   → CookTimeMinutes (0)
//	servings         → Servings        (0)
//	dishTypes[0]     → Category        ("Uncategorized")
//	extendedIngredients[].original or ingredients → Ingredients (normalized, [])
//	instructions or analyzedInstructions steps    → Instructions ("")
//
// It is total over object-shaped input: missing or mistyped optional fields
// fall back to their defaults. Only fundamentally non-object input (nil,
// scalars, arrays) yields ErrUnmappableRecord.
func MapExternalRecord(raw any) (models.RecipeDraft, error) {
	record, ok := raw.(map[string]any)
	if !ok {
		return models.RecipeDraft{}, fmt.Errorf("%w: got %T", domain.ErrUnmappableRecord, raw)
	}

	name := stringField(record, "title")
	if name == "" {
		name = stringField(record, "name")
	}

	category := models.DefaultCategory
	if types, ok := record["dishTypes"].([]any); ok && len(types) > 0 {
		if first, ok := types[0].(string); ok && strings.TrimSpace(first) != "" {
			category = strings.TrimSpace(first)
		}
	}

	return models.RecipeDraft{
		Name:            name,
		Category:        category,
		PrepTimeMinutes: intField(record, "readyInMinutes"),
		CookTimeMinutes: intField(record, "cookingMinutes"),
		Servings:        intField(record, "servings"),
		Ingredients:     mapIngredients(record),
		Instructions:    mapInstructions(record),
	}, nil
}

// mapIngredients prefers the provider's extendedIngredients entries (using
// each entry's "original" free-text line) and falls back to a plain
// ingredients field of any recognized shape.
func mapIngredients(record map[string]any) []string {
	if extended, ok := record["extendedIngredients"].([]any); ok {
		lines := make([]string, 0, len(extended))
		for _, e := range extended {
			entry, ok := e.(map[string]any)
			if !ok {
				continue
			}
			if line := stringField(entry, "original"); line != "" {
				lines = append(lines, line)
			}
		}
		return models.NormalizeIngredientList(lines)
	}
	return models.NormalizeIngredients(record["ingredients"])
}

// mapInstructions returns the flat instructions text when present, otherwise
// joins analyzedInstructions step texts with line breaks.
func mapInstructions(record map[string]any) string {
	if text := stringField(record, "instructions"); text != "" {
		return text
	}

	analyzed, ok := record["analyzedInstructions"].([]any)
	if !ok {
		return ""
	}
	var lines []string
	for _, a := range analyzed {
		block, ok := a.(map[string]any)
		if !ok {
			continue
		}
		steps, ok := block["steps"].([]any)
		if !ok {
			continue
		}
		for _, s := range steps {
			step, ok := s.(map[string]any)
			if !ok {
				continue
			}
			if text := stringField(step, "step"); text != "" {
				lines = append(lines, text)
			}
		}
	}
	return strings.Join(lines, "\n")
}

func stringField(record map[string]any, key string) string {
	if s, ok := record[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// intField tolerates the numeric encodings JSON decoding produces —
// float64, int, json.Number — plus numeric strings. Anything else, and
// negative values, coerce to 0.
func intField(record map[string]any, key string) int {
	var n int
	switch v := record[key].(type) {
	case float64:
		n = int(v)
	case int:
		n = v
	case json.Number:
		if parsed, err := v.Int64(); err == nil {
			n = int(parsed)
		}
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			n = parsed
		}
	}
	if n < 0 {
		return 0
	}
	return n
}
