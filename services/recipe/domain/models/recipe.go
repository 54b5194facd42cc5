package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is assigned when an external record carries no category.
const DefaultCategory = "Uncategorized"

// Recipe is the core aggregate of the catalog. OwnerID is set exactly once at
// creation and never changes; Ingredients never contain empty or
// whitespace-only entries.
type Recipe struct {
	ID              uuid.UUID
	OwnerID         string // opaque identity-provider ID — tenant scope, always filter by this
	Name            string
	Category        string
	PrepTimeMinutes int
	CookTimeMinutes int
	Servings        int
	Ingredients     []string
	Instructions    string
	PhotoRef        string // opaque photo-store reference, empty when no photo
	CreatedAt       time.Time
}

// RecipeDraft is a recipe without identity: user form input or the output of
// the external-record mapper. NewRecipe turns it into a full aggregate.
type RecipeDraft struct {
	Name            string
	Category        string
	PrepTimeMinutes int
	CookTimeMinutes int
	Servings        int
	Ingredients     []string
	Instructions    string
}

// RecipePatch is a partial update. Nil fields leave the stored value
// unchanged; Ingredients are re-normalized when present.
type RecipePatch struct {
	Name            *string
	Category        *string
	PrepTimeMinutes *int
	CookTimeMinutes *int
	Servings        *int
	Ingredients     *[]string
	Instructions    *string
	PhotoRef        *string
}

// NewRecipe constructs a valid Recipe aggregate with generated ID and current
// timestamp. The draft's ingredients are normalized and its name trimmed.
func NewRecipe(ownerID string, draft RecipeDraft) (*Recipe, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return nil, errEmptyName
	}
	if draft.PrepTimeMinutes < 0 || draft.CookTimeMinutes < 0 || draft.Servings < 0 {
		return nil, errNegativeValue
	}

	return &Recipe{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Name:            name,
		Category:        strings.TrimSpace(draft.Category),
		PrepTimeMinutes: draft.PrepTimeMinutes,
		CookTimeMinutes: draft.CookTimeMinutes,
		Servings:        draft.Servings,
		Ingredients:     NormalizeIngredientList(draft.Ingredients),
		Instructions:    draft.Instructions,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// Apply merges the patch into the recipe field by field. Unset fields are
// left unchanged. ID, OwnerID, and CreatedAt are immutable and cannot be
// patched.
func (r *Recipe) Apply(patch RecipePatch) error {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return errEmptyName
		}
		r.Name = name
	}
	if patch.PrepTimeMinutes != nil {
		if *patch.PrepTimeMinutes < 0 {
			return errNegativeValue
		}
		r.PrepTimeMinutes = *patch.PrepTimeMinutes
	}
	if patch.CookTimeMinutes != nil {
		if *patch.CookTimeMinutes < 0 {
			return errNegativeValue
		}
		r.CookTimeMinutes = *patch.CookTimeMinutes
	}
	if patch.Servings != nil {
		if *patch.Servings < 0 {
			return errNegativeValue
		}
		r.Servings = *patch.Servings
	}
	if patch.Category != nil {
		r.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.Ingredients != nil {
		r.Ingredients = NormalizeIngredientList(*patch.Ingredients)
	}
	if patch.Instructions != nil {
		r.Instructions = *patch.Instructions
	}
	if patch.PhotoRef != nil {
		r.PhotoRef = *patch.PhotoRef
	}
	return nil
}

// MatchesQuery reports whether the recipe matches a case-insensitive
// substring search over name, category, and every ingredient.
// An empty (or whitespace-only) query matches everything.
func (r *Recipe) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Category), q) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), q) {
			return true
		}
	}
	return false
}
