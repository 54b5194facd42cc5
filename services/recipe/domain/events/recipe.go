package events

import (
	"time"

	"github.com/google/uuid"
)

// Topics for recipe domain events.
const (
	TopicRecipeCreated = "recipe.created"
	TopicRecipeDeleted = "recipe.deleted"
)

// RecipeCreatedEvent is published transactionally with the insert.
// The worker uses it to warm the Redis read-model cache.
type RecipeCreatedEvent struct {
	EventID         uuid.UUID `json:"event_id"`
	Version         int       `json:"version"`
	RecipeID        uuid.UUID `json:"recipe_id"`
	OwnerID         string    `json:"owner_id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	PrepTimeMinutes int       `json:"prep_time_minutes"`
	CookTimeMinutes int       `json:"cook_time_minutes"`
	Servings        int       `json:"servings"`
	Ingredients     []string  `json:"ingredients"`
	Instructions    string    `json:"instructions"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// RecipeDeletedEvent is published transactionally with the delete.
// The worker drops the cached read model; meal-plan assignments referencing
// the recipe stay in place and resolve to the unassigned sentinel.
type RecipeDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	RecipeID   uuid.UUID `json:"recipe_id"`
	OwnerID    string    `json:"owner_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
