package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// RecipeCacheTTL is the time-to-live for cached recipes.
	RecipeCacheTTL = 24 * time.Hour

	recipeCacheKeyPrefix = "recipe"
)

// CachedRecipe is the denormalized read model stored in Redis.
// It mirrors the recipe aggregate's display fields; the worker keeps it in
// sync from recipe.created / recipe.deleted events.
type CachedRecipe struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	PrepTimeMinutes int       `json:"prep_time_minutes"`
	CookTimeMinutes int       `json:"cook_time_minutes"`
	Servings        int       `json:"servings"`
	Ingredients     []string  `json:"ingredients"`
	Instructions    string    `json:"instructions"`
	PhotoRef        string    `json:"photo_ref,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// RecipeCache provides read/write operations for recipe cache entries.
// Keys are scoped by owner ID to prevent cross-tenant data leakage.
// Key format: "recipe:{ownerID}:{recipeID}"; values are JSON with a 24h TTL.
type RecipeCache struct {
	client *RedisClient
}

// NewRecipeCache creates a new RecipeCache backed by the given RedisClient.
func NewRecipeCache(r *RedisClient) *RecipeCache {
	return &RecipeCache{client: r}
}

// Get retrieves a cached recipe by owner + recipe ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *RecipeCache) Get(ctx context.Context, ownerID string, recipeID uuid.UUID) (*CachedRecipe, error) {
	data, err := c.client.Client().Get(ctx, c.key(ownerID, recipeID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var rec CachedRecipe
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &rec, nil
}

// Set writes a cached recipe with the standard TTL.
func (c *RecipeCache) Set(ctx context.Context, rec *CachedRecipe) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(rec.OwnerID, rec.ID), data, RecipeCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached recipe.
func (c *RecipeCache) Delete(ctx context.Context, ownerID string, recipeID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(ownerID, recipeID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "recipe:{ownerID}:{recipeID}"
func (c *RecipeCache) key(ownerID string, recipeID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", recipeCacheKeyPrefix, ownerID, recipeID)
}
