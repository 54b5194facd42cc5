package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/recipath/recipath/pkg/cache"
	recipedomain "github.com/recipath/recipath/services/recipe/domain"
	"github.com/recipath/recipath/services/recipe/domain/models"
	"github.com/recipath/recipath/services/recipe/domain/repositories"
	domainsvcs "github.com/recipath/recipath/services/recipe/domain/services"
)

// ExternalSearcher queries the external recipe provider and returns mapped
// drafts in provider order, verbatim — no re-ranking.
type ExternalSearcher interface {
	Search(ctx context.Context, query string) ([]models.RecipeDraft, error)
}

// WebImporter extracts a recipe draft from a public recipe page.
type WebImporter interface {
	Extract(ctx context.Context, pageURL string) (models.RecipeDraft, error)
}

// PhotoStore uploads photos and resolves stored references to display URLs.
type PhotoStore interface {
	Put(ctx context.Context, ownerID string, r io.Reader, contentType string) (string, error)
	PresignGet(ctx context.Context, ref string, expiry time.Duration) (string, error)
}

// photoURLExpiry bounds how long a presigned photo link stays valid.
const photoURLExpiry = 15 * time.Minute

// RecipeService orchestrates the recipe catalog. Event publishing is handled
// by the repository layer (outbox pattern); reads are served from the Redis
// read model when available.
type RecipeService struct {
	repo     repositories.RecipeRepository
	cache    *pkgcache.RecipeCache
	searcher ExternalSearcher
	importer WebImporter
	photos   PhotoStore
}

// NewRecipeService returns a RecipeService wired with the given collaborators.
// cache, searcher, importer, and photos may be nil; the corresponding
// operations degrade (cache) or fail with a clear error (searcher/importer/photos).
func NewRecipeService(
	repo repositories.RecipeRepository,
	cache *pkgcache.RecipeCache,
	searcher ExternalSearcher,
	importer WebImporter,
	photos PhotoStore,
) *RecipeService {
	return &RecipeService{repo: repo, cache: cache, searcher: searcher, importer: importer, photos: photos}
}

// Create validates and persists a recipe owned by ownerID. The draft's
// ingredients are normalized; an empty name fails with ErrInvalidRecipe.
// The repository publishes RecipeCreatedEvent in the same transaction.
func (s *RecipeService) Create(ctx context.Context, ownerID string, draft models.RecipeDraft) (*models.Recipe, error) {
	recipe, err := models.NewRecipe(ownerID, draft)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", recipedomain.ErrInvalidRecipe, err)
	}

	if err := s.repo.Save(ctx, recipe); err != nil {
		return nil, fmt.Errorf("save recipe: %w", err)
	}

	return recipe, nil
}

// Get retrieves a recipe using a read-through cache pattern:
//  1. Check Redis first (key scoped by owner, so a miss is the worst case
//     for a non-owner).
//  2. On cache miss or cache error, query Postgres and check ownership.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *RecipeService) Get(ctx context.Context, ownerID string, id uuid.UUID) (*models.Recipe, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, ownerID, id); err == nil {
			return cachedToModel(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache trouble is not a request failure; fall through to Postgres.
			_ = err
		}
	}

	recipe, err := s.authorize(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), modelToCached(recipe))
		}()
	}

	return recipe, nil
}

// List returns all of ownerID's recipes in insertion order.
func (s *RecipeService) List(ctx context.Context, ownerID string) ([]*models.Recipe, error) {
	recipes, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, nil
}

// Search filters the owner's catalog by a case-insensitive substring match
// over name, category, and ingredients. An empty query returns the full list
// in insertion order.
func (s *RecipeService) Search(ctx context.Context, ownerID, query string) ([]*models.Recipe, error) {
	recipes, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("search recipes: %w", err)
	}

	matched := make([]*models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r.MatchesQuery(query) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// Update merges patch into the stored recipe field by field and persists the
// result. Fails with ErrRecipeNotFound for a missing ID and ErrNotRecipeOwner
// for an ownership mismatch. The stored record is untouched when the patch is
// invalid or persistence fails.
func (s *RecipeService) Update(ctx context.Context, ownerID string, id uuid.UUID, patch models.RecipePatch) (*models.Recipe, error) {
	stored, err := s.authorize(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	updated := *stored
	if err := updated.Apply(patch); err != nil {
		return nil, fmt.Errorf("%w: %w", recipedomain.ErrInvalidRecipe, err)
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}

	if s.cache != nil {
		// Drop rather than rewrite; the next Get re-warms.
		_ = s.cache.Delete(context.Background(), ownerID, id)
	}

	return &updated, nil
}

// Delete removes the recipe under the same ownership and existence checks as
// Update. Meal-plan assignments and shopping-list items referencing it are
// deliberately left in place (display-time resolution).
func (s *RecipeService) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	if _, err := s.authorize(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), ownerID, id)
	}
	return nil
}

// SearchExternal passes the query to the external provider and returns the
// mapped drafts verbatim.
func (s *RecipeService) SearchExternal(ctx context.Context, query string) ([]models.RecipeDraft, error) {
	if s.searcher == nil {
		return nil, fmt.Errorf("external recipe search is not configured")
	}
	drafts, err := s.searcher.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("external search: %w", err)
	}
	return drafts, nil
}

// ImportExternal maps a raw external record into a draft and creates it in
// the caller's catalog. Non-object records fail with ErrUnmappableRecord.
func (s *RecipeService) ImportExternal(ctx context.Context, ownerID string, raw any) (*models.Recipe, error) {
	draft, err := domainsvcs.MapExternalRecord(raw)
	if err != nil {
		return nil, err
	}
	return s.Create(ctx, ownerID, draft)
}

// ImportFromURL extracts a recipe from a public web page and creates it in
// the caller's catalog.
func (s *RecipeService) ImportFromURL(ctx context.Context, ownerID, pageURL string) (*models.Recipe, error) {
	if s.importer == nil {
		return nil, fmt.Errorf("web import is not configured")
	}
	draft, err := s.importer.Extract(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("extract recipe from %s: %w", pageURL, err)
	}
	return s.Create(ctx, ownerID, draft)
}

// AttachPhoto uploads a photo for the recipe and stores its reference on the
// record. Same ownership checks as Update.
func (s *RecipeService) AttachPhoto(ctx context.Context, ownerID string, id uuid.UUID, r io.Reader, contentType string) (*models.Recipe, error) {
	if s.photos == nil {
		return nil, fmt.Errorf("photo storage is not configured")
	}

	if _, err := s.authorize(ctx, ownerID, id); err != nil {
		return nil, err
	}

	ref, err := s.photos.Put(ctx, ownerID, r, contentType)
	if err != nil {
		return nil, fmt.Errorf("store photo: %w", err)
	}

	return s.Update(ctx, ownerID, id, models.RecipePatch{PhotoRef: &ref})
}

// PhotoURL resolves the recipe's photo reference to a short-lived display
// URL. Best effort: no reference, no store, or a presign failure all yield "".
func (s *RecipeService) PhotoURL(ctx context.Context, recipe *models.Recipe) string {
	if s.photos == nil || recipe.PhotoRef == "" {
		return ""
	}
	url, err := s.photos.PresignGet(ctx, recipe.PhotoRef, photoURLExpiry)
	if err != nil {
		return ""
	}
	return url
}

// authorize loads the recipe and enforces the ownership invariant:
// ErrRecipeNotFound when the ID is absent, ErrNotRecipeOwner when it exists
// but belongs to someone else.
func (s *RecipeService) authorize(ctx context.Context, ownerID string, id uuid.UUID) (*models.Recipe, error) {
	recipe, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, recipedomain.ErrRecipeNotFound) {
			return nil, recipedomain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	if recipe.OwnerID != ownerID {
		return nil, recipedomain.ErrNotRecipeOwner
	}
	return recipe, nil
}

func cachedToModel(c *pkgcache.CachedRecipe) *models.Recipe {
	return &models.Recipe{
		ID:              c.ID,
		OwnerID:         c.OwnerID,
		Name:            c.Name,
		Category:        c.Category,
		PrepTimeMinutes: c.PrepTimeMinutes,
		CookTimeMinutes: c.CookTimeMinutes,
		Servings:        c.Servings,
		Ingredients:     c.Ingredients,
		Instructions:    c.Instructions,
		PhotoRef:        c.PhotoRef,
		CreatedAt:       c.CreatedAt,
	}
}

func modelToCached(r *models.Recipe) *pkgcache.CachedRecipe {
	return &pkgcache.CachedRecipe{
		ID:              r.ID,
		OwnerID:         r.OwnerID,
		Name:            r.Name,
		Category:        r.Category,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		Servings:        r.Servings,
		Ingredients:     r.Ingredients,
		Instructions:    r.Instructions,
		PhotoRef:        r.PhotoRef,
		CreatedAt:       r.CreatedAt,
	}
}
