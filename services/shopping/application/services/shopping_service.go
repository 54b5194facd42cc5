package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	shoppingdomain "github.com/recipath/recipath/services/shopping/domain"
	"github.com/recipath/recipath/services/shopping/domain/models"
	"github.com/recipath/recipath/services/shopping/domain/repositories"
)

// CatalogReader fetches the ingredient lines of one recipe in the owner's
// catalog. Implemented by an adapter over the recipe service in cmd wiring.
type CatalogReader interface {
	Ingredients(ctx context.Context, ownerID string, recipeID uuid.UUID) ([]string, error)
}

// ShoppingService manages the per-owner aggregation document. Every mutation
// is read-modify-write on a clone followed by a whole-document save, so a
// failed save never leaves a partially applied list.
type ShoppingService struct {
	repo    repositories.ListRepository
	catalog CatalogReader
}

func NewShoppingService(repo repositories.ListRepository, catalog CatalogReader) *ShoppingService {
	return &ShoppingService{repo: repo, catalog: catalog}
}

// List returns the owner's list, or an empty one if none was ever saved.
func (s *ShoppingService) List(ctx context.Context, ownerID string) (*models.ShoppingList, error) {
	return s.load(ctx, ownerID)
}

// MergeIngredients folds the given ingredient lines into the list and
// persists the result. Duplicate lines (against the list or within the
// batch) are skipped, so re-merging is idempotent.
func (s *ShoppingService) MergeIngredients(ctx context.Context, ownerID string, lines []string) (*models.ShoppingList, error) {
	return s.mutate(ctx, ownerID, func(list *models.ShoppingList) error {
		list.MergeIngredients(lines)
		return nil
	})
}

// MergeRecipe looks up the recipe in the owner's catalog and merges its
// ingredient lines. Catalog sentinel errors pass through unchanged.
func (s *ShoppingService) MergeRecipe(ctx context.Context, ownerID string, recipeID uuid.UUID) (*models.ShoppingList, error) {
	lines, err := s.catalog.Ingredients(ctx, ownerID, recipeID)
	if err != nil {
		return nil, err
	}
	return s.MergeIngredients(ctx, ownerID, lines)
}

// Toggle flips the checked state of the item at index.
func (s *ShoppingService) Toggle(ctx context.Context, ownerID string, index int) (*models.ShoppingList, error) {
	return s.mutate(ctx, ownerID, func(list *models.ShoppingList) error {
		return list.Toggle(index)
	})
}

// Remove deletes the item at index; later items shift down.
func (s *ShoppingService) Remove(ctx context.Context, ownerID string, index int) (*models.ShoppingList, error) {
	return s.mutate(ctx, ownerID, func(list *models.ShoppingList) error {
		return list.Remove(index)
	})
}

// Clear empties the owner's list.
func (s *ShoppingService) Clear(ctx context.Context, ownerID string) (*models.ShoppingList, error) {
	return s.mutate(ctx, ownerID, func(list *models.ShoppingList) error {
		list.ClearItems()
		return nil
	})
}

// load fetches the owner's document, treating "never saved" as an empty list.
func (s *ShoppingService) load(ctx context.Context, ownerID string) (*models.ShoppingList, error) {
	list, err := s.repo.Get(ctx, ownerID)
	if err != nil {
		if errors.Is(err, shoppingdomain.ErrListNotFound) {
			return models.NewShoppingList(ownerID), nil
		}
		return nil, fmt.Errorf("load shopping list: %w", err)
	}
	if list.OwnerID != ownerID {
		return nil, shoppingdomain.ErrNotListOwner
	}
	return list, nil
}

// mutate applies fn to a clone of the loaded document and saves the clone.
func (s *ShoppingService) mutate(ctx context.Context, ownerID string, fn func(*models.ShoppingList) error) (*models.ShoppingList, error) {
	list, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	next := list.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("save shopping list: %w", err)
	}
	return next, nil
}
