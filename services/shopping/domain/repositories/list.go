package repositories

import (
	"context"

	"github.com/recipath/recipath/services/shopping/domain/models"
)

// ListRepository stores exactly one document per owner.
type ListRepository interface {
	// Get loads the owner's document. Returns ErrListNotFound when the
	// owner has never saved a list.
	Get(ctx context.Context, ownerID string) (*models.ShoppingList, error)

	// Save replaces the owner's document wholesale (upsert).
	Save(ctx context.Context, list *models.ShoppingList) error
}
