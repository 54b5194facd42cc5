// Package postgres implements the shopping-list repository as one JSONB
// document per owner. Saves replace the whole document, which is what makes
// the service's clone-mutate-save pattern atomic.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	pkgdb "github.com/recipath/recipath/pkg/database"
	shoppingdomain "github.com/recipath/recipath/services/shopping/domain"
	"github.com/recipath/recipath/services/shopping/domain/models"
	"github.com/recipath/recipath/services/shopping/infrastructure/persistence/postgres/db"
)

// ListRepository persists shopping-list documents.
type ListRepository struct {
	queries *db.Queries
}

func NewListRepository(database *pkgdb.Database) *ListRepository {
	return &ListRepository{queries: db.New(database.DB())}
}

// Get loads the owner's document; ErrListNotFound when none exists.
func (r *ListRepository) Get(ctx context.Context, ownerID string) (*models.ShoppingList, error) {
	row, err := r.queries.GetShoppingList(ctx, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shoppingdomain.ErrListNotFound
		}
		return nil, fmt.Errorf("get shopping list: %w", err)
	}

	items := []models.ShoppingItem{}
	if len(row.Items) > 0 {
		if err := json.Unmarshal(row.Items, &items); err != nil {
			return nil, fmt.Errorf("decode shopping list for %s: %w", ownerID, err)
		}
	}
	return &models.ShoppingList{OwnerID: row.OwnerID, Items: items}, nil
}

// Save upserts the whole document.
func (r *ListRepository) Save(ctx context.Context, list *models.ShoppingList) error {
	items := list.Items
	if items == nil {
		items = []models.ShoppingItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode shopping list: %w", err)
	}

	err = r.queries.UpsertShoppingList(ctx, db.UpsertShoppingListParams{
		OwnerID: list.OwnerID,
		Items:   payload,
	})
	if err != nil {
		return fmt.Errorf("upsert shopping list: %w", err)
	}
	return nil
}
