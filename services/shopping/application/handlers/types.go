// Package handlers contains the HTTP handlers for the shopping list.
package handlers

import (
	"github.com/google/uuid"

	"github.com/recipath/recipath/services/shopping/domain/models"
)

// ItemResponse is one list entry. Index is the item's current position and
// the handle for toggle/remove; ID stays stable across reorders.
type ItemResponse struct {
	Index   int       `json:"index"   example:"0"`
	ID      uuid.UUID `json:"id"      example:"123e4567-e89b-12d3-a456-426614174000"`
	Name    string    `json:"name"    example:"2 onions"`
	Checked bool      `json:"checked" example:"false"`
} // @name ShoppingItemResponse

// ListResponse is the whole shopping list.
type ListResponse struct {
	Items []ItemResponse `json:"items"`
} // @name ShoppingListResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"shopping list item index out of range"`
} // @name ShoppingErrorResponse

func toListResponse(list *models.ShoppingList) ListResponse {
	items := make([]ItemResponse, 0, len(list.Items))
	for i, item := range list.Items {
		items = append(items, ItemResponse{
			Index:   i,
			ID:      item.ID,
			Name:    item.Name,
			Checked: item.Checked,
		})
	}
	return ListResponse{Items: items}
}
