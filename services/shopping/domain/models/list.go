package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/recipath/recipath/services/shopping/domain"
)

// ShoppingItem is one line on the list. ID is assigned when the item is
// first merged in and stays stable across toggles; the HTTP contract is
// index-based, IDs are exposed read-only.
type ShoppingItem struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Checked bool      `json:"checked"`
}

// ShoppingList is the single aggregation document per owner. All mutations
// operate on the whole document; persistence replaces it atomically.
type ShoppingList struct {
	OwnerID string         `json:"owner_id"`
	Items   []ShoppingItem `json:"items"`
}

// NewShoppingList returns an empty list for ownerID.
func NewShoppingList(ownerID string) *ShoppingList {
	return &ShoppingList{OwnerID: ownerID, Items: []ShoppingItem{}}
}

// Clone returns a deep copy. Services mutate the copy so a failed persist
// leaves the loaded document untouched.
func (l *ShoppingList) Clone() *ShoppingList {
	items := make([]ShoppingItem, len(l.Items))
	copy(items, l.Items)
	return &ShoppingList{OwnerID: l.OwnerID, Items: items}
}

// MergeIngredients folds ingredient lines into the list:
//   - lines are trimmed; empty lines are skipped
//   - a line matching an existing item name (case-insensitive, on trimmed
//     text) is skipped, leaving the existing item and its checked state alone
//   - the rest append in input order, unchecked, with fresh IDs
//
// Merging the same lines twice is a no-op the second time.
func (l *ShoppingList) MergeIngredients(lines []string) {
	for _, raw := range lines {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if l.contains(name) {
			continue
		}
		l.Items = append(l.Items, ShoppingItem{
			ID:   uuid.New(),
			Name: name,
		})
	}
}

// Toggle flips the checked state of the item at index.
func (l *ShoppingList) Toggle(index int) error {
	if index < 0 || index >= len(l.Items) {
		return fmt.Errorf("%w: %d of %d", domain.ErrItemOutOfRange, index, len(l.Items))
	}
	l.Items[index].Checked = !l.Items[index].Checked
	return nil
}

// Remove deletes the item at index; later items shift down one position.
func (l *ShoppingList) Remove(index int) error {
	if index < 0 || index >= len(l.Items) {
		return fmt.Errorf("%w: %d of %d", domain.ErrItemOutOfRange, index, len(l.Items))
	}
	l.Items = append(l.Items[:index], l.Items[index+1:]...)
	return nil
}

// ClearItems empties the list.
func (l *ShoppingList) ClearItems() {
	l.Items = []ShoppingItem{}
}

func (l *ShoppingList) contains(name string) bool {
	for _, item := range l.Items {
		if strings.EqualFold(strings.TrimSpace(item.Name), name) {
			return true
		}
	}
	return false
}
