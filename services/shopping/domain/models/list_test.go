package models

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/recipath/recipath/services/shopping/domain"
)

func names(l *ShoppingList) []string {
	out := make([]string, len(l.Items))
	for i, item := range l.Items {
		out[i] = item.Name
	}
	return out
}

func equalNames(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestMergeIngredients(t *testing.T) {
	t.Run("appends new lines in order", func(t *testing.T) {
		list := NewShoppingList("user-1")
		list.MergeIngredients([]string{"2 onions", "Tomato", "salt"})

		if !equalNames(names(list), []string{"2 onions", "Tomato", "salt"}) {
			t.Errorf("items = %v", names(list))
		}
		for _, item := range list.Items {
			if item.Checked {
				t.Errorf("%q merged in checked", item.Name)
			}
			if item.ID == uuid.Nil {
				t.Errorf("%q has no ID", item.Name)
			}
		}
	})

	t.Run("skips duplicates case-insensitively", func(t *testing.T) {
		list := NewShoppingList("user-1")
		list.MergeIngredients([]string{"Tomato"})
		list.MergeIngredients([]string{"tomato", " TOMATO ", "2 onions"})

		if !equalNames(names(list), []string{"Tomato", "2 onions"}) {
			t.Errorf("items = %v", names(list))
		}
	})

	t.Run("dedups within one batch", func(t *testing.T) {
		list := NewShoppingList("user-1")
		list.MergeIngredients([]string{"salt", "Salt", "salt"})

		if len(list.Items) != 1 {
			t.Errorf("items = %v, want one salt", names(list))
		}
	})

	t.Run("re-merge is a no-op and keeps checked state", func(t *testing.T) {
		list := NewShoppingList("user-1")
		list.MergeIngredients([]string{"2 onions", "Tomato"})
		if err := list.Toggle(0); err != nil {
			t.Fatal(err)
		}
		idBefore := list.Items[0].ID

		list.MergeIngredients([]string{"2 onions", "Tomato"})

		if len(list.Items) != 2 {
			t.Fatalf("re-merge grew the list: %v", names(list))
		}
		if !list.Items[0].Checked {
			t.Error("re-merge reset the checked state")
		}
		if list.Items[0].ID != idBefore {
			t.Error("re-merge replaced the item ID")
		}
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		list := NewShoppingList("user-1")
		list.MergeIngredients([]string{"", "   ", "flour", "\t"})

		if !equalNames(names(list), []string{"flour"}) {
			t.Errorf("items = %v", names(list))
		}
	})
}

func TestToggle(t *testing.T) {
	list := NewShoppingList("user-1")
	list.MergeIngredients([]string{"a", "b"})

	t.Run("toggle twice restores the original state", func(t *testing.T) {
		if err := list.Toggle(1); err != nil {
			t.Fatal(err)
		}
		if !list.Items[1].Checked {
			t.Error("item not checked after first toggle")
		}
		if err := list.Toggle(1); err != nil {
			t.Fatal(err)
		}
		if list.Items[1].Checked {
			t.Error("item still checked after second toggle")
		}
	})

	t.Run("out of range", func(t *testing.T) {
		for _, idx := range []int{-1, 2, 100} {
			if err := list.Toggle(idx); !errors.Is(err, domain.ErrItemOutOfRange) {
				t.Errorf("Toggle(%d) error = %v, want ErrItemOutOfRange", idx, err)
			}
		}
	})
}

func TestRemove(t *testing.T) {
	t.Run("later items shift down", func(t *testing.T) {
		list := NewShoppingList("user-1")
		list.MergeIngredients([]string{"a", "b", "c"})

		if err := list.Remove(1); err != nil {
			t.Fatal(err)
		}
		if !equalNames(names(list), []string{"a", "c"}) {
			t.Errorf("items = %v", names(list))
		}
	})

	t.Run("out of range", func(t *testing.T) {
		list := NewShoppingList("user-1")
		list.MergeIngredients([]string{"a"})
		for _, idx := range []int{-1, 1} {
			if err := list.Remove(idx); !errors.Is(err, domain.ErrItemOutOfRange) {
				t.Errorf("Remove(%d) error = %v, want ErrItemOutOfRange", idx, err)
			}
		}
	})

	t.Run("empty list rejects index zero", func(t *testing.T) {
		list := NewShoppingList("user-1")
		if err := list.Remove(0); !errors.Is(err, domain.ErrItemOutOfRange) {
			t.Errorf("Remove(0) on empty list error = %v", err)
		}
	})
}

func TestClone(t *testing.T) {
	list := NewShoppingList("user-1")
	list.MergeIngredients([]string{"a", "b"})

	clone := list.Clone()
	if err := clone.Toggle(0); err != nil {
		t.Fatal(err)
	}
	clone.MergeIngredients([]string{"c"})

	if list.Items[0].Checked {
		t.Error("mutating the clone changed the original's checked state")
	}
	if len(list.Items) != 2 {
		t.Errorf("mutating the clone grew the original: %v", names(list))
	}
}

func TestClearItems(t *testing.T) {
	list := NewShoppingList("user-1")
	list.MergeIngredients([]string{"a", "b"})
	list.ClearItems()

	if len(list.Items) != 0 {
		t.Errorf("items = %v after clear", names(list))
	}
	if list.Items == nil {
		t.Error("ClearItems left a nil slice")
	}
}
