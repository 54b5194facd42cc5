package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	mealplandomain "github.com/recipath/recipath/services/mealplan/domain"
	recipedomain "github.com/recipath/recipath/services/recipe/domain"
	shoppingdomain "github.com/recipath/recipath/services/shopping/domain"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"recipe not found", recipedomain.ErrRecipeNotFound, http.StatusNotFound},
		{"list not found", shoppingdomain.ErrListNotFound, http.StatusNotFound},
		{"not recipe owner", recipedomain.ErrNotRecipeOwner, http.StatusForbidden},
		{"not list owner", shoppingdomain.ErrNotListOwner, http.StatusForbidden},
		{"invalid recipe", recipedomain.ErrInvalidRecipe, http.StatusUnprocessableEntity},
		{"item out of range", shoppingdomain.ErrItemOutOfRange, http.StatusUnprocessableEntity},
		{"invalid weekday", mealplandomain.ErrInvalidWeekday, http.StatusUnprocessableEntity},
		{"unmappable record", recipedomain.ErrUnmappableRecord, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{
			"wrapped sentinel",
			fmt.Errorf("update recipe: %w", recipedomain.ErrNotRecipeOwner),
			http.StatusForbidden,
		},
		{
			"doubly wrapped sentinel",
			fmt.Errorf("handler: %w", fmt.Errorf("%w: name empty", recipedomain.ErrInvalidRecipe)),
			http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if body["error"] == "" {
				t.Error("response has no error message")
			}
		})
	}
}
