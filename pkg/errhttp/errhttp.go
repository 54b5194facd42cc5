// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/recipath/recipath/pkg/httpx"
	mealplandomain "github.com/recipath/recipath/services/mealplan/domain"
	recipedomain "github.com/recipath/recipath/services/recipe/domain"
	shoppingdomain "github.com/recipath/recipath/services/shopping/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, recipedomain.ErrRecipeNotFound),
		errors.Is(err, shoppingdomain.ErrListNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, recipedomain.ErrNotRecipeOwner),
		errors.Is(err, shoppingdomain.ErrNotListOwner):
		return http.StatusForbidden // 403
	case errors.Is(err, recipedomain.ErrInvalidRecipe),
		errors.Is(err, shoppingdomain.ErrItemOutOfRange),
		errors.Is(err, mealplandomain.ErrInvalidWeekday):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, recipedomain.ErrUnmappableRecord):
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}
