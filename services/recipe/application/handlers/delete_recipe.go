package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/recipath/recipath/pkg/auth"
	"github.com/recipath/recipath/pkg/errhttp"
	"github.com/recipath/recipath/pkg/httpx"
	appsvcs "github.com/recipath/recipath/services/recipe/application/services"
)

// DeleteRecipeHandler handles DELETE /recipes/{id} requests.
type DeleteRecipeHandler struct {
	svc *appsvcs.Services
}

// NewDeleteRecipeHandler returns a DeleteRecipeHandler backed by the given services.
func NewDeleteRecipeHandler(svc *appsvcs.Services) *DeleteRecipeHandler {
	return &DeleteRecipeHandler{svc: svc}
}

// Execute removes one of the caller's recipes. Meal-plan assignments that
// reference it stay in place and resolve to the unassigned sentinel.
//
//	@Summary		Delete recipe
//	@Description	Deletes one of the caller's recipes
//	@Tags			recipes
//	@Produce		json
//	@Param			id	path	string	true	"Recipe ID"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/recipes/{id} [delete]
func (h *DeleteRecipeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid recipe id")
		return
	}

	if err := h.svc.Recipe.Delete(r.Context(), ownerID, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
