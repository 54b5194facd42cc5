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

// GetRecipesHandler handles GET /recipes and GET /recipes/{id}.
type GetRecipesHandler struct {
	svc *appsvcs.Services
}

// NewGetRecipesHandler returns a GetRecipesHandler backed by the given services.
func NewGetRecipesHandler(svc *appsvcs.Services) *GetRecipesHandler {
	return &GetRecipesHandler{svc: svc}
}

// List returns the caller's catalog, optionally filtered by a search query.
//
//	@Summary		List recipes
//	@Description	Lists the caller's recipes in insertion order; q filters by case-insensitive substring over name, category, and ingredients
//	@Tags			recipes
//	@Produce		json
//	@Param			q	query		string	false	"Search query"
//	@Success		200	{array}		RecipeResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/recipes [get]
func (h *GetRecipesHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	recipes, err := h.svc.Recipe.Search(r.Context(), ownerID, r.URL.Query().Get("q"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toRecipeResponses(r.Context(), h.svc.Recipe, recipes))
}

// Get returns one recipe by ID.
//
//	@Summary		Get recipe
//	@Description	Fetches one of the caller's recipes by ID
//	@Tags			recipes
//	@Produce		json
//	@Param			id	path		string	true	"Recipe ID"
//	@Success		200	{object}	RecipeResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/recipes/{id} [get]
func (h *GetRecipesHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	recipe, err := h.svc.Recipe.Get(r.Context(), ownerID, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toRecipeResponse(r.Context(), h.svc.Recipe, recipe))
}
