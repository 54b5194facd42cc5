package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/recipath/recipath/pkg/auth"
	"github.com/recipath/recipath/pkg/errhttp"
	"github.com/recipath/recipath/pkg/httpx"
	appsvcs "github.com/recipath/recipath/services/recipe/application/services"
)

// ImportRecipeHandler handles POST /recipes/import requests: a raw external
// provider record is mapped into the catalog shape and created.
type ImportRecipeHandler struct {
	svc *appsvcs.Services
}

// NewImportRecipeHandler returns an ImportRecipeHandler backed by the given services.
func NewImportRecipeHandler(svc *appsvcs.Services) *ImportRecipeHandler {
	return &ImportRecipeHandler{svc: svc}
}

// Execute imports a raw external record. The body is the provider record
// itself, shape unknown in advance, so it is decoded untyped and handed to
// the record mapper.
//
//	@Summary		Import external recipe
//	@Description	Maps a raw search-provider record into a recipe and adds it to the caller's catalog
//	@Tags			recipes
//	@Accept			json
//	@Produce		json
//	@Param			record	body		object	true	"Raw provider record"
//	@Success		201		{object}	RecipeResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/recipes/import [post]
func (h *ImportRecipeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var raw any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	recipe, err := h.svc.Recipe.ImportExternal(r.Context(), ownerID, raw)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toRecipeResponse(r.Context(), h.svc.Recipe, recipe))
}
