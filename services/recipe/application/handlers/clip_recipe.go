package handlers

import (
	"net/http"

	"github.com/recipath/recipath/pkg/auth"
	"github.com/recipath/recipath/pkg/errhttp"
	"github.com/recipath/recipath/pkg/httpx"
	pkgvalidator "github.com/recipath/recipath/pkg/validator"
	appsvcs "github.com/recipath/recipath/services/recipe/application/services"
)

// ClipRecipeRequest is the request body for POST /recipes/clip.
type ClipRecipeRequest struct {
	URL string `json:"url" validate:"required,url" example:"https://example.com/recipes/shakshuka"`
} // @name ClipRecipeRequest

// ClipRecipeHandler handles POST /recipes/clip requests: a recipe page URL
// is scraped for structured recipe data and imported.
type ClipRecipeHandler struct {
	svc *appsvcs.Services
}

// NewClipRecipeHandler returns a ClipRecipeHandler backed by the given services.
func NewClipRecipeHandler(svc *appsvcs.Services) *ClipRecipeHandler {
	return &ClipRecipeHandler{svc: svc}
}

// Execute imports a recipe from a public web page.
//
//	@Summary		Clip recipe from URL
//	@Description	Extracts a recipe from a public page's structured data and adds it to the caller's catalog
//	@Tags			recipes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ClipRecipeRequest	true	"Page to clip"
//	@Success		201		{object}	RecipeResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/recipes/clip [post]
func (h *ClipRecipeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ClipRecipeRequest](w, r)
	if !ok {
		return
	}

	recipe, err := h.svc.Recipe.ImportFromURL(r.Context(), ownerID, req.URL)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toRecipeResponse(r.Context(), h.svc.Recipe, recipe))
}
