package handlers

import (
	"net/http"

	"github.com/recipath/recipath/pkg/auth"
	"github.com/recipath/recipath/pkg/errhttp"
	"github.com/recipath/recipath/pkg/httpx"
	pkgvalidator "github.com/recipath/recipath/pkg/validator"
	appsvcs "github.com/recipath/recipath/services/recipe/application/services"
	"github.com/recipath/recipath/services/recipe/domain/models"
)

// CreateRecipeRequest is the request body for POST /recipes.
// Ingredients accepts either a newline-separated string (the form textarea)
// or an array of lines; both are normalized the same way.
type CreateRecipeRequest struct {
	Name            string `json:"name" validate:"required,max=255" example:"Shakshuka"`
	Category        string `json:"category" validate:"max=255" example:"Breakfast"`
	PrepTimeMinutes int    `json:"prep_time_minutes" validate:"gte=0" example:"10"`
	CookTimeMinutes int    `json:"cook_time_minutes" validate:"gte=0" example:"25"`
	Servings        int    `json:"servings" validate:"gte=0" example:"2"`
	Ingredients     any    `json:"ingredients" swaggertype:"array,string"`
	Instructions    string `json:"instructions"`
} // @name CreateRecipeRequest

// PostRecipeHandler handles POST /recipes requests.
type PostRecipeHandler struct {
	svc *appsvcs.Services
}

// NewPostRecipeHandler returns a PostRecipeHandler backed by the given services.
func NewPostRecipeHandler(svc *appsvcs.Services) *PostRecipeHandler {
	return &PostRecipeHandler{svc: svc}
}

// Execute creates a new recipe in the caller's catalog.
//
//	@Summary		Create recipe
//	@Description	Creates a recipe owned by the authenticated user
//	@Tags			recipes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateRecipeRequest	true	"Recipe creation request"
//	@Success		201		{object}	RecipeResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/recipes [post]
func (h *PostRecipeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateRecipeRequest](w, r)
	if !ok {
		return
	}

	recipe, err := h.svc.Recipe.Create(r.Context(), ownerID, models.RecipeDraft{
		Name:            req.Name,
		Category:        req.Category,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
		Ingredients:     models.NormalizeIngredients(req.Ingredients),
		Instructions:    req.Instructions,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toRecipeResponse(r.Context(), h.svc.Recipe, recipe))
}
