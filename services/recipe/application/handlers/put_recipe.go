package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/recipath/recipath/pkg/auth"
	"github.com/recipath/recipath/pkg/errhttp"
	"github.com/recipath/recipath/pkg/httpx"
	pkgvalidator "github.com/recipath/recipath/pkg/validator"
	appsvcs "github.com/recipath/recipath/services/recipe/application/services"
	"github.com/recipath/recipath/services/recipe/domain/models"
)

// UpdateRecipeRequest is the request body for PUT /recipes/{id}. Omitted
// fields leave the stored value unchanged.
type UpdateRecipeRequest struct {
	Name            *string `json:"name" validate:"omitempty,max=255" example:"Shakshuka"`
	Category        *string `json:"category" validate:"omitempty,max=255" example:"Brunch"`
	PrepTimeMinutes *int    `json:"prep_time_minutes" validate:"omitempty,gte=0" example:"15"`
	CookTimeMinutes *int    `json:"cook_time_minutes" validate:"omitempty,gte=0" example:"20"`
	Servings        *int    `json:"servings" validate:"omitempty,gte=0" example:"4"`
	Ingredients     any     `json:"ingredients" swaggertype:"array,string"`
	Instructions    *string `json:"instructions"`
} // @name UpdateRecipeRequest

// PutRecipeHandler handles PUT /recipes/{id} requests.
type PutRecipeHandler struct {
	svc *appsvcs.Services
}

// NewPutRecipeHandler returns a PutRecipeHandler backed by the given services.
func NewPutRecipeHandler(svc *appsvcs.Services) *PutRecipeHandler {
	return &PutRecipeHandler{svc: svc}
}

// Execute merges the request into the stored recipe.
//
//	@Summary		Update recipe
//	@Description	Partially updates one of the caller's recipes; omitted fields are untouched
//	@Tags			recipes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Recipe ID"
//	@Param			request	body		UpdateRecipeRequest	true	"Fields to update"
//	@Success		200		{object}	RecipeResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/recipes/{id} [put]
func (h *PutRecipeHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	req, ok := pkgvalidator.ValidateRequest[UpdateRecipeRequest](w, r)
	if !ok {
		return
	}

	patch := models.RecipePatch{
		Name:            req.Name,
		Category:        req.Category,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
		Instructions:    req.Instructions,
	}
	if req.Ingredients != nil {
		normalized := models.NormalizeIngredients(req.Ingredients)
		patch.Ingredients = &normalized
	}

	recipe, err := h.svc.Recipe.Update(r.Context(), ownerID, id, patch)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toRecipeResponse(r.Context(), h.svc.Recipe, recipe))
}
