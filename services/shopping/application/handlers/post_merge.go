package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/recipath/recipath/pkg/auth"
	"github.com/recipath/recipath/pkg/errhttp"
	"github.com/recipath/recipath/pkg/httpx"
	pkgvalidator "github.com/recipath/recipath/pkg/validator"
	appsvcs "github.com/recipath/recipath/services/shopping/application/services"
	"github.com/recipath/recipath/services/shopping/domain/models"
)

// MergeRequest is the request body for POST /shopping-list/merge. Exactly one
// of ingredients or recipe_id should be set; when both are present the
// recipe's ingredients merge first, then the free-form lines.
type MergeRequest struct {
	Ingredients []string   `json:"ingredients" example:"2 onions,Tomato"`
	RecipeID    *uuid.UUID `json:"recipe_id" example:"123e4567-e89b-12d3-a456-426614174000"`
} // @name MergeRequest

// PostMergeHandler handles POST /shopping-list/merge requests.
type PostMergeHandler struct {
	svc *appsvcs.Services
}

// NewPostMergeHandler returns a PostMergeHandler backed by the given services.
func NewPostMergeHandler(svc *appsvcs.Services) *PostMergeHandler {
	return &PostMergeHandler{svc: svc}
}

// Execute merges ingredient lines or a recipe's ingredients into the list.
// Lines already present (case-insensitively, after trimming) are skipped and
// keep their checked state; re-merging is a no-op.
//
//	@Summary		Merge into shopping list
//	@Description	Adds ingredient lines or a recipe's ingredients, skipping duplicates
//	@Tags			shopping
//	@Accept			json
//	@Produce		json
//	@Param			request	body		MergeRequest	true	"Lines or recipe to merge"
//	@Success		200		{object}	ListResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/shopping-list/merge [post]
func (h *PostMergeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[MergeRequest](w, r)
	if !ok {
		return
	}
	if req.RecipeID == nil && len(req.Ingredients) == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "ingredients or recipe_id is required")
		return
	}

	var list *models.ShoppingList
	if req.RecipeID != nil {
		list, err = h.svc.Shopping.MergeRecipe(r.Context(), ownerID, *req.RecipeID)
		if err != nil {
			errhttp.WriteError(w, err)
			return
		}
	}
	if len(req.Ingredients) > 0 {
		list, err = h.svc.Shopping.MergeIngredients(r.Context(), ownerID, req.Ingredients)
		if err != nil {
			errhttp.WriteError(w, err)
			return
		}
	}

	httpx.JSON(w, http.StatusOK, toListResponse(list))
}
