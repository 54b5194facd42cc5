package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/recipath/recipath/pkg/auth"
	"github.com/recipath/recipath/pkg/errhttp"
	"github.com/recipath/recipath/pkg/httpx"
	pkgvalidator "github.com/recipath/recipath/pkg/validator"
	appsvcs "github.com/recipath/recipath/services/mealplan/application/services"
	"github.com/recipath/recipath/services/mealplan/domain/models"
)

// AssignDayRequest is the request body for PUT /mealplan/{day}.
type AssignDayRequest struct {
	RecipeID uuid.UUID `json:"recipe_id" validate:"required" example:"123e4567-e89b-12d3-a456-426614174000"`
} // @name AssignDayRequest

// PutDayHandler handles PUT /mealplan/{day} requests.
type PutDayHandler struct {
	svc *appsvcs.Services
}

// NewPutDayHandler returns a PutDayHandler backed by the given services.
func NewPutDayHandler(svc *appsvcs.Services) *PutDayHandler {
	return &PutDayHandler{svc: svc}
}

// Execute assigns a recipe to the day, replacing any previous assignment.
//
//	@Summary		Assign meal
//	@Description	Assigns one of the caller's recipes to a weekday; last write wins
//	@Tags			mealplan
//	@Accept			json
//	@Produce		json
//	@Param			day		path	string				true	"Weekday (Monday..Sunday, case-insensitive)"
//	@Param			request	body	AssignDayRequest	true	"Recipe to assign"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/mealplan/{day} [put]
func (h *PutDayHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	day, err := models.ParseWeekday(chi.URLParam(r, "day"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[AssignDayRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Plan.Assign(r.Context(), ownerID, day, req.RecipeID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
