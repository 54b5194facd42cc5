package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/recipath/recipath/pkg/auth"
	"github.com/recipath/recipath/pkg/errhttp"
	"github.com/recipath/recipath/pkg/httpx"
	appsvcs "github.com/recipath/recipath/services/mealplan/application/services"
	"github.com/recipath/recipath/services/mealplan/domain/models"
)

// DeleteDayHandler handles DELETE /mealplan/{day} requests.
type DeleteDayHandler struct {
	svc *appsvcs.Services
}

// NewDeleteDayHandler returns a DeleteDayHandler backed by the given services.
func NewDeleteDayHandler(svc *appsvcs.Services) *DeleteDayHandler {
	return &DeleteDayHandler{svc: svc}
}

// Execute clears the day's assignment. Clearing an empty day also succeeds.
//
//	@Summary		Clear meal
//	@Description	Removes the weekday's assignment
//	@Tags			mealplan
//	@Produce		json
//	@Param			day	path	string	true	"Weekday (Monday..Sunday, case-insensitive)"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/mealplan/{day} [delete]
func (h *DeleteDayHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Plan.Clear(r.Context(), ownerID, day); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
