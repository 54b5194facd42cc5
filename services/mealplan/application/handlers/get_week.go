// Package handlers contains the HTTP handlers for the meal plan.
package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/recipath/recipath/pkg/auth"
	"github.com/recipath/recipath/pkg/errhttp"
	"github.com/recipath/recipath/pkg/httpx"
	appsvcs "github.com/recipath/recipath/services/mealplan/application/services"
)

// DayResponse is one resolved weekday of the plan. When nothing resolves,
// assigned is false and title carries the "No meal planned" sentinel.
type DayResponse struct {
	Day      string         `json:"day"      example:"Monday"`
	Assigned bool           `json:"assigned" example:"true"`
	Title    string         `json:"title"    example:"Shakshuka"`
	Recipe   *RecipeSummary `json:"recipe,omitempty"`
} // @name DayResponse

// RecipeSummary is the catalog data shown on an assigned day.
type RecipeSummary struct {
	ID              uuid.UUID `json:"id"                example:"123e4567-e89b-12d3-a456-426614174000"`
	Name            string    `json:"name"              example:"Shakshuka"`
	Category        string    `json:"category"          example:"Breakfast"`
	PrepTimeMinutes int       `json:"prep_time_minutes" example:"10"`
	CookTimeMinutes int       `json:"cook_time_minutes" example:"25"`
} // @name PlanRecipeSummary

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid weekday"`
} // @name PlanErrorResponse

// GetWeekHandler handles GET /mealplan requests.
type GetWeekHandler struct {
	svc *appsvcs.Services
}

// NewGetWeekHandler returns a GetWeekHandler backed by the given services.
func NewGetWeekHandler(svc *appsvcs.Services) *GetWeekHandler {
	return &GetWeekHandler{svc: svc}
}

// Execute returns all seven days, Monday first, each resolved against the
// catalog at request time.
//
//	@Summary		Get week plan
//	@Description	Returns the caller's template week with recipe names resolved at read time
//	@Tags			mealplan
//	@Produce		json
//	@Success		200	{array}		DayResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/mealplan [get]
func (h *GetWeekHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	week, err := h.svc.Plan.Week(r.Context(), ownerID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]DayResponse, 0, len(week))
	for _, day := range week {
		resp := DayResponse{
			Day:      day.Day.String(),
			Assigned: day.Assigned,
			Title:    day.Title,
		}
		if day.Recipe != nil {
			resp.Recipe = &RecipeSummary{
				ID:              day.Recipe.ID,
				Name:            day.Recipe.Name,
				Category:        day.Recipe.Category,
				PrepTimeMinutes: day.Recipe.PrepTimeMinutes,
				CookTimeMinutes: day.Recipe.CookTimeMinutes,
			}
		}
		out = append(out, resp)
	}
	httpx.JSON(w, http.StatusOK, out)
}
