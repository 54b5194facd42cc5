package handlers

import (
	"fmt"
	"net/http"

	"go.temporal.io/sdk/client"

	"github.com/recipath/recipath/pkg/app"
	"github.com/recipath/recipath/pkg/auth"
	"github.com/recipath/recipath/pkg/errhttp"
	"github.com/recipath/recipath/pkg/httpx"
	pkgworkflows "github.com/recipath/recipath/pkg/workflows"
	mealplansvcs "github.com/recipath/recipath/services/mealplan/application/services"
	appsvcs "github.com/recipath/recipath/services/shopping/application/services"
	"github.com/recipath/recipath/services/shopping/application/workflows"
)

// BuildStartedResponse is returned when the build runs as a Temporal workflow.
type BuildStartedResponse struct {
	WorkflowID string `json:"workflow_id" example:"build-shopping-list-user123"`
	RunID      string `json:"run_id"      example:"6ff0f6a2-93e1-4b43-a3e5-3f4d9b1a2c3d"`
} // @name BuildStartedResponse

// FromPlanHandler handles POST /shopping-list/from-plan requests: it merges
// every recipe on the week plan into the shopping list. With a Temporal
// server configured the build runs as a durable workflow; otherwise it runs
// inline in the request.
type FromPlanHandler struct {
	app   *app.Application
	svc   *appsvcs.Services
	plans *mealplansvcs.PlanService
}

// NewFromPlanHandler returns a FromPlanHandler backed by the given services.
func NewFromPlanHandler(a *app.Application, svc *appsvcs.Services, plans *mealplansvcs.PlanService) *FromPlanHandler {
	return &FromPlanHandler{app: a, svc: svc, plans: plans}
}

// Execute builds the shopping list from the week plan. Planned recipes that
// no longer exist are skipped.
//
//	@Summary		Build list from week plan
//	@Description	Merges every planned recipe's ingredients into the shopping list
//	@Tags			shopping
//	@Produce		json
//	@Success		200	{object}	ListResponse
//	@Success		202	{object}	BuildStartedResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/shopping-list/from-plan [post]
func (h *FromPlanHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if h.app.TemporalClient != nil {
		run, err := h.app.TemporalClient.Client.ExecuteWorkflow(r.Context(), client.StartWorkflowOptions{
			ID:        fmt.Sprintf("build-shopping-list-%s", ownerID),
			TaskQueue: pkgworkflows.TaskQueue,
		}, workflows.BuildWeeklyShoppingListName, ownerID)
		if err != nil {
			errhttp.WriteError(w, fmt.Errorf("start build workflow: %w", err))
			return
		}
		httpx.JSON(w, http.StatusAccepted, BuildStartedResponse{
			WorkflowID: run.GetID(),
			RunID:      run.GetRunID(),
		})
		return
	}

	// No Temporal server: run the same steps inline.
	acts := &workflows.Activities{Plans: h.plans, Shopping: h.svc.Shopping}
	ids, err := acts.PlannedRecipeIDs(r.Context(), ownerID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	for _, id := range ids {
		if err := acts.MergePlannedRecipe(r.Context(), ownerID, id); err != nil {
			h.app.Logger.WarnContext(r.Context(), "skipping planned recipe",
				"recipe_id", id, "error", err)
		}
	}

	list, err := h.svc.Shopping.List(r.Context(), ownerID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toListResponse(list))
}
