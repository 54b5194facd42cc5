package handlers

import (
	"net/http"

	"github.com/recipath/recipath/pkg/auth"
	"github.com/recipath/recipath/pkg/errhttp"
	"github.com/recipath/recipath/pkg/httpx"
	appsvcs "github.com/recipath/recipath/services/shopping/application/services"
)

// ClearListHandler handles DELETE /shopping-list requests.
type ClearListHandler struct {
	svc *appsvcs.Services
}

// NewClearListHandler returns a ClearListHandler backed by the given services.
func NewClearListHandler(svc *appsvcs.Services) *ClearListHandler {
	return &ClearListHandler{svc: svc}
}

// Execute empties the caller's list.
//
//	@Summary		Clear shopping list
//	@Description	Removes every item from the caller's list
//	@Tags			shopping
//	@Produce		json
//	@Success		200	{object}	ListResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/shopping-list [delete]
func (h *ClearListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	list, err := h.svc.Shopping.Clear(r.Context(), ownerID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toListResponse(list))
}
