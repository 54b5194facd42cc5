package handlers

import (
	"net/http"

	"github.com/recipath/recipath/pkg/auth"
	"github.com/recipath/recipath/pkg/errhttp"
	"github.com/recipath/recipath/pkg/httpx"
	appsvcs "github.com/recipath/recipath/services/shopping/application/services"
)

// GetListHandler handles GET /shopping-list requests.
type GetListHandler struct {
	svc *appsvcs.Services
}

// NewGetListHandler returns a GetListHandler backed by the given services.
func NewGetListHandler(svc *appsvcs.Services) *GetListHandler {
	return &GetListHandler{svc: svc}
}

// Execute returns the caller's list; an owner who never saved one gets an
// empty list, not a 404.
//
//	@Summary		Get shopping list
//	@Description	Returns the caller's shopping list
//	@Tags			shopping
//	@Produce		json
//	@Success		200	{object}	ListResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/shopping-list [get]
func (h *GetListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	list, err := h.svc.Shopping.List(r.Context(), ownerID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toListResponse(list))
}
