package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/recipath/recipath/pkg/auth"
	"github.com/recipath/recipath/pkg/errhttp"
	"github.com/recipath/recipath/pkg/httpx"
	appsvcs "github.com/recipath/recipath/services/shopping/application/services"
)

// ItemOpsHandler handles the index-addressed item operations:
// POST /shopping-list/items/{index}/toggle and DELETE /shopping-list/items/{index}.
type ItemOpsHandler struct {
	svc *appsvcs.Services
}

// NewItemOpsHandler returns an ItemOpsHandler backed by the given services.
func NewItemOpsHandler(svc *appsvcs.Services) *ItemOpsHandler {
	return &ItemOpsHandler{svc: svc}
}

// Toggle flips the checked state of the item at the index.
//
//	@Summary		Toggle item
//	@Description	Flips the checked state of the item at the given position
//	@Tags			shopping
//	@Produce		json
//	@Param			index	path		int	true	"Item position"
//	@Success		200		{object}	ListResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/shopping-list/items/{index}/toggle [post]
func (h *ItemOpsHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	ownerID, index, ok := h.parse(w, r)
	if !ok {
		return
	}

	list, err := h.svc.Shopping.Toggle(r.Context(), ownerID, index)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toListResponse(list))
}

// Remove deletes the item at the index; later items shift down one position.
//
//	@Summary		Remove item
//	@Description	Deletes the item at the given position
//	@Tags			shopping
//	@Produce		json
//	@Param			index	path		int	true	"Item position"
//	@Success		200		{object}	ListResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/shopping-list/items/{index} [delete]
func (h *ItemOpsHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ownerID, index, ok := h.parse(w, r)
	if !ok {
		return
	}

	list, err := h.svc.Shopping.Remove(r.Context(), ownerID, index)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toListResponse(list))
}

func (h *ItemOpsHandler) parse(w http.ResponseWriter, r *http.Request) (ownerID string, index int, ok bool) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return "", 0, false
	}

	index, err = strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item index")
		return "", 0, false
	}
	return ownerID, index, true
}
