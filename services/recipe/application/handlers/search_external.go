package handlers

import (
	"net/http"
	"strings"

	"github.com/recipath/recipath/pkg/auth"
	"github.com/recipath/recipath/pkg/errhttp"
	"github.com/recipath/recipath/pkg/httpx"
	appsvcs "github.com/recipath/recipath/services/recipe/application/services"
)

// SearchExternalHandler handles GET /recipes/external requests.
type SearchExternalHandler struct {
	svc *appsvcs.Services
}

// NewSearchExternalHandler returns a SearchExternalHandler backed by the given services.
func NewSearchExternalHandler(svc *appsvcs.Services) *SearchExternalHandler {
	return &SearchExternalHandler{svc: svc}
}

// Execute searches the external recipe provider and returns candidate
// drafts in provider order. Drafts are not persisted; the client imports
// chosen ones through /recipes/import or /recipes.
//
//	@Summary		Search external recipes
//	@Description	Queries the external provider and returns mapped drafts in provider order
//	@Tags			recipes
//	@Produce		json
//	@Param			q	query		string	true	"Search query"
//	@Success		200	{array}		DraftResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/recipes/external [get]
func (h *SearchExternalHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if _, err := auth.UserIDFromCtx(r.Context()); err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		httpx.JSONError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	drafts, err := h.svc.Recipe.SearchExternal(r.Context(), query)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]DraftResponse, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, toDraftResponse(d))
	}
	httpx.JSON(w, http.StatusOK, out)
}
