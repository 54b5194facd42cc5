package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/recipath/recipath/pkg/auth"
	"github.com/recipath/recipath/pkg/errhttp"
	"github.com/recipath/recipath/pkg/httpx"
	appsvcs "github.com/recipath/recipath/services/recipe/application/services"
)

// maxPhotoBytes caps a single photo upload.
const maxPhotoBytes = 5 << 20 // 5 MiB

// PostPhotoHandler handles POST /recipes/{id}/photo requests.
type PostPhotoHandler struct {
	svc *appsvcs.Services
}

// NewPostPhotoHandler returns a PostPhotoHandler backed by the given services.
func NewPostPhotoHandler(svc *appsvcs.Services) *PostPhotoHandler {
	return &PostPhotoHandler{svc: svc}
}

// Execute uploads a photo for the recipe. The body is the raw image;
// Content-Type tells the store what it is.
//
//	@Summary		Upload recipe photo
//	@Description	Stores a photo for one of the caller's recipes and links it to the record
//	@Tags			recipes
//	@Accept			octet-stream
//	@Produce		json
//	@Param			id	path		string	true	"Recipe ID"
//	@Success		200	{object}	RecipeResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/recipes/{id}/photo [post]
func (h *PostPhotoHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	body := http.MaxBytesReader(w, r.Body, maxPhotoBytes)
	defer body.Close()

	recipe, err := h.svc.Recipe.AttachPhoto(r.Context(), ownerID, id, body, r.Header.Get("Content-Type"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toRecipeResponse(r.Context(), h.svc.Recipe, recipe))
}
