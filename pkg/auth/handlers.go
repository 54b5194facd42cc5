package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/recipath/recipath/pkg/httpx"
	"github.com/recipath/recipath/pkg/logger"
	pkgvalidator "github.com/recipath/recipath/pkg/validator"
)

// LoginRequest carries the identity asserted by the upstream identity
// provider. Token verification happens at the edge (reverse proxy / IdP
// callback); this endpoint only establishes the server-side session.
type LoginRequest struct {
	UserID      string `json:"user_id" validate:"required,min=1,max=128"`
	DisplayName string `json:"display_name" validate:"max=255"`
} // @name LoginRequest

// MeResponse describes the currently signed-in user.
type MeResponse struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
} // @name MeResponse

// Routes registers session endpoints on the given router:
// POST /auth/login, POST /auth/logout, GET /auth/me.
func Routes(r chi.Router, store sessions.Store, log logger.Logger) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", loginHandler(store, log))
		r.Post("/logout", logoutHandler(store, log))
		r.Get("/me", meHandler(store))
	})
}

func loginHandler(store sessions.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
		if !ok {
			return
		}

		session, err := store.Get(r, sessionName)
		if err != nil {
			// Tampered cookie — fall through with the fresh session Get returned.
			log.WarnContext(r.Context(), "discarding invalid session on login", "error", err)
		}

		session.Values[sessionUserIDKey] = req.UserID
		session.Values[sessionDisplayNameKey] = req.DisplayName
		if err := session.Save(r, w); err != nil {
			log.ErrorContext(r.Context(), "save session", "error", err)
			httpx.JSONError(w, http.StatusInternalServerError, "could not establish session")
			return
		}

		httpx.JSON(w, http.StatusOK, MeResponse{UserID: req.UserID, DisplayName: req.DisplayName})
	}
}

func logoutHandler(store sessions.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := store.Get(r, sessionName)
		if err != nil {
			httpx.JSON(w, http.StatusOK, map[string]string{"status": "logged out"})
			return
		}

		session.Options.MaxAge = -1
		if err := session.Save(r, w); err != nil {
			log.ErrorContext(r.Context(), "destroy session", "error", err)
			httpx.JSONError(w, http.StatusInternalServerError, "could not destroy session")
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "logged out"})
	}
}

func meHandler(store sessions.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := store.Get(r, sessionName)
		if err != nil {
			httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		userID, ok := session.Values[sessionUserIDKey].(string)
		if !ok || userID == "" {
			httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		displayName, _ := session.Values[sessionDisplayNameKey].(string)

		httpx.JSON(w, http.StatusOK, MeResponse{UserID: userID, DisplayName: displayName})
	}
}
