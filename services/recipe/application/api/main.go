package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/recipath/recipath/services/recipe/application/handlers"
	appsvcs "github.com/recipath/recipath/services/recipe/application/services"
)

// RecipeRoutes registers recipe endpoints on the provided chi router.
func RecipeRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Group(func(r chi.Router) {
		r.Route("/recipes", func(r chi.Router) {
			r.Post("/", handlers.NewPostRecipeHandler(svcs).Execute)
			r.Get("/", handlers.NewGetRecipesHandler(svcs).List)
			r.Post("/import", handlers.NewImportRecipeHandler(svcs).Execute)
			r.Get("/external", handlers.NewSearchExternalHandler(svcs).Execute)
			r.Post("/clip", handlers.NewClipRecipeHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetRecipesHandler(svcs).Get)
			r.Put("/{id}", handlers.NewPutRecipeHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteRecipeHandler(svcs).Execute)
			r.Post("/{id}/photo", handlers.NewPostPhotoHandler(svcs).Execute)
		})
	})
}
