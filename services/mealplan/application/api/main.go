package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/recipath/recipath/services/mealplan/application/handlers"
	appsvcs "github.com/recipath/recipath/services/mealplan/application/services"
)

// MealPlanRoutes registers meal-plan endpoints on the provided chi router.
func MealPlanRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Group(func(r chi.Router) {
		r.Route("/mealplan", func(r chi.Router) {
			r.Get("/", handlers.NewGetWeekHandler(svcs).Execute)
			r.Put("/{day}", handlers.NewPutDayHandler(svcs).Execute)
			r.Delete("/{day}", handlers.NewDeleteDayHandler(svcs).Execute)
		})
	})
}
