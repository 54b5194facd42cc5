package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/recipath/recipath/pkg/app"
	mealplansvcs "github.com/recipath/recipath/services/mealplan/application/services"
	"github.com/recipath/recipath/services/shopping/application/handlers"
	appsvcs "github.com/recipath/recipath/services/shopping/application/services"
)

// ShoppingRoutes registers shopping-list endpoints on the provided chi
// router. The meal-plan service is needed by the from-plan build.
func ShoppingRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services, plans *mealplansvcs.PlanService) {
	r.Group(func(r chi.Router) {
		r.Route("/shopping-list", func(r chi.Router) {
			r.Get("/", handlers.NewGetListHandler(svcs).Execute)
			r.Delete("/", handlers.NewClearListHandler(svcs).Execute)
			r.Post("/merge", handlers.NewPostMergeHandler(svcs).Execute)
			r.Post("/from-plan", handlers.NewFromPlanHandler(a, svcs, plans).Execute)
			r.Post("/items/{index}/toggle", handlers.NewItemOpsHandler(svcs).Toggle)
			r.Delete("/items/{index}", handlers.NewItemOpsHandler(svcs).Remove)
		})
	})
}
