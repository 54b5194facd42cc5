package services

import (
	"github.com/recipath/recipath/pkg/app"
	"github.com/recipath/recipath/services/mealplan/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Plan *PlanService
}

// New wires the meal-plan services. The catalog reader is an adapter over the
// recipe context, constructed by the caller so wiring stays explicit in cmd.
func New(a *app.Application, catalog CatalogReader) *Services {
	repo := postgres.NewPlanRepository(a.Db)
	return &Services{
		Plan: NewPlanService(repo, catalog),
	}
}
