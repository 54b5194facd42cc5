package services

import (
	"github.com/recipath/recipath/pkg/app"
	"github.com/recipath/recipath/pkg/cache"
	"github.com/recipath/recipath/services/recipe/infrastructure/persistence/postgres"
	"github.com/recipath/recipath/services/recipe/infrastructure/search"
	"github.com/recipath/recipath/services/recipe/infrastructure/webimport"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Recipe *RecipeService
}

// New wires all recipe application services with infrastructure from the
// Application container. The external searcher stays nil without an API key
// so its endpoints report "not configured" instead of failing upstream.
func New(a *app.Application) *Services {
	repo := postgres.NewRecipeRepository(a.Db, a.EventBus)
	recipeCache := cache.NewRecipeCache(a.Redis)

	var searcher ExternalSearcher
	if a.Config.RecipeSearchAPIKey != "" {
		searcher = search.NewClient(a.Config, a.Logger)
	}

	var photos PhotoStore
	if a.Photos != nil {
		photos = a.Photos
	}

	return &Services{
		Recipe: NewRecipeService(repo, recipeCache, searcher, webimport.NewClipper(a.Logger), photos),
	}
}
