package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.temporal.io/sdk/worker"
	temporalworkflow "go.temporal.io/sdk/workflow"

	"github.com/recipath/recipath/pkg/app"
	"github.com/recipath/recipath/pkg/cache"
	"github.com/recipath/recipath/pkg/config"
	"github.com/recipath/recipath/pkg/database"
	"github.com/recipath/recipath/pkg/events"
	"github.com/recipath/recipath/pkg/logger"
	"github.com/recipath/recipath/pkg/telemetry"
	pkgworkflows "github.com/recipath/recipath/pkg/workflows"
	mealplansvcs "github.com/recipath/recipath/services/mealplan/application/services"
	mealplancatalog "github.com/recipath/recipath/services/mealplan/infrastructure/catalog"
	recipesvcs "github.com/recipath/recipath/services/recipe/application/services"
	recipeEvents "github.com/recipath/recipath/services/recipe/domain/events"
	shoppingsvcs "github.com/recipath/recipath/services/shopping/application/services"
	shoppingworkflows "github.com/recipath/recipath/services/shopping/application/workflows"
	shoppingcatalog "github.com/recipath/recipath/services/shopping/infrastructure/catalog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	var temporalWorker worker.Worker
	if cfg.TemporalHostPort != "" {
		temporalClient, err := pkgworkflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer temporalClient.Close()
		appConfig.TemporalClient = temporalClient

		temporalWorker = newTemporalWorker(appConfig)
		if err := temporalWorker.Start(); err != nil {
			log.Error("failed to start temporal worker", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		log.Info("temporal worker started", "task_queue", pkgworkflows.TaskQueue)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	if temporalWorker != nil {
		temporalWorker.Stop()
	}

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		recipeEvents.TopicRecipeCreated: handleRecipeCreated(a),
		recipeEvents.TopicRecipeDeleted: handleRecipeDeleted(a),
	}

	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered",
		"topics", []string{recipeEvents.TopicRecipeCreated, recipeEvents.TopicRecipeDeleted})
	return nil
}

// handleRecipeCreated returns a handler for recipe.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis read-model cache so subsequent Get calls hit the cache.
func handleRecipeCreated(a *app.Application) func(context.Context, *message.Message) error {
	recipeCache := cache.NewRecipeCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt recipeEvents.RecipeCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := recipeCache.Set(ctx, &cache.CachedRecipe{
			ID:              evt.RecipeID,
			OwnerID:         evt.OwnerID,
			Name:            evt.Name,
			Category:        evt.Category,
			PrepTimeMinutes: evt.PrepTimeMinutes,
			CookTimeMinutes: evt.CookTimeMinutes,
			Servings:        evt.Servings,
			Ingredients:     evt.Ingredients,
			Instructions:    evt.Instructions,
			CreatedAt:       evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for recipe.created",
				"recipe_id", evt.RecipeID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"recipe_id", evt.RecipeID, "owner_id", evt.OwnerID)
		}

		return nil
	}
}

// handleRecipeDeleted returns a handler for recipe.deleted events.
// Drops the cached read model; meal-plan assignments referencing the recipe
// stay in place and resolve to the unassigned sentinel at display time.
func handleRecipeDeleted(a *app.Application) func(context.Context, *message.Message) error {
	recipeCache := cache.NewRecipeCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt recipeEvents.RecipeDeletedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := recipeCache.Delete(ctx, evt.OwnerID, evt.RecipeID); err != nil {
			a.Logger.WarnContext(ctx, "cache invalidation failed for recipe.deleted",
				"recipe_id", evt.RecipeID, "error", err)
		}
		return nil
	}
}

// newTemporalWorker registers the shopping-list build workflow and its
// activities on the shared task queue.
func newTemporalWorker(a *app.Application) worker.Worker {
	recipeServices := recipesvcs.New(a)
	mealplanServices := mealplansvcs.New(a, mealplancatalog.NewReader(recipeServices.Recipe))
	shoppingServices := shoppingsvcs.New(a, shoppingcatalog.NewReader(recipeServices.Recipe))

	w := worker.New(a.TemporalClient.Client, pkgworkflows.TaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(shoppingworkflows.BuildWeeklyShoppingList, temporalworkflow.RegisterOptions{
		Name: shoppingworkflows.BuildWeeklyShoppingListName,
	})
	w.RegisterActivity(&shoppingworkflows.Activities{
		Plans:    mealplanServices.Plan,
		Shopping: shoppingServices.Shopping,
	})
	return w
}
