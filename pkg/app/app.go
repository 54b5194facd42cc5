package app

import (
	"github.com/gorilla/sessions"

	"github.com/recipath/recipath/pkg/cache"
	"github.com/recipath/recipath/pkg/config"
	"github.com/recipath/recipath/pkg/database"
	"github.com/recipath/recipath/pkg/events"
	"github.com/recipath/recipath/pkg/logger"
	"github.com/recipath/recipath/pkg/storage"
	"github.com/recipath/recipath/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service Routes calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "importing recipe", "recipe_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config         *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	TemporalClient *workflows.TemporalClient // nil when TEMPORAL_HOST_PORT is unset
	SessionStore   sessions.Store            // Redis-backed session store; nil in worker process
	Photos         *storage.PhotoStore       // nil when photo storage is unavailable
}
