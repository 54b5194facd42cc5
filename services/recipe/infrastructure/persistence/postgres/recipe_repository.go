// Package postgres implements the recipe repository on PostgreSQL with
// transactional event publishing (outbox pattern).
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	pkgdb "github.com/recipath/recipath/pkg/database"
	pkgevents "github.com/recipath/recipath/pkg/events"
	recipedomain "github.com/recipath/recipath/services/recipe/domain"
	domainevents "github.com/recipath/recipath/services/recipe/domain/events"
	"github.com/recipath/recipath/services/recipe/domain/models"
	"github.com/recipath/recipath/services/recipe/infrastructure/persistence/postgres/db"
)

const eventVersion = 1

// RecipeRepository persists recipes to PostgreSQL. Writes that have a domain
// event (create, delete) run in a transaction with the event insert so the
// event is durable iff the row change committed.
type RecipeRepository struct {
	database *pkgdb.Database
	queries  *db.Queries
	bus      *pkgevents.EventBus
}

// NewRecipeRepository wires the repository to the shared pool and event bus.
// bus may be nil in tests; events are then skipped.
func NewRecipeRepository(database *pkgdb.Database, bus *pkgevents.EventBus) *RecipeRepository {
	return &RecipeRepository{
		database: database,
		queries:  db.New(database.DB()),
		bus:      bus,
	}
}

// Save inserts the recipe and publishes RecipeCreatedEvent in the same
// transaction.
func (r *RecipeRepository) Save(ctx context.Context, recipe *models.Recipe) error {
	params, err := toCreateParams(recipe)
	if err != nil {
		return err
	}

	return r.database.WithTx(ctx, func(tx *sql.Tx) error {
		if err := r.queries.WithTx(tx).CreateRecipe(ctx, params); err != nil {
			return fmt.Errorf("insert recipe: %w", err)
		}
		return r.publishTx(tx, domainevents.TopicRecipeCreated, domainevents.RecipeCreatedEvent{
			EventID:         uuid.New(),
			Version:         eventVersion,
			RecipeID:        recipe.ID,
			OwnerID:         recipe.OwnerID,
			Name:            recipe.Name,
			Category:        recipe.Category,
			PrepTimeMinutes: recipe.PrepTimeMinutes,
			CookTimeMinutes: recipe.CookTimeMinutes,
			Servings:        recipe.Servings,
			Ingredients:     recipe.Ingredients,
			Instructions:    recipe.Instructions,
			OccurredAt:      time.Now().UTC(),
		})
	})
}

// GetByID fetches a recipe regardless of owner; the application layer decides
// whether the caller may see it.
func (r *RecipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	row, err := r.queries.GetRecipe(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, recipedomain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return fromRow(row)
}

// FindByOwner returns the owner's recipes ordered by creation time.
func (r *RecipeRepository) FindByOwner(ctx context.Context, ownerID string) ([]*models.Recipe, error) {
	rows, err := r.queries.ListRecipesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	recipes := make([]*models.Recipe, 0, len(rows))
	for _, row := range rows {
		recipe, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

// Update persists the full current state of the recipe.
func (r *RecipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	ingredients, err := marshalIngredients(recipe.Ingredients)
	if err != nil {
		return err
	}

	affected, err := r.queries.UpdateRecipe(ctx, db.UpdateRecipeParams{
		ID:              recipe.ID,
		Name:            recipe.Name,
		Category:        recipe.Category,
		PrepTimeMinutes: int32(recipe.PrepTimeMinutes),
		CookTimeMinutes: int32(recipe.CookTimeMinutes),
		Servings:        int32(recipe.Servings),
		Ingredients:     ingredients,
		Instructions:    recipe.Instructions,
		PhotoRef:        recipe.PhotoRef,
	})
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	if affected == 0 {
		return recipedomain.ErrRecipeNotFound
	}
	return nil
}

// Delete removes the row and publishes RecipeDeletedEvent in the same
// transaction. Nothing cascades: meal-plan and shopping-list references stay.
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.database.WithTx(ctx, func(tx *sql.Tx) error {
		txq := r.queries.WithTx(tx)

		row, err := txq.GetRecipe(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return recipedomain.ErrRecipeNotFound
			}
			return fmt.Errorf("get recipe for delete: %w", err)
		}

		affected, err := txq.DeleteRecipe(ctx, id)
		if err != nil {
			return fmt.Errorf("delete recipe: %w", err)
		}
		if affected == 0 {
			return recipedomain.ErrRecipeNotFound
		}

		return r.publishTx(tx, domainevents.TopicRecipeDeleted, domainevents.RecipeDeletedEvent{
			EventID:    uuid.New(),
			Version:    eventVersion,
			RecipeID:   id,
			OwnerID:    row.OwnerID,
			OccurredAt: time.Now().UTC(),
		})
	})
}

// publishTx publishes event on topic within tx via the outbox publisher.
func (r *RecipeRepository) publishTx(tx *sql.Tx, topic string, event any) error {
	if r.bus == nil {
		return nil
	}
	pub, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("tx publisher: %w", err)
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", topic, err)
	}
	if err := pub.Publish(topic, message.NewMessage(uuid.NewString(), payload)); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

func toCreateParams(recipe *models.Recipe) (db.CreateRecipeParams, error) {
	ingredients, err := marshalIngredients(recipe.Ingredients)
	if err != nil {
		return db.CreateRecipeParams{}, err
	}
	return db.CreateRecipeParams{
		ID:              recipe.ID,
		OwnerID:         recipe.OwnerID,
		Name:            recipe.Name,
		Category:        recipe.Category,
		PrepTimeMinutes: int32(recipe.PrepTimeMinutes),
		CookTimeMinutes: int32(recipe.CookTimeMinutes),
		Servings:        int32(recipe.Servings),
		Ingredients:     ingredients,
		Instructions:    recipe.Instructions,
		PhotoRef:        recipe.PhotoRef,
		CreatedAt:       recipe.CreatedAt,
	}, nil
}

func fromRow(row db.Recipe) (*models.Recipe, error) {
	var ingredients []string
	if len(row.Ingredients) > 0 {
		if err := json.Unmarshal(row.Ingredients, &ingredients); err != nil {
			return nil, fmt.Errorf("decode ingredients for %s: %w", row.ID, err)
		}
	}
	if ingredients == nil {
		ingredients = []string{}
	}
	return &models.Recipe{
		ID:              row.ID,
		OwnerID:         row.OwnerID,
		Name:            row.Name,
		Category:        row.Category,
		PrepTimeMinutes: int(row.PrepTimeMinutes),
		CookTimeMinutes: int(row.CookTimeMinutes),
		Servings:        int(row.Servings),
		Ingredients:     ingredients,
		Instructions:    row.Instructions,
		PhotoRef:        row.PhotoRef,
		CreatedAt:       row.CreatedAt,
	}, nil
}

func marshalIngredients(ingredients []string) ([]byte, error) {
	if ingredients == nil {
		ingredients = []string{}
	}
	data, err := json.Marshal(ingredients)
	if err != nil {
		return nil, fmt.Errorf("encode ingredients: %w", err)
	}
	return data, nil
}
