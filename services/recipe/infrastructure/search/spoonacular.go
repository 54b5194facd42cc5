// Package search implements the external recipe provider client against the
// Spoonacular HTTP API.
package search

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/recipath/recipath/pkg/config"
	"github.com/recipath/recipath/pkg/logger"
	"github.com/recipath/recipath/services/recipe/domain/models"
	domainsvcs "github.com/recipath/recipath/services/recipe/domain/services"
)

const defaultPageSize = 10

// Client searches the Spoonacular complexSearch endpoint and maps results to
// recipe drafts. Result order is the provider's order.
type Client struct {
	http *resty.Client
	log  logger.Logger
}

// NewClient builds a Client from the RECIPE_SEARCH_* configuration.
func NewClient(cfg *config.Config, log logger.Logger) *Client {
	http := resty.New().
		SetBaseURL(cfg.RecipeSearchBaseURL).
		SetQueryParam("apiKey", cfg.RecipeSearchAPIKey).
		SetHeader("Accept", "application/json")

	return &Client{http: http, log: log}
}

// searchResponse mirrors the fields of the complexSearch payload we consume.
// Results stay raw maps so the domain mapper owns all field interpretation.
type searchResponse struct {
	Results []map[string]any `json:"results"`
}

// Search runs a complexSearch query with full recipe information attached and
// returns the mapped drafts in response order. Records the mapper cannot use
// are skipped, not fatal.
func (c *Client) Search(ctx context.Context, query string) ([]models.RecipeDraft, error) {
	var payload searchResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":                query,
			"number":               fmt.Sprintf("%d", defaultPageSize),
			"addRecipeInformation": "true",
			"fillIngredients":      "true",
			"instructionsRequired": "false",
		}).
		SetResult(&payload).
		Get("/recipes/complexSearch")
	if err != nil {
		return nil, fmt.Errorf("spoonacular request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("spoonacular responded %s", resp.Status())
	}

	drafts := make([]models.RecipeDraft, 0, len(payload.Results))
	for _, record := range payload.Results {
		draft, err := domainsvcs.MapExternalRecord(record)
		if err != nil {
			c.log.WarnContext(ctx, "skipping unmappable search result", "error", err)
			continue
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}
