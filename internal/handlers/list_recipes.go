package handlers

import (
	"context"
	"net/http"

	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/models"
)

// RecipeLister defines the interface that the recipe list service must
// implement.
type RecipeLister interface {
	List(ctx context.Context) ([]models.RecipeSummary, error)
}

// RecipeListResponse represents a list of recipes with image URLs
// swagger:model RecipeListResponse
type RecipeListResponse struct {
	Payload []models.RecipeSummary `json:"payload"`
}

// NewListRecipesHandler returns an HTTP handler listing all recipes.
// @Summary List all recipes
// @Tags recipes
// @Produce json
// @Success 200 {object} handlers.RecipeListResponse "Recipes"
// @Failure 500 {object} handlers.ErrResponse "Storage failure"
// @Router /recipes [get]
func NewListRecipesHandler(svc RecipeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipes, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list recipes", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrResponse{Err: "failed to list recipes"})
			return
		}

		writeJSON(w, http.StatusOK, RecipeListResponse{Payload: recipes})
	}
}
