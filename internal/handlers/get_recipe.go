package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/services"
)

// RecipeGetter defines the interface that the recipe aggregate service
// must implement.
type RecipeGetter interface {
	Get(ctx context.Context, recipeID int64) (*models.RecipeAggregate, error)
}

// RecipeResponse represents a full recipe aggregate
// swagger:model RecipeResponse
type RecipeResponse struct {
	Payload models.RecipeAggregate `json:"payload"`
}

// NewGetRecipeHandler returns an HTTP handler serving one full recipe.
// @Summary Get a recipe with all its children
// @Tags recipes
// @Produce json
// @Param recipeId query int true "Recipe id"
// @Success 200 {object} handlers.RecipeResponse "Recipe aggregate"
// @Failure 400 {object} handlers.MessageResponse "Bad recipe id"
// @Failure 404 {object} handlers.MessageResponse "Recipe not found"
// @Failure 500 {object} handlers.ErrResponse "Storage failure"
// @Router /recipes/recipe [get]
func NewGetRecipeHandler(svc RecipeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := strconv.ParseInt(r.URL.Query().Get("recipeId"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid recipe id"})
			return
		}

		recipe, err := svc.Get(r.Context(), recipeID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRecipeNotFound):
				writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Recipe not found"})
			default:
				logger.Log.Errorw("failed to get recipe", "recipe_id", recipeID, "err", err)
				writeJSON(w, http.StatusInternalServerError, ErrResponse{Err: "failed to get recipe"})
			}
			return
		}

		writeJSON(w, http.StatusOK, RecipeResponse{Payload: *recipe})
	}
}
