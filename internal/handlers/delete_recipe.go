package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/services"
)

// RecipeDeleter defines the interface that the recipe delete service
// must implement.
type RecipeDeleter interface {
	Delete(ctx context.Context, recipeID int64) error
}

// NewDeleteRecipeHandler returns an HTTP handler deleting a recipe.
// Child rows go with the recipe; stored image objects are removed
// best-effort afterwards.
// @Summary Delete a recipe
// @Tags recipes
// @Produce json
// @Param recipeId query int true "Recipe id"
// @Success 200 {object} handlers.MessageResponse "Recipe deleted"
// @Failure 400 {object} handlers.MessageResponse "Bad recipe id or recipe not found"
// @Failure 500 {object} handlers.ErrResponse "Storage failure"
// @Security BearerAuth
// @Router /recipes/recipe [delete]
func NewDeleteRecipeHandler(svc RecipeDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := strconv.ParseInt(r.URL.Query().Get("recipeId"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid recipe id"})
			return
		}

		if err := svc.Delete(r.Context(), recipeID); err != nil {
			switch {
			case errors.Is(err, services.ErrRecipeNotFound):
				writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Recipe not found"})
			default:
				logger.Log.Errorw("failed to delete recipe", "recipe_id", recipeID, "err", err)
				writeJSON(w, http.StatusInternalServerError, ErrResponse{Err: "failed to delete recipe"})
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Recipe deleted"})
	}
}
