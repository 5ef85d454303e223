package handlers

import (
	"context"
	"net/http"

	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/validation"
)

// OwnerRecipeLister defines the interface that the per-owner recipe
// service must implement.
type OwnerRecipeLister interface {
	MyRecipes(ctx context.Context, email string) ([]models.RecipeSummary, error)
}

// NewMyRecipesHandler returns an HTTP handler listing one user's recipes.
// @Summary List recipes owned by an email
// @Tags recipes
// @Produce json
// @Param email query string true "Owner email"
// @Success 200 {object} handlers.RecipeListResponse "Recipes"
// @Failure 400 {object} handlers.MessageResponse "Bad email"
// @Failure 500 {object} handlers.ErrResponse "Storage failure"
// @Router /recipes/my-recipes [get]
func NewMyRecipesHandler(svc OwnerRecipeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		if err := validation.Email(email); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: err.Error()})
			return
		}

		recipes, err := svc.MyRecipes(r.Context(), email)
		if err != nil {
			logger.Log.Errorw("failed to list recipes by owner", "email", email, "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrResponse{Err: "failed to list recipes"})
			return
		}

		writeJSON(w, http.StatusOK, RecipeListResponse{Payload: recipes})
	}
}
