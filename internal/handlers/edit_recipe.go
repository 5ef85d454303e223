package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/repositories"
	"github.com/recipeshare/server/internal/services"
)

// RecipeUpdater defines the interface that the recipe update service
// must implement.
type RecipeUpdater interface {
	Update(ctx context.Context, in models.RecipeUpdateInput, uploads []models.ImageUpload) error
}

// NewEditRecipeHandler returns an HTTP handler updating a recipe from a
// multipart form. Ingredients and instructions listed in the deleted-id
// fields are removed; image rows absent from the submitted URL list are
// removed together with their stored objects.
// @Summary Edit a recipe
// @Description Overwrites the recipe and reconciles its children in one transaction.
// @Tags recipes
// @Accept mpfd
// @Produce json
// @Success 200 {object} handlers.RecipeWriteResponse "Recipe updated"
// @Failure 400 {object} handlers.MessageResponse "Validation failure or unknown tag"
// @Failure 404 {object} handlers.MessageResponse "Recipe not found"
// @Failure 500 {object} handlers.ErrResponse "Storage failure"
// @Security BearerAuth
// @Router /recipes/edit-recipe [put]
func NewEditRecipeHandler(svc RecipeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, uploads, err := parseRecipeForm(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid multipart form"})
			return
		}
		defer closeUploads(uploads)

		if form.ID == 0 {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid recipe id"})
			return
		}

		if err := form.validate(); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: err.Error()})
			return
		}

		in := models.RecipeUpdateInput{
			RecipeInput:         form.recipeInput(),
			ID:                  form.ID,
			IngredientsDeleted:  form.IngredientsDeleted,
			InstructionsDeleted: form.InstructionsDeleted,
			Images:              form.Images,
		}

		if err := svc.Update(r.Context(), in, uploads); err != nil {
			switch {
			case errors.Is(err, services.ErrRecipeNotFound):
				writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Recipe not found"})
			case errors.Is(err, repositories.ErrUnknownDiet),
				errors.Is(err, repositories.ErrUnknownCategory):
				writeJSON(w, http.StatusBadRequest, MessageResponse{Message: err.Error()})
			default:
				logger.Log.Errorw("failed to edit recipe", "recipe_id", form.ID, "err", err)
				writeJSON(w, http.StatusInternalServerError, ErrResponse{Err: "failed to edit recipe"})
			}
			return
		}

		writeJSON(w, http.StatusOK, RecipeWriteResponse{
			Message: "Recipe updated",
			Payload: RecipeWritePayload{ID: form.ID, Title: form.Title},
		})
	}
}
