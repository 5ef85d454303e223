package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/repositories"
)

// RecipeCreator defines the interface that the recipe create service
// must implement.
type RecipeCreator interface {
	Create(ctx context.Context, in models.RecipeInput, uploads []models.ImageUpload) (int64, error)
}

// RecipeWritePayload identifies the written recipe
// swagger:model RecipeWritePayload
type RecipeWritePayload struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// RecipeWriteResponse represents a successful recipe write
// swagger:model RecipeWriteResponse
type RecipeWriteResponse struct {
	// Success message
	// example: Recipe added
	Message string `json:"message"`

	Payload RecipeWritePayload `json:"payload"`
}

// NewAddRecipeHandler returns an HTTP handler creating a recipe from a
// multipart form. Structured fields arrive JSON-encoded; files under
// "images" are uploaded to the media store.
// @Summary Add a recipe
// @Description Creates the recipe with its ingredients, instructions, tags and images in one transaction. Unknown diet or category titles are rejected.
// @Tags recipes
// @Accept mpfd
// @Produce json
// @Success 200 {object} handlers.RecipeWriteResponse "Recipe created"
// @Failure 400 {object} handlers.MessageResponse "Validation failure or unknown tag"
// @Failure 500 {object} handlers.ErrResponse "Storage failure"
// @Security BearerAuth
// @Router /recipes/add-recipe [post]
func NewAddRecipeHandler(svc RecipeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, uploads, err := parseRecipeForm(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid multipart form"})
			return
		}
		defer closeUploads(uploads)

		if err := form.validate(); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: err.Error()})
			return
		}

		recipeID, err := svc.Create(r.Context(), form.recipeInput(), uploads)
		if err != nil {
			switch {
			case errors.Is(err, repositories.ErrUnknownDiet),
				errors.Is(err, repositories.ErrUnknownCategory):
				writeJSON(w, http.StatusBadRequest, MessageResponse{Message: err.Error()})
			default:
				logger.Log.Errorw("failed to add recipe", "err", err)
				writeJSON(w, http.StatusInternalServerError, ErrResponse{Err: "failed to add recipe"})
			}
			return
		}

		writeJSON(w, http.StatusOK, RecipeWriteResponse{
			Message: "Recipe added",
			Payload: RecipeWritePayload{ID: recipeID, Title: form.Title},
		})
	}
}
