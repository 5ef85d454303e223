package handlers

import (
	"context"
	"net/http"

	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/models"
)

// RecipeSearcher defines the interface that the recipe search service
// must implement.
type RecipeSearcher interface {
	Search(ctx context.Context, q string) ([]models.RecipeDB, error)
}

// RecipeSearchResponse represents search results, prefix matches first
// swagger:model RecipeSearchResponse
type RecipeSearchResponse struct {
	Payload []models.RecipeDB `json:"payload"`
}

// NewSearchRecipesHandler returns an HTTP handler for title search.
// @Summary Search recipes by title
// @Description Substring match on title. Titles starting with the query rank before other matches.
// @Tags recipes
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} handlers.RecipeSearchResponse "Matches"
// @Failure 500 {object} handlers.ErrResponse "Storage failure"
// @Router /recipes/search [get]
func NewSearchRecipesHandler(svc RecipeSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")

		recipes, err := svc.Search(r.Context(), q)
		if err != nil {
			logger.Log.Errorw("failed to search recipes", "q", q, "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrResponse{Err: "failed to search recipes"})
			return
		}

		writeJSON(w, http.StatusOK, RecipeSearchResponse{Payload: recipes})
	}
}
