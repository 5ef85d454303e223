package handlers

import (
	"context"
	"net/http"

	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/models"
)

// OptionsProvider defines the interface that the lookup-list service
// must implement.
type OptionsProvider interface {
	Options(ctx context.Context) (*models.Options, error)
}

// OptionsResponse represents the editor lookup lists
// swagger:model OptionsResponse
type OptionsResponse struct {
	Payload models.Options `json:"payload"`
}

// NewOptionsHandler returns an HTTP handler serving the editor lookup
// lists (diets, categories, measuring units).
// @Summary Get recipe editor options
// @Tags recipes
// @Produce json
// @Success 200 {object} handlers.OptionsResponse "Lookup lists"
// @Failure 500 {object} handlers.ErrResponse "Storage failure"
// @Router /recipes/options [get]
func NewOptionsHandler(svc OptionsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options, err := svc.Options(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to load options", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrResponse{Err: "failed to load options"})
			return
		}

		writeJSON(w, http.StatusOK, OptionsResponse{Payload: *options})
	}
}
