package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/recipeshare/server/internal/logger"
)

// MediaDownloader defines the interface that the media store must
// implement to serve images.
type MediaDownloader interface {
	Download(ctx context.Context, key string) (io.ReadCloser, error)
}

// NewImageHandler returns an HTTP handler streaming an image object
// from the media store by key.
// @Summary Download a recipe image
// @Tags recipes
// @Produce octet-stream
// @Param key path string true "Object key"
// @Success 200 {file} binary "Image bytes"
// @Failure 404 {object} handlers.MessageResponse "Object not found"
// @Router /recipes/images/{key} [get]
func NewImageHandler(media MediaDownloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		if key == "" {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid image key"})
			return
		}

		body, err := media.Download(r.Context(), key)
		if err != nil {
			logger.Log.Errorw("failed to fetch image", "key", key, "err", err)
			writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Image not found"})
			return
		}
		defer body.Close()

		w.Header().Set("Content-Type", "application/octet-stream")
		if _, err := io.Copy(w, body); err != nil {
			logger.Log.Errorw("failed to stream image", "key", key, "err", err)
		}
	}
}
