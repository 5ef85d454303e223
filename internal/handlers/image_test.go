package handlers

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestImageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("streams object bytes", func(t *testing.T) {
		mockMedia := NewMockMediaDownloader(ctrl)
		mockMedia.EXPECT().
			Download(gomock.Any(), "123_cake.png").
			Return(io.NopCloser(strings.NewReader("png-bytes")), nil)

		r := chi.NewRouter()
		r.Get("/recipes/images/{key}", NewImageHandler(mockMedia))

		req := httptest.NewRequest(http.MethodGet, "/recipes/images/123_cake.png", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "png-bytes", rec.Body.String())
		assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	})

	t.Run("missing object", func(t *testing.T) {
		mockMedia := NewMockMediaDownloader(ctrl)
		mockMedia.EXPECT().
			Download(gomock.Any(), "missing.png").
			Return(nil, errors.New("no such key"))

		r := chi.NewRouter()
		r.Get("/recipes/images/{key}", NewImageHandler(mockMedia))

		req := httptest.NewRequest(http.MethodGet, "/recipes/images/missing.png", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
