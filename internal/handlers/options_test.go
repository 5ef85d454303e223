package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/recipeshare/server/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestOptionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	options := &models.Options{
		Diets:          []string{"Vegan", "Vegetarian"},
		Categories:     []string{"Dessert", "Dinner"},
		MeasuringUnits: []string{"cup", "tbsp"},
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockOptionsProvider(ctrl)
		mockSvc.EXPECT().Options(gomock.Any()).Return(options, nil)

		req := httptest.NewRequest(http.MethodGet, "/recipes/options", nil)
		rec := httptest.NewRecorder()

		NewOptionsHandler(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp OptionsResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, options.Diets, resp.Payload.Diets)
		assert.Equal(t, options.Categories, resp.Payload.Categories)
		assert.Equal(t, options.MeasuringUnits, resp.Payload.MeasuringUnits)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockSvc := NewMockOptionsProvider(ctrl)
		mockSvc.EXPECT().Options(gomock.Any()).Return(nil, errors.New("database failure"))

		req := httptest.NewRequest(http.MethodGet, "/recipes/options", nil)
		rec := httptest.NewRecorder()

		NewOptionsHandler(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
