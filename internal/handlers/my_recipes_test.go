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

func TestMyRecipesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockOwnerRecipeLister(ctrl)
		mockSvc.EXPECT().
			MyRecipes(gomock.Any(), "john@example.com").
			Return([]models.RecipeSummary{
				{RecipeDB: models.RecipeDB{ID: 1, Title: "Chocolate Cake", Email: "john@example.com"}},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/recipes/my-recipes?email=john@example.com", nil)
		rec := httptest.NewRecorder()

		NewMyRecipesHandler(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp RecipeListResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Payload, 1)
		assert.Equal(t, "john@example.com", resp.Payload[0].Email)
	})

	t.Run("missing email", func(t *testing.T) {
		mockSvc := NewMockOwnerRecipeLister(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/recipes/my-recipes", nil)
		rec := httptest.NewRecorder()

		NewMyRecipesHandler(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		mockSvc := NewMockOwnerRecipeLister(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/recipes/my-recipes?email=not-an-email", nil)
		rec := httptest.NewRecorder()

		NewMyRecipesHandler(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockSvc := NewMockOwnerRecipeLister(ctrl)
		mockSvc.EXPECT().
			MyRecipes(gomock.Any(), "john@example.com").
			Return(nil, errors.New("database failure"))

		req := httptest.NewRequest(http.MethodGet, "/recipes/my-recipes?email=john@example.com", nil)
		rec := httptest.NewRecorder()

		NewMyRecipesHandler(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
