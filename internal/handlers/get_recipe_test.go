package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetRecipeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregate := &models.RecipeAggregate{
		RecipeDB: models.RecipeDB{
			ID:    7,
			Email: "john@example.com",
			Title: "Chocolate Cake",
		},
		Ingredients: []models.IngredientDB{
			{ID: 1, RecipeID: 7, Text: "flour", Amount: 2, Unit: "cup"},
		},
		Instructions: []models.InstructionDB{
			{ID: 1, RecipeID: 7, Text: "mix everything"},
		},
		DietsSelected:      []string{"Vegetarian"},
		CategoriesSelected: []string{"Dessert"},
		Images:             []string{"123_cake.jpg"},
	}

	tests := []struct {
		name         string
		query        string
		mockSetup    func(m *MockRecipeGetter)
		expectedCode int
	}{
		{
			name:  "success",
			query: "recipeId=7",
			mockSetup: func(m *MockRecipeGetter) {
				m.EXPECT().Get(gomock.Any(), int64(7)).Return(aggregate, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "not found",
			query: "recipeId=99",
			mockSetup: func(m *MockRecipeGetter) {
				m.EXPECT().Get(gomock.Any(), int64(99)).Return(nil, services.ErrRecipeNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "bad recipe id",
			query:        "recipeId=abc",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing recipe id",
			query:        "",
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRecipeGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodGet, "/recipes/recipe?"+tt.query, nil)
			rec := httptest.NewRecorder()

			NewGetRecipeHandler(mockSvc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedCode == http.StatusOK {
				var resp RecipeResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, aggregate.Title, resp.Payload.Title)
				assert.Len(t, resp.Payload.Ingredients, 1)
				assert.Equal(t, []string{"123_cake.jpg"}, resp.Payload.Images)
			}
		})
	}
}
