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

func TestSearchRecipesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ranked := []models.RecipeDB{
		{ID: 1, Title: "Chocolate Cake"},
		{ID: 2, Title: "Best Chocolate"},
	}

	tests := []struct {
		name         string
		query        string
		mockSetup    func(m *MockRecipeSearcher)
		expectedCode int
	}{
		{
			name:  "prefix matches ranked first",
			query: "choc",
			mockSetup: func(m *MockRecipeSearcher) {
				m.EXPECT().Search(gomock.Any(), "choc").Return(ranked, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "storage failure",
			query: "choc",
			mockSetup: func(m *MockRecipeSearcher) {
				m.EXPECT().Search(gomock.Any(), "choc").Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRecipeSearcher(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/recipes/search?q="+tt.query, nil)
			rec := httptest.NewRecorder()

			NewSearchRecipesHandler(mockSvc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedCode == http.StatusOK {
				var resp RecipeSearchResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Len(t, resp.Payload, 2)
				assert.Equal(t, "Chocolate Cake", resp.Payload[0].Title)
				assert.Equal(t, "Best Chocolate", resp.Payload[1].Title)
			}
		})
	}
}
