package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/recipeshare/server/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSignupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name            string
		body            map[string]string
		rawBody         string
		mockSetup       func(m *MockRegisterer)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "success",
			body: map[string]string{
				"email":    "john@example.com",
				"username": "johndoe",
				"password": "secret123",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "johndoe", "secret123").
					Return(userID, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Signup Successful",
		},
		{
			name: "duplicate email",
			body: map[string]string{
				"email":    "alice@example.com",
				"username": "alicedoe",
				"password": "secret123",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice@example.com", "alicedoe", "secret123").
					Return(uuid.Nil, services.ErrUserAlreadyExists)
			},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "User already exists. Try different email address.",
		},
		{
			name: "password too short",
			body: map[string]string{
				"email":    "bob@example.com",
				"username": "bobdoe",
				"password": "12345",
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Password length must be at least six chars",
		},
		{
			name: "password without digits",
			body: map[string]string{
				"email":    "bob@example.com",
				"username": "bobdoe",
				"password": "abcdef",
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid password. Must contain numbers and letters",
		},
		{
			name: "invalid email",
			body: map[string]string{
				"email":    "not-an-email",
				"username": "bobdoe",
				"password": "secret123",
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid Email",
		},
		{
			name: "internal server error",
			body: map[string]string{
				"email":    "carol@example.com",
				"username": "caroldoe",
				"password": "secret123",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "carol@example.com", "caroldoe", "secret123").
					Return(uuid.Nil, errors.New("database failure"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
		{
			name:            "invalid json",
			rawBody:         "{not json",
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			var body []byte
			if tt.rawBody != "" {
				body = []byte(tt.rawBody)
			} else {
				body, _ = json.Marshal(tt.body)
			}

			req := httptest.NewRequest(http.MethodPost, "/users/signup", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			NewSignupHandler(mockSvc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMessage, resp["message"])

			if tt.expectedCode == http.StatusOK {
				payload := resp["payload"].(map[string]any)
				assert.Equal(t, userID.String(), payload["userId"])
				assert.Equal(t, tt.body["email"], payload["email"])
			}
		})
	}
}
