package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/services"
)

// LoginAuthorizer defines the interface that the login service must implement.
type LoginAuthorizer interface {
	Login(ctx context.Context, email, password string) (*models.UserDB, string, error)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Success message
	// example: Login successful
	Message string `json:"message"`

	Payload models.UserDB `json:"payload"`

	// Signed bearer token
	AccessToken string `json:"accessToken"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log in
// @Description Authenticates by email and password and returns the user with a bearer token. Unverified accounts are rejected even with correct credentials.
// @Tags users
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Authenticated"
// @Failure 400 {object} handlers.MessageResponse "Validation failure"
// @Failure 401 {object} handlers.MessageResponse "Bad credentials or unverified account"
// @Router /users/login [post]
func NewLoginHandler(svc LoginAuthorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid request body"})
			return
		}

		user, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeJSON(w, http.StatusUnauthorized, MessageResponse{
					Message: "Email or password incorrect!",
				})
			case errors.Is(err, services.ErrUserNotVerified):
				writeJSON(w, http.StatusUnauthorized, MessageResponse{
					Message: "Unauthorized - Please verify your account",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, MessageResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Message:     "Login successful",
			Payload:     *user,
			AccessToken: token,
		})
	}
}
