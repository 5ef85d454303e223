package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/services"
	"github.com/recipeshare/server/internal/validation"
)

// Registerer defines the interface that the signup service must implement.
type Registerer interface {
	Register(ctx context.Context, email, username, password string) (uuid.UUID, error)
}

// SignupRequest represents the JSON body for user signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Username
	// required: true
	// example: johndoe
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`

	// Confirm password, checked when present
	// example: secret123
	ConfirmPassword string `json:"confirmPassword"`
}

// SignupPayload carries the created user's identity
// swagger:model SignupPayload
type SignupPayload struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
}

// SignupResponse represents a successful signup response
// swagger:model SignupResponse
type SignupResponse struct {
	// Success message
	// example: Signup Successful
	Message string `json:"message"`

	Payload SignupPayload `json:"payload"`
}

// MessageResponse represents an error response carrying a message
// swagger:model MessageResponse
type MessageResponse struct {
	// Message
	// example: User already exists. Try different email address.
	Message string `json:"message"`
}

// NewSignupHandler returns an HTTP handler for user signup.
// @Summary Sign up a new user
// @Description Validates the payload, creates an unverified account and emails a verification code. Duplicate emails are rejected with a distinct message.
// @Tags users
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup request"
// @Success 200 {object} handlers.SignupResponse "User created"
// @Failure 400 {object} handlers.MessageResponse "Validation failure"
// @Failure 401 {object} handlers.MessageResponse "Duplicate email"
// @Router /users/signup [post]
func NewSignupHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid request body"})
			return
		}

		if err := validation.Email(req.Email); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: err.Error()})
			return
		}
		if err := validation.Username(req.Username); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: err.Error()})
			return
		}
		if err := validation.Password(req.Password); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: err.Error()})
			return
		}
		if req.ConfirmPassword != "" {
			if err := validation.ConfirmPassword(req.ConfirmPassword, req.Password); err != nil {
				writeJSON(w, http.StatusBadRequest, MessageResponse{Message: err.Error()})
				return
			}
		}

		userID, err := svc.Register(r.Context(), req.Email, req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeJSON(w, http.StatusUnauthorized, MessageResponse{
					Message: "User already exists. Try different email address.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, MessageResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		writeJSON(w, http.StatusOK, SignupResponse{
			Message: "Signup Successful",
			Payload: SignupPayload{UserID: userID, Email: req.Email},
		})
	}
}
