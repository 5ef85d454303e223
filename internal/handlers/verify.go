package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/services"
)

// Verifier defines the interface that the verification service must implement.
type Verifier interface {
	Verify(ctx context.Context, email, code string) error
}

// VerifyRequest represents the JSON body for account verification
// swagger:model VerifyRequest
type VerifyRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Six-digit code from the verification email
	// required: true
	// example: 042137
	Code string `json:"code"`
}

// NewVerifyHandler returns an HTTP handler for account verification.
// @Summary Verify an account
// @Description Compares the submitted code with the stored one and marks the account verified on match.
// @Tags users
// @Accept json
// @Produce json
// @Param verifyRequest body handlers.VerifyRequest true "Verify request"
// @Success 200 {object} handlers.MessageResponse "Account verified"
// @Failure 400 {object} handlers.MessageResponse "Codes do not match"
// @Router /users/verify [post]
func NewVerifyHandler(svc Verifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid request body"})
			return
		}

		if err := svc.Verify(r.Context(), req.Email, req.Code); err != nil {
			switch {
			case errors.Is(err, services.ErrVerificationFailed):
				writeJSON(w, http.StatusBadRequest, MessageResponse{
					Message: "Verification failed - codes do not match",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, MessageResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Account verified"})
	}
}
