package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/validation"
)

// DetailsUpdater defines the interface that the details-update service
// must implement.
type DetailsUpdater interface {
	UpdateDetails(ctx context.Context, email, username, password string) error
}

// UpdateDetailsRequest represents the JSON body for a details update
// swagger:model UpdateDetailsRequest
type UpdateDetailsRequest struct {
	// Email identifying the account
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// New username
	// required: true
	// example: johndoe
	Username string `json:"username"`

	// New password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// UpdateDetailsPayload carries the updated username
// swagger:model UpdateDetailsPayload
type UpdateDetailsPayload struct {
	Username string `json:"username"`
}

// UpdateDetailsResponse represents a successful details update
// swagger:model UpdateDetailsResponse
type UpdateDetailsResponse struct {
	// Success message
	// example: Details updated
	Message string `json:"message"`

	Payload UpdateDetailsPayload `json:"payload"`
}

// ErrResponse represents a storage error surfaced to the client
// swagger:model ErrResponse
type ErrResponse struct {
	// Error message
	// example: failed to update details
	Err string `json:"err"`
}

// NewUpdateDetailsHandler returns an HTTP handler for updating account
// details.
// @Summary Update account details
// @Description Overwrites the username and password for the account identified by email.
// @Tags users
// @Accept json
// @Produce json
// @Param updateDetailsRequest body handlers.UpdateDetailsRequest true "Update details request"
// @Success 200 {object} handlers.UpdateDetailsResponse "Details updated"
// @Failure 400 {object} handlers.MessageResponse "Validation failure"
// @Failure 500 {object} handlers.ErrResponse "Storage failure"
// @Security BearerAuth
// @Router /users/update-details [put]
func NewUpdateDetailsHandler(svc DetailsUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateDetailsRequest

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

		if err := svc.UpdateDetails(r.Context(), req.Email, req.Username, req.Password); err != nil {
			logger.Log.Errorw("failed to update details", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrResponse{Err: "failed to update details"})
			return
		}

		writeJSON(w, http.StatusOK, UpdateDetailsResponse{
			Message: "Details updated",
			Payload: UpdateDetailsPayload{Username: req.Username},
		})
	}
}
