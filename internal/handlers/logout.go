package handlers

import "net/http"

// NewLogoutHandler returns an HTTP handler for logout. Tokens are
// stateless, so the server holds nothing to invalidate; the client
// discards its copy.
// @Summary Log out
// @Tags users
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Logged out"
// @Router /users/logout [post]
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logout successful"})
	}
}
