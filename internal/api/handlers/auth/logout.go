package auth

import (
	"log"
	"net/http"

	"Scribe/internal/api/handlers"
	"Scribe/internal/api/middleware"
)

// LogoutHandler ends the login session
type LogoutHandler struct {
	sessions *middleware.SessionAuth
}

// NewLogoutHandler creates a new logout handler
func NewLogoutHandler(sessions *middleware.SessionAuth) *LogoutHandler {
	return &LogoutHandler{sessions: sessions}
}

// HandleLogout expires the session cookie.
// POST /auth/logout
// Logging out without a session is fine; the result is the same.
func (h *LogoutHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.sessions.SignOut(w, r); err != nil {
		log.Printf("Failed to expire session: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
