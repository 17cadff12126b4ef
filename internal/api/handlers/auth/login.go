package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"

	"Scribe/internal/api/handlers"
	"Scribe/internal/api/middleware"
	"Scribe/internal/core/users"
)

// UserDirectory resolves a username to a user account, creating the account
// on first login. Credential verification happens upstream; these endpoints
// only establish the session.
type UserDirectory interface {
	Upsert(ctx context.Context, username string) (*users.User, error)
}

// LoginHandler establishes a login session
type LoginHandler struct {
	directory UserDirectory
	sessions  *middleware.SessionAuth
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(directory UserDirectory, sessions *middleware.SessionAuth) *LoginHandler {
	return &LoginHandler{
		directory: directory,
		sessions:  sessions,
	}
}

// LoginInput is the request body for logging in
type LoginInput struct {
	Username string `json:"username"`
}

// HandleLogin signs the user in and sets the session cookie.
// POST /auth/login?next=/follow
//
// When a safe `next` parameter is present the response is a redirect to it,
// completing the round trip started by RequireAuth. Otherwise the logged-in
// user is returned as JSON.
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 4*1024)

	var input LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Username is required")
		return
	}

	user, err := h.directory.Upsert(r.Context(), username)
	if err != nil {
		log.Printf("Login failed for %q: %v", username, err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
		return
	}

	if err := h.sessions.SignIn(w, r, user.ID); err != nil {
		log.Printf("Failed to save session for %q: %v", username, err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
		return
	}

	if next := safeNextPath(r.URL.Query().Get("next")); next != "" {
		http.Redirect(w, r, next, http.StatusSeeOther)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, user)
}

// safeNextPath allows only local absolute paths as redirect targets, so the
// login endpoint cannot be used to bounce users to other sites
func safeNextPath(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	if u, err := url.Parse(next); err != nil || u.Host != "" || u.Scheme != "" {
		return ""
	}
	return next
}
