package middleware

import (
	"context"
	"log"
	"net/http"
	"net/url"

	"github.com/gorilla/sessions"
)

// Context keys for storing user information
type contextKey string

const UserIDKey contextKey = "user_id"

// SessionName is the cookie name holding the login session
const SessionName = "scribe_session"

const loginPath = "/auth/login"

// SessionAuth gates protected routes on a cookie session.
// Authentication mechanics (password checks, registration) live with an
// external collaborator; this middleware only reads and writes the session.
type SessionAuth struct {
	store sessions.Store
}

// NewSessionAuth creates a new session auth middleware backed by the given store
func NewSessionAuth(store sessions.Store) *SessionAuth {
	return &SessionAuth{store: store}
}

// RequireAuth ensures the request carries a valid login session.
// Anonymous requests are redirected to the login page with the original URL
// preserved in the `next` query parameter. Authenticated requests get the
// user ID injected into context.
func (m *SessionAuth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := m.sessionUserID(r)
		if !ok {
			target := loginPath + "?next=" + url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, target, http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth injects the user ID into context when a valid session is
// present, and passes the request through unchanged otherwise. Used by public
// pages that render differently for logged-in viewers.
func (m *SessionAuth) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := m.sessionUserID(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SignIn writes the user ID into a fresh session cookie
func (m *SessionAuth) SignIn(w http.ResponseWriter, r *http.Request, userID int64) error {
	session, err := m.store.Get(r, SessionName)
	if err != nil {
		// A corrupt cookie yields a new empty session; overwrite it
		log.Printf("Discarding undecodable session: %v", err)
	}
	session.Values["user_id"] = userID
	return session.Save(r, w)
}

// SignOut expires the session cookie
func (m *SessionAuth) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, err := m.store.Get(r, SessionName)
	if err != nil {
		log.Printf("Discarding undecodable session: %v", err)
	}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// sessionUserID reads the user ID out of the session cookie
func (m *SessionAuth) sessionUserID(r *http.Request) (int64, bool) {
	session, err := m.store.Get(r, SessionName)
	if err != nil {
		return 0, false
	}
	userID, ok := session.Values["user_id"].(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}

// GetUserID extracts the authenticated user's ID from the request context.
// Returns ok=false for anonymous requests.
func GetUserID(r *http.Request) (int64, bool) {
	return UserIDFromContext(r.Context())
}

// UserIDFromContext extracts the authenticated user's ID from a context.
// Used by service layers for defense-in-depth validation.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}

// WithTestUserID sets the user ID in the context for testing purposes.
// This function should ONLY be used in tests to mock authenticated users.
func WithTestUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}
