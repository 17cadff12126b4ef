package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth() *SessionAuth {
	return NewSessionAuth(sessions.NewCookieStore([]byte("test-secret")))
}

// loginCookies signs in the given user and returns the resulting cookies
func loginCookies(t *testing.T, auth *SessionAuth, userID int64) []*http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	require.NoError(t, auth.SignIn(rec, req, userID))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func TestRequireAuth_RedirectsAnonymousToLogin(t *testing.T) {
	auth := newTestAuth()

	handler := auth.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("protected handler should not run for anonymous requests")
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/follow?page=2", nil)
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login?next=%2Ffollow%3Fpage%3D2", rec.Header().Get("Location"))
}

func TestRequireAuth_PassesAuthenticatedRequestThrough(t *testing.T) {
	auth := newTestAuth()
	cookies := loginCookies(t, auth, 42)

	var gotUserID int64
	handler := auth.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r)
		require.True(t, ok)
		gotUserID = userID
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/follow", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotUserID)
}

func TestOptionalAuth_AnonymousRequestHasNoUser(t *testing.T) {
	auth := newTestAuth()

	handler := auth.OptionalAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := GetUserID(r)
		assert.False(t, ok)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile/leo", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptionalAuth_InjectsUserWhenSessionPresent(t *testing.T) {
	auth := newTestAuth()
	cookies := loginCookies(t, auth, 7)

	handler := auth.OptionalAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r)
		assert.True(t, ok)
		assert.Equal(t, int64(7), userID)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profile/leo", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSignOut_ExpiresSession(t *testing.T) {
	auth := newTestAuth()
	cookies := loginCookies(t, auth, 42)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	require.NoError(t, auth.SignOut(rec, req))

	expired := rec.Result().Cookies()
	require.NotEmpty(t, expired)
	assert.Equal(t, -1, expired[0].MaxAge)
}
