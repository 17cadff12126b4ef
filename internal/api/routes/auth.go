package routes

import (
	"github.com/go-chi/chi/v5"

	authHandlers "Scribe/internal/api/handlers/auth"
	"Scribe/internal/api/middleware"
)

// RegisterAuthRoutes registers the thin session endpoints
func RegisterAuthRoutes(r chi.Router, directory authHandlers.UserDirectory, auth *middleware.SessionAuth) {
	loginHandler := authHandlers.NewLoginHandler(directory, auth)
	logoutHandler := authHandlers.NewLogoutHandler(auth)

	r.Post("/auth/login", loginHandler.HandleLogin)
	r.Post("/auth/logout", logoutHandler.HandleLogout)
}
