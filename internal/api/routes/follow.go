package routes

import (
	"github.com/go-chi/chi/v5"

	"Scribe/internal/api/handlers/follow"
	"Scribe/internal/api/middleware"
	"Scribe/internal/core/follows"
)

// RegisterFollowRoutes registers follow and unfollow endpoints
func RegisterFollowRoutes(r chi.Router, service follows.Service, auth *middleware.SessionAuth) {
	h := follow.NewHandler(service)

	r.With(auth.RequireAuth).Post("/profile/{username}/follow", h.HandleFollow)
	r.With(auth.RequireAuth).Post("/profile/{username}/unfollow", h.HandleUnfollow)
}
