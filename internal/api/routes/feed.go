package routes

import (
	"github.com/go-chi/chi/v5"

	"Scribe/internal/api/handlers/feed"
	"Scribe/internal/api/middleware"
	"Scribe/internal/core/feeds"
)

// RegisterFeedRoutes registers the four feed views on the router
func RegisterFeedRoutes(r chi.Router, service feeds.Service, auth *middleware.SessionAuth) {
	h := feed.NewHandler(service)

	// Public feeds
	r.Get("/", h.HandleIndex)
	r.Get("/group/{slug}", h.HandleGroup)

	// Profile is public but the follow flag needs the viewer when logged in
	r.With(auth.OptionalAuth).Get("/profile/{username}", h.HandleProfile)

	// Following feed is personal and requires a session
	r.With(auth.RequireAuth).Get("/follow", h.HandleFollowing)
}
