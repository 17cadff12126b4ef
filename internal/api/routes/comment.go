package routes

import (
	"github.com/go-chi/chi/v5"

	commentHandlers "Scribe/internal/api/handlers/comments"
	"Scribe/internal/api/middleware"
	"Scribe/internal/core/comments"
)

// RegisterCommentRoutes registers the comment creation endpoint
func RegisterCommentRoutes(r chi.Router, service comments.Service, auth *middleware.SessionAuth) {
	createHandler := commentHandlers.NewCreateCommentHandler(service)

	r.With(auth.RequireAuth).Post("/posts/{postID}/comment", createHandler.HandleCreate)
}
