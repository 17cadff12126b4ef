package routes

import (
	"github.com/go-chi/chi/v5"

	"Scribe/internal/api/handlers/post"
	"Scribe/internal/api/middleware"
	"Scribe/internal/core/comments"
	"Scribe/internal/core/posts"
)

// RegisterPostRoutes registers post creation, editing and the detail view
func RegisterPostRoutes(r chi.Router, postService posts.Service, commentService comments.Service, auth *middleware.SessionAuth) {
	createHandler := post.NewCreateHandler(postService)
	editHandler := post.NewEditHandler(postService)
	detailHandler := post.NewDetailHandler(postService, commentService)

	// Detail view is public
	r.Get("/posts/{postID}", detailHandler.HandleDetail)

	// Writes require authentication
	r.With(auth.RequireAuth).Post("/posts", createHandler.HandleCreate)
	r.With(auth.RequireAuth).Post("/posts/{postID}/edit", editHandler.HandleEdit)
}
