package feed

import (
	"Scribe/internal/core/feeds"
)

// Handler serves the four paginated feed views
type Handler struct {
	service feeds.Service
}

// NewHandler creates a new feed handler
func NewHandler(service feeds.Service) *Handler {
	return &Handler{service: service}
}
