package feed

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Scribe/internal/api/handlers"
	"Scribe/internal/core/pagination"
)

// HandleGroup serves the feed of posts filed under a group
// GET /group/{slug}?page=2
// Public
func (h *Handler) HandleGroup(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page := pagination.ParsePageNumber(r.URL.Query().Get("page"))

	result, err := h.service.BuildGroupFeed(r.Context(), slug, page)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}
