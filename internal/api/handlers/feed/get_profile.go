package feed

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Scribe/internal/api/handlers"
	"Scribe/internal/api/middleware"
	"Scribe/internal/core/pagination"
)

// HandleProfile serves an author's posts plus profile metadata.
// GET /profile/{username}?page=2
// Public; the follow flag reflects the logged-in viewer and is always false
// for anonymous requests.
func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	page := pagination.ParsePageNumber(r.URL.Query().Get("page"))

	var viewerID *int64
	if id, ok := middleware.GetUserID(r); ok {
		viewerID = &id
	}

	result, err := h.service.BuildProfileFeed(r.Context(), username, page, viewerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}
