package feed

import (
	"net/http"

	"Scribe/internal/api/handlers"
	"Scribe/internal/core/pagination"
)

// HandleIndex serves the global feed of all posts, newest first
// GET /?page=2
// Public; responses may be a few seconds stale due to the index cache
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	page := pagination.ParsePageNumber(r.URL.Query().Get("page"))

	result, err := h.service.BuildIndex(r.Context(), page)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}
