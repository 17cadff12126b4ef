package feed

import (
	"net/http"

	"Scribe/internal/api/handlers"
	"Scribe/internal/api/middleware"
	"Scribe/internal/core/pagination"
)

// HandleFollowing serves posts by authors the logged-in user follows.
// GET /follow?page=2
// Requires authentication; an empty page is a normal response for users who
// follow nobody.
func (h *Handler) HandleFollowing(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthenticationRequired",
			"User must be logged in to view the following feed")
		return
	}

	page := pagination.ParsePageNumber(r.URL.Query().Get("page"))

	result, err := h.service.BuildFollowingFeed(r.Context(), userID, page)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}
