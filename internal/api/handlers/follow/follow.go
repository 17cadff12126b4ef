package follow

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Scribe/internal/api/middleware"
	"Scribe/internal/core/follows"
)

// Handler handles follow and unfollow requests
type Handler struct {
	service follows.Service
}

// NewHandler creates a new follow handler
func NewHandler(service follows.Service) *Handler {
	return &Handler{service: service}
}

// HandleFollow subscribes the logged-in user to an author's posts.
// POST /profile/{username}/follow
//
// Following yourself or someone you already follow changes nothing; both
// cases still redirect back to the profile.
func (h *Handler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.service.Follow)
}

// HandleUnfollow removes the logged-in user's subscription to an author.
// POST /profile/{username}/unfollow
//
// Unfollowing someone you don't follow changes nothing.
func (h *Handler) HandleUnfollow(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.service.Unfollow)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, op followOp) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := middleware.GetUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthenticationRequired", "Authentication required")
		return
	}

	username := chi.URLParam(r, "username")

	if err := op(r.Context(), userID, username); err != nil {
		handleServiceError(w, err)
		return
	}

	// Mirror the profile page flow: land back on the profile just acted on
	http.Redirect(w, r, "/profile/"+username, http.StatusSeeOther)
}
