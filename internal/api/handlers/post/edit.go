package post

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Scribe/internal/api/handlers"
	"Scribe/internal/api/middleware"
	"Scribe/internal/core/posts"
)

// EditHandler handles post edit requests
type EditHandler struct {
	service posts.Service
}

// NewEditHandler creates a new handler for editing posts
func NewEditHandler(service posts.Service) *EditHandler {
	return &EditHandler{service: service}
}

// HandleEdit edits an existing post in place.
// POST /posts/{postID}/edit
//
// Only the author may edit; anyone else is sent back to the post's detail
// view with a 303 instead of an error. The post keeps its ID, author and
// creation time.
func (h *EditHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := middleware.GetUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthenticationRequired", "Authentication required")
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "NotFound", "Post not found")
		return
	}

	in, err := parsePostInput(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	updated, err := h.service.UpdatePost(r.Context(), posts.UpdatePostRequest{
		Text:        in.Text,
		ImageData:   in.ImageData,
		ImageName:   in.ImageName,
		GroupID:     in.GroupID,
		PostID:      postID,
		RequesterID: userID,
	})
	if errors.Is(err, posts.ErrNotAuthor) {
		http.Redirect(w, r, fmt.Sprintf("/posts/%d", postID), http.StatusSeeOther)
		return
	}
	if err != nil {
		handleServiceError(w, err, in.Text)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, updated)
}
