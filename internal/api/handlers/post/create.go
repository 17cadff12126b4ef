package post

import (
	"net/http"

	"Scribe/internal/api/handlers"
	"Scribe/internal/api/middleware"
	"Scribe/internal/core/posts"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new handler for creating posts
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate creates a new post authored by the logged-in user.
// POST /posts
//
// Accepts JSON {"text": "...", "groupId": 1} or multipart/form-data with
// text, group_id and an optional image file. The author is always the
// requester; any author supplied by the client is ignored.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := middleware.GetUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthenticationRequired", "Authentication required")
		return
	}

	in, err := parsePostInput(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	created, err := h.service.CreatePost(r.Context(), posts.CreatePostRequest{
		Text:        in.Text,
		ImageData:   in.ImageData,
		ImageName:   in.ImageName,
		GroupID:     in.GroupID,
		RequesterID: userID,
	})
	if err != nil {
		handleServiceError(w, err, in.Text)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, created)
}
