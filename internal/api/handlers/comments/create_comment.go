package comments

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Scribe/internal/api/handlers"
	"Scribe/internal/api/middleware"
	"Scribe/internal/core/comments"
)

// CreateCommentHandler handles comment creation requests
type CreateCommentHandler struct {
	service comments.Service
}

// NewCreateCommentHandler creates a new handler for creating comments
func NewCreateCommentHandler(service comments.Service) *CreateCommentHandler {
	return &CreateCommentHandler{service: service}
}

// CreateCommentInput is the request body for adding a comment
type CreateCommentInput struct {
	Text string `json:"text"`
}

// HandleCreate appends a comment to a post, attributing the logged-in user
// as the author.
// POST /posts/{postID}/comment
//
// Request body: { "text": "..." }
func (h *CreateCommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Limit request body size, 100KB is plenty for comments
	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

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

	var input CreateCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	created, err := h.service.AddComment(r.Context(), comments.AddCommentRequest{
		Text:        input.Text,
		PostID:      postID,
		RequesterID: userID,
	})
	if err != nil {
		handleServiceError(w, err, input.Text)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, created)
}
