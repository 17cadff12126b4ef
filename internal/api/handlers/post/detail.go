package post

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Scribe/internal/api/handlers"
	"Scribe/internal/core/comments"
	"Scribe/internal/core/posts"
)

// DetailHandler serves the single-post detail view
type DetailHandler struct {
	postService    posts.Service
	commentService comments.Service
}

// NewDetailHandler creates a new handler for the post detail view
func NewDetailHandler(postService posts.Service, commentService comments.Service) *DetailHandler {
	return &DetailHandler{
		postService:    postService,
		commentService: commentService,
	}
}

// detailOutput is the detail page payload: the post, the author's total post
// count and the post's comments oldest first
type detailOutput struct {
	Post            *posts.Post         `json:"post"`
	AuthorPostCount int                 `json:"authorPostCount"`
	Comments        []*comments.Comment `json:"comments"`
}

// HandleDetail serves a single post with its comments
// GET /posts/{postID}
// Public
func (h *DetailHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "NotFound", "Post not found")
		return
	}

	detail, err := h.postService.GetPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err, "")
		return
	}

	postComments, err := h.commentService.ListByPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err, "")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, detailOutput{
		Post:            detail.Post,
		AuthorPostCount: detail.AuthorPostCount,
		Comments:        postComments,
	})
}
