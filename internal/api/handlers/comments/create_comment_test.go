package comments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Scribe/internal/api/middleware"
	"Scribe/internal/core/comments"
	"Scribe/internal/core/posts"
)

// mockCommentService implements comments.Service for testing
type mockCommentService struct {
	addCommentFunc func(ctx context.Context, req comments.AddCommentRequest) (*comments.Comment, error)
	listByPostFunc func(ctx context.Context, postID int64) ([]*comments.Comment, error)
}

func (m *mockCommentService) AddComment(ctx context.Context, req comments.AddCommentRequest) (*comments.Comment, error) {
	if m.addCommentFunc != nil {
		return m.addCommentFunc(ctx, req)
	}
	return nil, nil
}

func (m *mockCommentService) ListByPost(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	if m.listByPostFunc != nil {
		return m.listByPostFunc(ctx, postID)
	}
	return nil, nil
}

// commentRequest builds an authenticated comment request routed at post 5
func commentRequest(userID int64, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/posts/5/comment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("postID", "5")
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = middleware.WithTestUserID(ctx, userID)
	return req.WithContext(ctx)
}

func TestHandleCreate_AttributesRequesterAsAuthor(t *testing.T) {
	var gotReq comments.AddCommentRequest
	service := &mockCommentService{
		addCommentFunc: func(ctx context.Context, req comments.AddCommentRequest) (*comments.Comment, error) {
			gotReq = req
			return &comments.Comment{ID: 1, PostID: req.PostID, AuthorID: req.RequesterID, Text: req.Text}, nil
		},
	}
	handler := NewCreateCommentHandler(service)

	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, commentRequest(9, `{"text":"nice post"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(5), gotReq.PostID)
	assert.Equal(t, int64(9), gotReq.RequesterID)

	var created comments.Comment
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "nice post", created.Text)
}

func TestHandleCreate_EmptyTextEchoesInput(t *testing.T) {
	service := &mockCommentService{
		addCommentFunc: func(ctx context.Context, req comments.AddCommentRequest) (*comments.Comment, error) {
			return nil, comments.ErrTextEmpty
		},
	}
	handler := NewCreateCommentHandler(service)

	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, commentRequest(9, `{"text":"   "}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "InvalidRequest", resp.Error)
	assert.Equal(t, "   ", resp.Input)
}

func TestHandleCreate_UnknownPostReturns404(t *testing.T) {
	service := &mockCommentService{
		addCommentFunc: func(ctx context.Context, req comments.AddCommentRequest) (*comments.Comment, error) {
			return nil, posts.ErrPostNotFound
		},
	}
	handler := NewCreateCommentHandler(service)

	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, commentRequest(9, `{"text":"hello"}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
