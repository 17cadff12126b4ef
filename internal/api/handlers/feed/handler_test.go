package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Scribe/internal/api/middleware"
	"Scribe/internal/core/feeds"
	"Scribe/internal/core/groups"
	"Scribe/internal/core/pagination"
	"Scribe/internal/core/posts"
)

// mockFeedService implements feeds.Service for testing
type mockFeedService struct {
	buildIndexFunc     func(ctx context.Context, pageNumber int) (*feeds.IndexFeed, error)
	buildGroupFunc     func(ctx context.Context, slug string, pageNumber int) (*feeds.GroupFeed, error)
	buildProfileFunc   func(ctx context.Context, username string, pageNumber int, viewerID *int64) (*feeds.ProfileFeed, error)
	buildFollowingFunc func(ctx context.Context, requesterID int64, pageNumber int) (*feeds.FollowingFeed, error)
}

func (m *mockFeedService) BuildIndex(ctx context.Context, pageNumber int) (*feeds.IndexFeed, error) {
	if m.buildIndexFunc != nil {
		return m.buildIndexFunc(ctx, pageNumber)
	}
	return &feeds.IndexFeed{}, nil
}

func (m *mockFeedService) BuildGroupFeed(ctx context.Context, slug string, pageNumber int) (*feeds.GroupFeed, error) {
	if m.buildGroupFunc != nil {
		return m.buildGroupFunc(ctx, slug, pageNumber)
	}
	return &feeds.GroupFeed{}, nil
}

func (m *mockFeedService) BuildProfileFeed(ctx context.Context, username string, pageNumber int, viewerID *int64) (*feeds.ProfileFeed, error) {
	if m.buildProfileFunc != nil {
		return m.buildProfileFunc(ctx, username, pageNumber, viewerID)
	}
	return &feeds.ProfileFeed{}, nil
}

func (m *mockFeedService) BuildFollowingFeed(ctx context.Context, requesterID int64, pageNumber int) (*feeds.FollowingFeed, error) {
	if m.buildFollowingFunc != nil {
		return m.buildFollowingFunc(ctx, requesterID, pageNumber)
	}
	return &feeds.FollowingFeed{}, nil
}

func TestHandleIndex_ParsesPageAndReturnsFeed(t *testing.T) {
	var gotPage int
	service := &mockFeedService{
		buildIndexFunc: func(ctx context.Context, pageNumber int) (*feeds.IndexFeed, error) {
			gotPage = pageNumber
			return &feeds.IndexFeed{
				Page: pagination.Paginate([]*posts.Post{{ID: 2}, {ID: 1}}, pageNumber, 10),
			}, nil
		},
	}
	handler := NewHandler(service)

	rec := httptest.NewRecorder()
	handler.HandleIndex(rec, httptest.NewRequest(http.MethodGet, "/?page=1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, gotPage)

	var resp feeds.IndexFeed
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Page.Items, 2)
	assert.Equal(t, int64(2), resp.Page.Items[0].ID)
}

func TestHandleIndex_NonNumericPageDefaultsToFirst(t *testing.T) {
	var gotPage int
	service := &mockFeedService{
		buildIndexFunc: func(ctx context.Context, pageNumber int) (*feeds.IndexFeed, error) {
			gotPage = pageNumber
			return &feeds.IndexFeed{}, nil
		},
	}
	handler := NewHandler(service)

	rec := httptest.NewRecorder()
	handler.HandleIndex(rec, httptest.NewRequest(http.MethodGet, "/?page=banana", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, gotPage)
}

func TestHandleGroup_UnknownSlugReturns404(t *testing.T) {
	service := &mockFeedService{
		buildGroupFunc: func(ctx context.Context, slug string, pageNumber int) (*feeds.GroupFeed, error) {
			return nil, groups.ErrGroupNotFound
		},
	}
	handler := NewHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/group/nope", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("slug", "nope")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	handler.HandleGroup(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleProfile_PassesViewerWhenLoggedIn(t *testing.T) {
	var gotViewer *int64
	service := &mockFeedService{
		buildProfileFunc: func(ctx context.Context, username string, pageNumber int, viewerID *int64) (*feeds.ProfileFeed, error) {
			gotViewer = viewerID
			return &feeds.ProfileFeed{}, nil
		},
	}
	handler := NewHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/profile/leo", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("username", "leo")
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = middleware.WithTestUserID(ctx, 7)
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	handler.HandleProfile(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotViewer)
	assert.Equal(t, int64(7), *gotViewer)
}

func TestHandleProfile_AnonymousViewerIsNil(t *testing.T) {
	var called bool
	service := &mockFeedService{
		buildProfileFunc: func(ctx context.Context, username string, pageNumber int, viewerID *int64) (*feeds.ProfileFeed, error) {
			called = true
			assert.Nil(t, viewerID)
			return &feeds.ProfileFeed{}, nil
		},
	}
	handler := NewHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/profile/leo", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("username", "leo")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	handler.HandleProfile(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestHandleFollowing_RequiresUser(t *testing.T) {
	handler := NewHandler(&mockFeedService{})

	rec := httptest.NewRecorder()
	handler.HandleFollowing(rec, httptest.NewRequest(http.MethodGet, "/follow", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleFollowing_EmptyFeedIsOK(t *testing.T) {
	service := &mockFeedService{
		buildFollowingFunc: func(ctx context.Context, requesterID int64, pageNumber int) (*feeds.FollowingFeed, error) {
			return &feeds.FollowingFeed{
				Page: pagination.Paginate([]*posts.Post{}, pageNumber, 10),
			}, nil
		},
	}
	handler := NewHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/follow", nil)
	req = req.WithContext(middleware.WithTestUserID(req.Context(), 3))

	rec := httptest.NewRecorder()
	handler.HandleFollowing(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp feeds.FollowingFeed
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(t, resp.Page.Items)
	assert.Equal(t, 1, resp.Page.TotalPages)
}
