package feeds

import (
	"context"
	"time"

	"Scribe/internal/core/posts"
)

// Service defines the business logic interface for the feed builder
type Service interface {
	// BuildIndex returns the global feed page. Responses may be served from
	// the read-through cache; staleness up to the cache TTL is accepted.
	BuildIndex(ctx context.Context, pageNumber int) (*IndexFeed, error)

	// BuildGroupFeed returns the feed for the group with the given slug
	BuildGroupFeed(ctx context.Context, slug string, pageNumber int) (*GroupFeed, error)

	// BuildProfileFeed returns the feed for the author with the given
	// username. viewerID is nil for anonymous viewers.
	BuildProfileFeed(ctx context.Context, username string, pageNumber int, viewerID *int64) (*ProfileFeed, error)

	// BuildFollowingFeed returns posts by authors the requester follows.
	// An empty page is a valid result, not an error.
	BuildFollowingFeed(ctx context.Context, requesterID int64, pageNumber int) (*FollowingFeed, error)
}

// Repository defines the feed queries. Each returns a materialized sequence
// ordered by created_at descending with ID descending as tie-break, so
// pagination is deterministic across calls.
type Repository interface {
	// ListAll retrieves every post
	ListAll(ctx context.Context) ([]*posts.Post, error)

	// ListByGroup retrieves posts filed under a group
	ListByGroup(ctx context.Context, groupID int64) ([]*posts.Post, error)

	// ListByAuthor retrieves posts by a single author
	ListByAuthor(ctx context.Context, authorID int64) ([]*posts.Post, error)

	// ListFollowing retrieves posts whose author is followed by the user
	ListFollowing(ctx context.Context, userID int64) ([]*posts.Post, error)
}

// Cache is the explicit get/set cache wrapping the index feed path.
// Entries expire by TTL only; the feed builder never invalidates them.
type Cache interface {
	// Get returns the cached value for key, or ok=false on a miss.
	// Cache failures are reported as misses by implementations that prefer
	// availability over freshness; Get never blocks the request path on them.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key for the given TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}
