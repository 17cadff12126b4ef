package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"Scribe/internal/core/follows"
	"Scribe/internal/core/groups"
	"Scribe/internal/core/pagination"
	"Scribe/internal/core/posts"
	"Scribe/internal/core/users"
)

// DefaultIndexTTL is how long a cached index page stays fresh. A deleted or
// new post may be missing from the index for up to this long.
const DefaultIndexTTL = 20 * time.Second

// feedService implements the Service interface
type feedService struct {
	repo       Repository
	groupRepo  groups.Repository
	userRepo   users.Repository
	postRepo   posts.Repository
	followRepo follows.Repository
	cache      Cache
	pageSize   int
	indexTTL   time.Duration
	logger     *slog.Logger
}

// NewFeedService creates a new feed builder.
// cache may be nil, in which case the index feed is built on every request.
func NewFeedService(
	repo Repository,
	groupRepo groups.Repository,
	userRepo users.Repository,
	postRepo posts.Repository,
	followRepo follows.Repository,
	cache Cache,
	logger *slog.Logger,
) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &feedService{
		repo:       repo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
		cache:      cache,
		pageSize:   pagination.DefaultPageSize,
		indexTTL:   DefaultIndexTTL,
		logger:     logger,
	}
}

// BuildIndex returns the global feed page, served from cache when fresh
func (s *feedService) BuildIndex(ctx context.Context, pageNumber int) (*IndexFeed, error) {
	key := s.indexCacheKey(pageNumber)

	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, key); ok {
			var feed IndexFeed
			if err := json.Unmarshal(raw, &feed); err == nil {
				return &feed, nil
			}
			// Undecodable entry: fall through and rebuild
			s.logger.Warn("discarding corrupt index cache entry", "key", key)
		}
	}

	postList, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	feed := &IndexFeed{Page: pagination.Paginate(postList, pageNumber, s.pageSize)}

	if s.cache != nil {
		if raw, err := json.Marshal(feed); err == nil {
			s.cache.Set(ctx, key, raw, s.indexTTL)
		}
	}

	return feed, nil
}

// BuildGroupFeed returns the feed for a single group
func (s *feedService) BuildGroupFeed(ctx context.Context, slug string, pageNumber int) (*GroupFeed, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	postList, err := s.repo.ListByGroup(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group posts: %w", err)
	}

	return &GroupFeed{
		Group: group,
		Page:  pagination.Paginate(postList, pageNumber, s.pageSize),
	}, nil
}

// BuildProfileFeed returns the feed for a single author along with the
// author's post count and whether the viewer follows them
func (s *feedService) BuildProfileFeed(ctx context.Context, username string, pageNumber int, viewerID *int64) (*ProfileFeed, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	postList, err := s.repo.ListByAuthor(ctx, author.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list author posts: %w", err)
	}

	count, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count author posts: %w", err)
	}

	following := false
	if viewerID != nil {
		following, err = s.followRepo.Exists(ctx, *viewerID, author.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check follow: %w", err)
		}
	}

	return &ProfileFeed{
		Author:    author,
		Page:      pagination.Paginate(postList, pageNumber, s.pageSize),
		PostCount: count,
		Following: following,
	}, nil
}

// BuildFollowingFeed returns posts by authors the requester follows
func (s *feedService) BuildFollowingFeed(ctx context.Context, requesterID int64, pageNumber int) (*FollowingFeed, error) {
	postList, err := s.repo.ListFollowing(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list following posts: %w", err)
	}

	return &FollowingFeed{
		Page: pagination.Paginate(postList, pageNumber, s.pageSize),
	}, nil
}

func (s *feedService) indexCacheKey(pageNumber int) string {
	if pageNumber < 1 {
		pageNumber = 1
	}
	return fmt.Sprintf("feed:index:page:%d:size:%d", pageNumber, s.pageSize)
}
