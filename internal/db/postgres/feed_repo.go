package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Scribe/internal/core/posts"
)

// feedOrder is the single ordering used by every feed view: newest first,
// with ID descending as tie-break so pagination stays deterministic when
// timestamps collide.
const feedOrder = ` ORDER BY p.created_at DESC, p.id DESC`

// FeedRepository is the postgres implementation of feeds.Repository.
// Each query returns a fully materialized ordered sequence; the feed builder
// paginates it.
type FeedRepository struct {
	db *sql.DB
}

// NewFeedRepository creates a new postgres feed repository
func NewFeedRepository(db *sql.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

// ListAll retrieves every post, newest first
func (r *FeedRepository) ListAll(ctx context.Context) ([]*posts.Post, error) {
	return r.queryPosts(ctx, postSelect+feedOrder)
}

// ListByGroup retrieves posts filed under a group, newest first
func (r *FeedRepository) ListByGroup(ctx context.Context, groupID int64) ([]*posts.Post, error) {
	return r.queryPosts(ctx, postSelect+` WHERE p.group_id = $1`+feedOrder, groupID)
}

// ListByAuthor retrieves posts by a single author, newest first
func (r *FeedRepository) ListByAuthor(ctx context.Context, authorID int64) ([]*posts.Post, error) {
	return r.queryPosts(ctx, postSelect+` WHERE p.author_id = $1`+feedOrder, authorID)
}

// ListFollowing retrieves posts whose author the user follows, newest first
func (r *FeedRepository) ListFollowing(ctx context.Context, userID int64) ([]*posts.Post, error) {
	query := postSelect + `
	INNER JOIN follows f ON p.author_id = f.author_id
	WHERE f.user_id = $1` + feedOrder
	return r.queryPosts(ctx, query, userID)
}

// queryPosts runs a postSelect-shaped query and scans all rows
func (r *FeedRepository) queryPosts(ctx context.Context, query string, args ...interface{}) ([]*posts.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	result := []*posts.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return result, nil
}
