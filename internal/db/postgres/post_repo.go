package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Scribe/internal/core/posts"
)

// postSelect is the shared SELECT used everywhere a full post row is needed.
// Author username and group slug/title are hydrated via JOINs so feed and
// detail views never issue per-post lookups.
const postSelect = `
	SELECT
		p.id, p.author_id, u.username AS author_username,
		p.group_id, g.slug AS group_slug, g.title AS group_title,
		p.text, p.image, p.created_at
	FROM posts p
	INNER JOIN users u ON p.author_id = u.id
	LEFT JOIN groups g ON p.group_id = g.id`

// PostRepository is the postgres implementation of posts.Repository
type PostRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new postgres post repository
func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a new post and returns it fully hydrated
func (r *PostRepository) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (author_id, group_id, text, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		post.AuthorID,
		nullInt64(post.GroupID),
		post.Text,
		nullString(post.Image),
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID retrieves a post by its numeric ID
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := postSelect + ` WHERE p.id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// Update persists changed text, group and image. Author and created_at are
// never written: the author is immutable after creation.
func (r *PostRepository) Update(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		UPDATE posts
		SET text = $1, group_id = $2, image = $3
		WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query,
		post.Text,
		nullInt64(post.GroupID),
		nullString(post.Image),
		post.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, posts.ErrPostNotFound
	}

	return r.GetByID(ctx, post.ID)
}

// CountByAuthor returns the total number of posts by an author
func (r *PostRepository) CountByAuthor(ctx context.Context, authorID int64) (int, error) {
	query := `SELECT COUNT(*) FROM posts WHERE author_id = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, authorID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return count, nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanPost scans a full post row produced by postSelect
func scanPost(row rowScanner) (*posts.Post, error) {
	var (
		post       posts.Post
		groupID    sql.NullInt64
		groupSlug  sql.NullString
		groupTitle sql.NullString
		image      sql.NullString
	)

	err := row.Scan(
		&post.ID, &post.AuthorID, &post.AuthorUsername,
		&groupID, &groupSlug, &groupTitle,
		&post.Text, &image, &post.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if groupID.Valid {
		post.GroupID = &groupID.Int64
	}
	post.GroupSlug = nullStringPtr(groupSlug)
	post.GroupTitle = nullStringPtr(groupTitle)
	post.Image = nullStringPtr(image)

	return &post, nil
}

// nullStringPtr converts sql.NullString to *string
func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

// nullString converts *string to a driver-friendly value
func nullString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// nullInt64 converts *int64 to a driver-friendly value
func nullInt64(i *int64) interface{} {
	if i == nil {
		return nil
	}
	return *i
}
