package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Scribe/internal/core/comments"
)

const commentSelect = `
	SELECT c.id, c.post_id, c.author_id, u.username AS author_username, c.text, c.created_at
	FROM comments c
	INNER JOIN users u ON c.author_id = u.id`

// CommentRepository is the postgres implementation of comments.Repository
type CommentRepository struct {
	db *sql.DB
}

// NewCommentRepository creates a new postgres comment repository
func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a new comment and returns it hydrated with the author username
func (r *CommentRepository) Create(ctx context.Context, comment *comments.Comment) (*comments.Comment, error) {
	query := `
		INSERT INTO comments (post_id, author_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		comment.PostID,
		comment.AuthorID,
		comment.Text,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	// Hydrate the author username for the response
	usernameQuery := `SELECT username FROM users WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, usernameQuery, comment.AuthorID).Scan(&comment.AuthorUsername); err != nil {
		return nil, fmt.Errorf("failed to hydrate comment author: %w", err)
	}

	return comment, nil
}

// ListByPost retrieves comments for a post, oldest first with ID as tie-break
func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	query := commentSelect + `
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC, c.id ASC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	result := []*comments.Comment{}
	for rows.Next() {
		comment := &comments.Comment{}
		if err := rows.Scan(
			&comment.ID, &comment.PostID, &comment.AuthorID,
			&comment.AuthorUsername, &comment.Text, &comment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		result = append(result, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return result, nil
}
