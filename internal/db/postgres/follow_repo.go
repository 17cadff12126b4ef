package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// FollowRepository is the postgres implementation of follows.Repository
type FollowRepository struct {
	db *sql.DB
}

// NewFollowRepository creates a new postgres follow repository
func NewFollowRepository(db *sql.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Create inserts the edge if absent. ON CONFLICT DO NOTHING against the
// unique (user_id, author_id) constraint makes concurrent duplicate calls
// collapse to a single edge.
func (r *FollowRepository) Create(ctx context.Context, userID, authorID int64) error {
	query := `
		INSERT INTO follows (user_id, author_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, author_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, userID, authorID); err != nil {
		return fmt.Errorf("failed to create follow: %w", err)
	}

	return nil
}

// Delete removes the edge if present; removing an absent edge is not an error
func (r *FollowRepository) Delete(ctx context.Context, userID, authorID int64) error {
	query := `DELETE FROM follows WHERE user_id = $1 AND author_id = $2`

	if _, err := r.db.ExecContext(ctx, query, userID, authorID); err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}

	return nil
}

// Exists reports whether the edge (user, author) is present
func (r *FollowRepository) Exists(ctx context.Context, userID, authorID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM follows WHERE user_id = $1 AND author_id = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, authorID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}

	return exists, nil
}
