package follows

import "context"

// Service defines the business logic interface for the follow graph
type Service interface {
	// Follow creates the edge (requester → target). Following yourself is a
	// silent no-op, and following someone twice leaves exactly one edge.
	Follow(ctx context.Context, requesterID int64, targetUsername string) error

	// Unfollow removes the edge (requester → target). Removing an absent edge
	// is a silent no-op.
	Unfollow(ctx context.Context, requesterID int64, targetUsername string) error

	// IsFollowing reports whether the user currently follows the author
	IsFollowing(ctx context.Context, userID, authorID int64) (bool, error)
}

// Repository defines the data access interface for follow edges
type Repository interface {
	// Create inserts the edge if absent. Inserting an existing edge must be a
	// no-op: the unique constraint on (user_id, author_id) collapses
	// concurrent duplicate calls to a single edge.
	Create(ctx context.Context, userID, authorID int64) error

	// Delete removes the edge if present; removing an absent edge is not an
	// error
	Delete(ctx context.Context, userID, authorID int64) error

	// Exists reports whether the edge (user, author) is present
	Exists(ctx context.Context, userID, authorID int64) (bool, error)
}
