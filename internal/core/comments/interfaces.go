package comments

import "context"

// Service defines the business logic interface for comments
type Service interface {
	// AddComment validates and appends a comment to a post, attributing the
	// requester as author. Returns the created comment.
	AddComment(ctx context.Context, req AddCommentRequest) (*Comment, error)

	// ListByPost retrieves all comments on a post ordered oldest first
	ListByPost(ctx context.Context, postID int64) ([]*Comment, error)
}

// Repository defines the data access interface for comments
type Repository interface {
	// Create inserts a new comment and returns it with ID and timestamp set
	Create(ctx context.Context, comment *Comment) (*Comment, error)

	// ListByPost retrieves comments for a post ordered by created_at ascending,
	// ID ascending
	ListByPost(ctx context.Context, postID int64) ([]*Comment, error)
}
