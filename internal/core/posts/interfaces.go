package posts

import "context"

// Service defines the business logic interface for the post editor
type Service interface {
	// CreatePost validates and persists a new post on behalf of the requester.
	// The requester always becomes the author. Each call creates a new post;
	// creation is not idempotent.
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)

	// UpdatePost validates and mutates an existing post in place, preserving
	// its ID, author and creation time. Only the author may edit.
	UpdatePost(ctx context.Context, req UpdatePostRequest) (*Post, error)

	// GetPost retrieves a single post with its detail-page metadata
	GetPost(ctx context.Context, postID int64) (*PostDetail, error)
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a new post and returns it with ID and timestamps set
	Create(ctx context.Context, post *Post) (*Post, error)

	// GetByID retrieves a post by its numeric ID
	GetByID(ctx context.Context, id int64) (*Post, error)

	// Update persists changed text, group and image of an existing post
	Update(ctx context.Context, post *Post) (*Post, error)

	// CountByAuthor returns the total number of posts by an author
	CountByAuthor(ctx context.Context, authorID int64) (int, error)
}

// ImageStore persists uploaded post images and returns an opaque reference
// that is stored on the post
type ImageStore interface {
	Store(ctx context.Context, filename string, data []byte) (string, error)
}
