package groups

import "context"

// Repository defines the data access interface for groups
type Repository interface {
	// GetByID retrieves a group by its numeric ID
	GetByID(ctx context.Context, id int64) (*Group, error)

	// GetBySlug retrieves a group by its unique slug
	GetBySlug(ctx context.Context, slug string) (*Group, error)

	// List retrieves all groups ordered by title
	List(ctx context.Context) ([]*Group, error)
}
