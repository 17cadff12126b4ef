package users

import "context"

// Repository defines the data access interface for users
type Repository interface {
	// GetByID retrieves a user by their numeric ID
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByUsername retrieves a user by their unique username
	GetByUsername(ctx context.Context, username string) (*User, error)
}
