package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Scribe/internal/core/users"
)

// UserRepository is the postgres implementation of users.Repository
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new postgres user repository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by their numeric ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*users.User, error) {
	query := `SELECT id, username, created_at FROM users WHERE id = $1`

	user := &users.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by their unique username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	query := `SELECT id, username, created_at FROM users WHERE username = $1`

	user := &users.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// Upsert creates the user on first sight and returns the stored record.
// Used by the session login flow; idempotent, so repeated logins are safe.
func (r *UserRepository) Upsert(ctx context.Context, username string) (*users.User, error) {
	query := `
		INSERT INTO users (username)
		VALUES ($1)
		ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username
		RETURNING id, username, created_at`

	user := &users.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return user, nil
}
