package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Scribe/internal/core/groups"
)

// GroupRepository is the postgres implementation of groups.Repository
type GroupRepository struct {
	db *sql.DB
}

// NewGroupRepository creates a new postgres group repository
func NewGroupRepository(db *sql.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// GetByID retrieves a group by its numeric ID
func (r *GroupRepository) GetByID(ctx context.Context, id int64) (*groups.Group, error) {
	query := `SELECT id, slug, title, description FROM groups WHERE id = $1`

	group := &groups.Group{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&group.ID, &group.Slug, &group.Title, &group.Description)
	if err == sql.ErrNoRows {
		return nil, groups.ErrGroupNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

// GetBySlug retrieves a group by its unique slug
func (r *GroupRepository) GetBySlug(ctx context.Context, slug string) (*groups.Group, error) {
	query := `SELECT id, slug, title, description FROM groups WHERE slug = $1`

	group := &groups.Group{}
	err := r.db.QueryRowContext(ctx, query, slug).Scan(&group.ID, &group.Slug, &group.Title, &group.Description)
	if err == sql.ErrNoRows {
		return nil, groups.ErrGroupNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

// List retrieves all groups ordered by title
func (r *GroupRepository) List(ctx context.Context) ([]*groups.Group, error) {
	query := `SELECT id, slug, title, description FROM groups ORDER BY title`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	result := []*groups.Group{}
	for rows.Next() {
		group := &groups.Group{}
		if err := rows.Scan(&group.ID, &group.Slug, &group.Title, &group.Description); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		result = append(result, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating groups: %w", err)
	}

	return result, nil
}
