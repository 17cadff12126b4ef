package follows

import (
	"context"
	"fmt"
	"log/slog"

	"Scribe/internal/core/users"
)

// followService implements the Service interface
type followService struct {
	repo     Repository
	userRepo users.Repository
	logger   *slog.Logger
}

// NewFollowService creates a new follow manager
func NewFollowService(repo Repository, userRepo users.Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &followService{
		repo:     repo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Follow creates the edge (requester → target) if absent
func (s *followService) Follow(ctx context.Context, requesterID int64, targetUsername string) error {
	target, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}

	// Following yourself is silently ignored, not an error
	if target.ID == requesterID {
		return nil
	}

	if err := s.repo.Create(ctx, requesterID, target.ID); err != nil {
		return fmt.Errorf("failed to create follow: %w", err)
	}

	s.logger.Info("follow created",
		"user_id", requesterID,
		"author_id", target.ID)

	return nil
}

// Unfollow removes the edge (requester → target) if present
func (s *followService) Unfollow(ctx context.Context, requesterID int64, targetUsername string) error {
	target, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, requesterID, target.ID); err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}

	s.logger.Info("follow removed",
		"user_id", requesterID,
		"author_id", target.ID)

	return nil
}

// IsFollowing reports whether the user currently follows the author
func (s *followService) IsFollowing(ctx context.Context, userID, authorID int64) (bool, error) {
	following, err := s.repo.Exists(ctx, userID, authorID)
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return following, nil
}
