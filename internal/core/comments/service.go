package comments

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rivo/uniseg"

	"Scribe/internal/core/posts"
)

// maxCommentGraphemes is the maximum length for comment text in graphemes
const maxCommentGraphemes = 2000

// commentService implements the Service interface
type commentService struct {
	repo     Repository
	postRepo posts.Repository
	logger   *slog.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(repo Repository, postRepo posts.Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		repo:     repo,
		postRepo: postRepo,
		logger:   logger,
	}
}

// AddComment validates and appends a comment to a post
func (s *commentService) AddComment(ctx context.Context, req AddCommentRequest) (*Comment, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrTextEmpty
	}
	if uniseg.GraphemeClusterCount(text) > maxCommentGraphemes {
		return nil, ErrTextTooLong
	}

	// Resolve the post first so an unknown post surfaces as not-found rather
	// than a dangling foreign key error
	post, err := s.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	comment := &Comment{
		PostID:   post.ID,
		AuthorID: req.RequesterID,
		Text:     text,
	}

	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Info("comment created",
		"comment_id", created.ID,
		"post_id", created.PostID,
		"author_id", created.AuthorID)

	return created, nil
}

// ListByPost retrieves all comments on a post, oldest first
func (s *commentService) ListByPost(ctx context.Context, postID int64) ([]*Comment, error) {
	comments, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
