package posts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rivo/uniseg"

	"Scribe/internal/core/groups"
)

// maxPostGraphemes is the maximum length for post text in graphemes
const maxPostGraphemes = 10000

// postService implements the Service interface
type postService struct {
	repo       Repository
	groupRepo  groups.Repository
	imageStore ImageStore // nil when image uploads are disabled
	logger     *slog.Logger
}

// NewPostService creates a new post editor service.
// imageStore may be nil, in which case image uploads are rejected as invalid.
func NewPostService(repo Repository, groupRepo groups.Repository, imageStore ImageStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:       repo,
		groupRepo:  groupRepo,
		imageStore: imageStore,
		logger:     logger,
	}
}

// CreatePost validates input and persists a new post with the requester as author
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	text, err := s.validateText(req.Text)
	if err != nil {
		return nil, err
	}

	if err := s.resolveGroup(ctx, req.GroupID); err != nil {
		return nil, err
	}

	image, err := s.storeImage(ctx, req.ImageName, req.ImageData)
	if err != nil {
		return nil, err
	}

	post := &Post{
		AuthorID: req.RequesterID,
		Text:     text,
		GroupID:  req.GroupID,
		Image:    image,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post created",
		"post_id", created.ID,
		"author_id", created.AuthorID)

	return created, nil
}

// UpdatePost mutates an existing post in place. ID, author and creation time
// are preserved; only the author may edit.
func (s *postService) UpdatePost(ctx context.Context, req UpdatePostRequest) (*Post, error) {
	post, err := s.repo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != req.RequesterID {
		return nil, ErrNotAuthor
	}

	text, err := s.validateText(req.Text)
	if err != nil {
		return nil, err
	}

	if err := s.resolveGroup(ctx, req.GroupID); err != nil {
		return nil, err
	}

	post.Text = text
	post.GroupID = req.GroupID

	if len(req.ImageData) > 0 {
		image, err := s.storeImage(ctx, req.ImageName, req.ImageData)
		if err != nil {
			return nil, err
		}
		post.Image = image
	}

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	s.logger.Info("post updated",
		"post_id", updated.ID,
		"author_id", updated.AuthorID)

	return updated, nil
}

// GetPost retrieves a post and the author's total post count for the detail page
func (s *postService) GetPost(ctx context.Context, postID int64) (*PostDetail, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountByAuthor(ctx, post.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to count author posts: %w", err)
	}

	return &PostDetail{
		Post:            post,
		AuthorPostCount: count,
	}, nil
}

// validateText enforces the non-empty and length constraints on post text
func (s *postService) validateText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", NewValidationError("text", "post text cannot be empty")
	}
	if uniseg.GraphemeClusterCount(text) > maxPostGraphemes {
		return "", NewValidationError("text", "post text is too long")
	}
	return text, nil
}

// resolveGroup verifies the group exists when one is given.
// An unresolvable group is a validation failure, not a 404: the group comes
// from a form field the caller can correct.
func (s *postService) resolveGroup(ctx context.Context, groupID *int64) error {
	if groupID == nil {
		return nil
	}
	if _, err := s.groupRepo.GetByID(ctx, *groupID); err != nil {
		if err == groups.ErrGroupNotFound {
			return NewValidationError("group", "group does not exist")
		}
		return fmt.Errorf("failed to resolve group: %w", err)
	}
	return nil
}

// storeImage persists an uploaded image when one is present
func (s *postService) storeImage(ctx context.Context, name string, data []byte) (*string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if s.imageStore == nil {
		return nil, NewValidationError("image", "image uploads are not enabled")
	}
	ref, err := s.imageStore.Store(ctx, name, data)
	if err != nil {
		s.logger.Error("failed to store post image", "error", err, "filename", name)
		return nil, NewValidationError("image", "could not process uploaded image")
	}
	return &ref, nil
}
