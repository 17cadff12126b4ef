package comments

import (
	"time"
)

// Comment represents a reader's comment on a post. Comments are append-only:
// there are no update or delete operations.
type Comment struct {
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	Text           string    `json:"text" db:"text"`
	AuthorUsername string    `json:"authorUsername" db:"author_username"`
	ID             int64     `json:"id" db:"id"`
	PostID         int64     `json:"postId" db:"post_id"`
	AuthorID       int64     `json:"authorId" db:"author_id"`
}

// AddCommentRequest represents input for appending a comment to a post.
// The requester always becomes the comment's author.
type AddCommentRequest struct {
	Text        string
	PostID      int64
	RequesterID int64
}
