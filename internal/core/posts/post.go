package posts

import (
	"time"
)

// Post represents a blog post in the application database.
// Author fields are hydrated by the repository via JOIN; group fields are only
// set when the post is filed under a group.
type Post struct {
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	Text           string    `json:"text" db:"text"`
	AuthorUsername string    `json:"authorUsername" db:"author_username"`
	Image          *string   `json:"image,omitempty" db:"image"`
	GroupID        *int64    `json:"groupId,omitempty" db:"group_id"`
	GroupSlug      *string   `json:"groupSlug,omitempty" db:"group_slug"`
	GroupTitle     *string   `json:"groupTitle,omitempty" db:"group_title"`
	ID             int64     `json:"id" db:"id"`
	AuthorID       int64     `json:"authorId" db:"author_id"`
}

// CreatePostRequest represents input for creating a new post.
// RequesterID always becomes the author; any author supplied by the client is
// ignored.
type CreatePostRequest struct {
	Text        string
	ImageData   []byte
	ImageName   string
	GroupID     *int64
	RequesterID int64
}

// UpdatePostRequest represents input for editing an existing post.
// ID, author and creation time of the post are preserved.
type UpdatePostRequest struct {
	Text        string
	ImageData   []byte
	ImageName   string
	GroupID     *int64
	PostID      int64
	RequesterID int64
}

// PostDetail is the full view of a single post for the detail page,
// including the author's total post count shown in the sidebar
type PostDetail struct {
	Post            *Post `json:"post"`
	AuthorPostCount int   `json:"authorPostCount"`
}
