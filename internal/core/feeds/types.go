package feeds

import (
	"Scribe/internal/core/groups"
	"Scribe/internal/core/pagination"
	"Scribe/internal/core/posts"
	"Scribe/internal/core/users"
)

// IndexFeed is the global post listing, newest first
type IndexFeed struct {
	Page pagination.Page[*posts.Post] `json:"page"`
}

// GroupFeed is the post listing for a single group
type GroupFeed struct {
	Group *groups.Group                `json:"group"`
	Page  pagination.Page[*posts.Post] `json:"page"`
}

// ProfileFeed is the post listing for a single author, with the metadata the
// profile page renders alongside it
type ProfileFeed struct {
	Author    *users.User                  `json:"author"`
	Page      pagination.Page[*posts.Post] `json:"page"`
	PostCount int                          `json:"postCount"`
	// Following reports whether the requesting viewer follows this author.
	// Always false for anonymous viewers.
	Following bool `json:"following"`
}

// FollowingFeed lists posts by authors the requester follows
type FollowingFeed struct {
	Page pagination.Page[*posts.Post] `json:"page"`
}
