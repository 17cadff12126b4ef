package groups

// Group is an administrator-created topic that posts can be filed under.
// Groups are referenced by the feed and post editor but never mutated here.
type Group struct {
	Slug        string `json:"slug" db:"slug"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	ID          int64  `json:"id" db:"id"`
}
