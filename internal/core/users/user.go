package users

import (
	"time"
)

// User represents an author or viewer tracked in the application database.
// Accounts are registered and authenticated by the auth layer; this core only
// reads them to resolve usernames and attribute authorship.
type User struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Username  string    `json:"username" db:"username"`
	ID        int64     `json:"id" db:"id"`
}
