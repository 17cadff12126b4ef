package comments

import (
	"errors"
)

// Sentinel errors for comment operations
var (
	// ErrTextEmpty is returned when the comment text is empty after trimming
	ErrTextEmpty = errors.New("comment text cannot be empty")

	// ErrTextTooLong is returned when the comment exceeds the grapheme limit
	ErrTextTooLong = errors.New("comment text is too long")
)
