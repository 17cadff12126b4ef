package groups

import "errors"

// ErrGroupNotFound is returned when a group lookup finds no matching record
var ErrGroupNotFound = errors.New("group not found")
