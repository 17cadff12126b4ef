package feeds

// Feed lookups fail with the not-found errors of the packages they resolve
// against: groups.ErrGroupNotFound for unknown slugs and users.ErrUserNotFound
// for unknown usernames. The feed builder adds no error types of its own.
