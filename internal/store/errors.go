package store

import "errors"

// Errors returned by the Create methods. Lookups never fail; they report
// absence through their boolean return instead.
var (
	ErrSlugTaken     = errors.New("slug already in use")
	ErrUsernameTaken = errors.New("username already in use")
)
