package services

import "errors"

// ErrNotFound reports that a lookup matched zero rows. List operations
// never return it; an empty page with total 0 is a normal result.
var ErrNotFound = errors.New("not found")
