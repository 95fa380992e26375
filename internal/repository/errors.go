package repository

import "errors"

// ErrNotFound is wrapped by repository lookups when the requested row does
// not exist. Callers distinguish it with errors.Is.
var ErrNotFound = errors.New("not found")
