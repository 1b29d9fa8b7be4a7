package repositories

import "errors"

// ErrNotFound is returned by lookups when no record matches. Services map it
// to the appropriate application error.
var ErrNotFound = errors.New("record not found")
