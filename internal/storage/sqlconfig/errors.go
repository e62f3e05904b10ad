package sqlconfig

import "errors"

// ErrNotFound is returned by id-based lookups, updates, and deletes when no
// row matches. Callers treat it as an expected condition, not a store failure.
var ErrNotFound = errors.New("sqlconfig: record not found")
