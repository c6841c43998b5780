package repositories

import "errors"

// ErrNotFound is returned by every scoped lookup when no row matches.
// Ownership violations surface as this same error so callers cannot tell
// another user's resource apart from a missing one.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateKey is returned when an insert loses against a unique
// constraint, e.g. the loser of a concurrent registration race.
var ErrDuplicateKey = errors.New("duplicate key")
