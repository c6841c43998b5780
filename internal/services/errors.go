package services

import (
	"errors"

	"kontak/internal/repositories"
)

// Error taxonomy surfaced to the HTTP layer. All are terminal; handlers map
// them to status codes and the error body shape with errors.Is.
var (
	// ErrNotFound covers both true absence and ownership violations, which
	// are indistinguishable by design.
	ErrNotFound = repositories.ErrNotFound

	// ErrUnauthorized means the request carried no resolvable bearer token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is returned for an unknown username and for a
	// wrong password alike, so a caller cannot probe which one failed.
	ErrInvalidCredentials = errors.New("username or password wrong")

	// ErrUsernameTaken means the username is already registered.
	ErrUsernameTaken = errors.New("username already registered")
)
