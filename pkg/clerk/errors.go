package clerk

import "errors"

var (
	// ErrNoPrimaryEmail indicates the user has no resolvable primary contact email.
	ErrNoPrimaryEmail = errors.New("user has no primary email")

	// ErrUserNotFound indicates the user id is unknown to Clerk.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidToken indicates the session token could not be verified.
	ErrInvalidToken = errors.New("invalid session token")
)
