package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates that a user with this email already exists
	ErrEmailTaken = errors.New("email already exists")

	// ErrPostNotOwned indicates that a conditional post mutation matched no row:
	// either the post does not exist or the caller is not its owner.
	// The two cases are deliberately indistinguishable so that non-owners
	// cannot probe for post existence.
	ErrPostNotOwned = errors.New("post does not exist or is not owned by caller")
)
