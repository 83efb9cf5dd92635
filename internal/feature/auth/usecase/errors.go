package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by username or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when attempting to create a user whose
	// username or email is already taken.
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrInvalidCredentials is returned when the username/password pair does not
	// match a registered user. The message is deliberately generic.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
