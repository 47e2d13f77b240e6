package errors

import "errors"

var (
	// ErrNotFound is returned by repositories when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrUserNotFound means no user exists with the supplied username.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidPassword means the password does not match the stored hash.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrInvalidToken means the bearer token does not identify a session.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrAccountNotFound means the session user has no account.
	ErrAccountNotFound = errors.New("account not found")
)
