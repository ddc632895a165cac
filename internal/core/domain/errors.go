package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown username and wrong password
	// so login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated covers a missing, malformed, expired or forged
	// bearer token, and a token whose subject no longer exists.
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrForbidden = errors.New("access forbidden")

	ErrUserNotFound  = errors.New("user not found")
	ErrMovieNotFound = errors.New("movie not found")

	ErrUserExists  = errors.New("username already taken")
	ErrEmailExists = errors.New("email already registered")
)
