package lib

import "errors"

var (
	// ErrBadToken covers every anti-forgery failure (missing, unknown,
	// expired, reused); callers must not learn which check failed.
	ErrBadToken = errors.New("security token rejected")

	// ErrInvalidEmail covers both a missing and a malformed address.
	ErrInvalidEmail = errors.New("invalid email address")
)
