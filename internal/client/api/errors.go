package api

import "errors"

var (
	// ErrUnavailable: the server could not be reached or timed out.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized: the backend rejected the credential. Consumers must
	// react by logging the session out.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrIncompleteResponse: the auth endpoint answered success but the token
	// or the user identifier was missing from the body.
	ErrIncompleteResponse = errors.New("incomplete auth response")
)
