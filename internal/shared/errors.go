package shared

import "errors"

var (
	// ErrNotFound indicates the requested task does not exist.
	ErrNotFound = errors.New("task not found")
	// ErrEmailTaken indicates a registration attempt with an email that is already in use.
	ErrEmailTaken = errors.New("user already exists")
	// ErrInvalidCredentials indicates login failure. Unknown email and wrong
	// password both return this value so callers cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated indicates a missing bearer token.
	ErrUnauthenticated = errors.New("no token, authorization denied")
	// ErrInvalidToken indicates a token that failed signature or expiry checks.
	ErrInvalidToken = errors.New("token is not valid")
	// ErrNotOwner indicates the caller is authenticated but does not own the resource.
	ErrNotOwner = errors.New("not authorized")
)
