package domain

import "errors"

var (
	// ErrSessionNotFound indicates the request carried no resolvable session.
	ErrSessionNotFound = errors.New("session not found")
	// ErrNotAuthorized indicates the account's role does not allow panel access.
	ErrNotAuthorized = errors.New("not authorized")
)
