// Package apperrors defines the business-rule error taxonomy. Handlers map
// these onto HTTP responses; everything unclassified surfaces as a generic
// server error.
package apperrors

import "errors"

var (
	// ErrNotFound means a referenced person, post or comment does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSelfFollow is returned when a person tries to follow themselves.
	ErrSelfFollow = errors.New("cannot follow yourself")

	// ErrForbidden means the actor is not the owner of the record they are
	// trying to mutate.
	ErrForbidden = errors.New("not authorized to perform this action")

	// ErrInvalidToken covers signature mismatch, structural corruption and
	// expiry of the authentication token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrDuplicateIdentity means the username or email is already taken.
	ErrDuplicateIdentity = errors.New("username or email already registered")

	// ErrBadCredentials means the identifier/password pair did not verify.
	ErrBadCredentials = errors.New("invalid credentials")
)
