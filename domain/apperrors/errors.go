// Package apperrors defines the error taxonomy services return. Handlers
// translate these with errors.Is into HTTP status codes; everything unmatched
// surfaces as an internal error.
package apperrors

import "errors"

var (
	// ErrDuplicateIdentity is returned when a signup email is already taken.
	ErrDuplicateIdentity = errors.New("identity already exists")

	// ErrNotFound is returned on any entity lookup miss.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned when a password comparison fails.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation is returned when a value violates a schema constraint,
	// e.g. a due date in the past or an unknown status.
	ErrValidation = errors.New("validation failed")
)
