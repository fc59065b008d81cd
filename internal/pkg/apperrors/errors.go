package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers map these to HTTP status codes; everything else is
// treated as an internal error
var (
	// ErrInvalidInput marks request validation failures. Deterministic for
	// the same input, never retried
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks lookups of entities that do not exist
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized marks failed authentication or ownership checks
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable marks transient collaborator outages
	ErrUnavailable = errors.New("service unavailable")
)

// InvalidInputf wraps ErrInvalidInput with a formatted message
func InvalidInputf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// NotFoundf wraps ErrNotFound with a formatted message
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Unauthorizedf wraps ErrUnauthorized with a formatted message
func Unauthorizedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrUnauthorized, fmt.Sprintf(format, args...))
}

// Unavailablef wraps ErrUnavailable with a formatted message
func Unavailablef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrUnavailable, fmt.Sprintf(format, args...))
}

// IsInvalidInput reports whether err is a validation failure
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound reports whether err is a missing-entity failure
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized reports whether err is an authentication failure
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsUnavailable reports whether err is a transient collaborator outage
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
