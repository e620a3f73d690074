package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. blank name, description shorter than DescriptionMinWords).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrUnauthenticated is returned when a protected action has no logged user.
// Handlers map this to HTTP 403 with code "auth.unauthorized".
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrForbidden is returned when the logged user may not perform a mutation.
// Handlers should map this to HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrAlreadyDeleted is returned when deleting a travel that is already deleted.
// Handlers should map this to HTTP 409.
var ErrAlreadyDeleted = errors.New("already deleted")

// ErrStorage wraps any persistence failure surfaced by a service.
// Handlers log the cause and map this to HTTP 500.
var ErrStorage = errors.New("storage error")

// FieldError is a validation failure tied to one input field. It matches
// ErrValidation under errors.Is, so callers that only care about the class
// of error need not know about it; handlers use Field to report the detail.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return ErrValidation.Error() + ": " + e.Field + ": " + e.Message
}

func (e *FieldError) Is(target error) bool { return target == ErrValidation }
