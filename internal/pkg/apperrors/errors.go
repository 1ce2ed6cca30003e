package apperrors

import "errors"

// Request errors
var (
	ErrIncompleteData   = errors.New("incomplete data provided")
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidUserType  = errors.New("invalid user type")
)

// Resource errors
var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrDuplicateUsername     = errors.New("username already exists")
)

// NewNotFoundError creates a not-found error with a user-facing message, e.g. "University not found"
func NewNotFoundError(message string) error {
	return NewCustomError(ErrResourceNotFound, message)
}

// NewAlreadyExistsError creates a duplicate-entity error with a user-facing message
func NewAlreadyExistsError(message string) error {
	return NewCustomError(ErrResourceAlreadyExists, message)
}

// NewValidationError creates a validation error with a user-facing message
func NewValidationError(message string) error {
	return NewCustomError(ErrValidationFailed, message)
}

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// Message returns the user-facing message carried by err, or fallback
// when err carries none.
func Message(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}
