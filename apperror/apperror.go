// Package apperror defines the application's error taxonomy. Every expected
// failure is constructed as a typed *AppError carrying a user-facing message,
// and a single boundary translator maps it to an HTTP status and the
// `{"msg": ...}` envelope the API speaks.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies an application error.
type ErrorType int

const (
	// UnknownError is for unspecified errors.
	UnknownError ErrorType = iota
	// DatabaseError represents an error originating from the database.
	DatabaseError
	// ConfigError represents an error in application configuration.
	ConfigError
	// AuthError represents an authentication failure (bad password,
	// invalid or expired token).
	AuthError
	// NotFoundError represents a missing resource.
	NotFoundError
	// ValidationError represents an input validation failure.
	ValidationError
	// BadRequestError represents a malformed request.
	BadRequestError
	// ConflictError represents a duplicate resource (username, topic slug).
	ConflictError
	// UnchangedError represents a no-op mutation, e.g. a patch carrying a
	// missing or zero inc_votes. The boundary writes 304 with no body.
	UnchangedError
	// UnavailableError represents a timed-out or unreachable dependency.
	UnavailableError
	// InternalError represents an unexpected server-side fault.
	InternalError
	// MigrationError represents a failure applying schema migrations.
	MigrationError
)

// AppError is the application's error value. It wraps an optional underlying
// error so callers can inspect the chain with errors.Is / errors.As.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error, if any.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status for the error type.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case AuthError:
		return http.StatusUnauthorized
	case NotFoundError:
		return http.StatusNotFound
	case ValidationError, BadRequestError:
		return http.StatusBadRequest
	case ConflictError:
		// Duplicate username/topic is 403 in this API, not 409.
		return http.StatusForbidden
	case UnchangedError:
		return http.StatusNotModified
	case UnavailableError:
		return http.StatusServiceUnavailable
	case DatabaseError, ConfigError, InternalError, MigrationError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// New creates an AppError of an arbitrary type.
func New(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     underlying,
	}
}

// NewDatabaseError creates a DatabaseError.
func NewDatabaseError(message string, underlying error) *AppError {
	return New(DatabaseError, message, underlying)
}

// NewConfigError creates a ConfigError.
func NewConfigError(message string, underlying error) *AppError {
	return New(ConfigError, message, underlying)
}

// NewAuthError creates an AuthError.
func NewAuthError(message string, underlying error) *AppError {
	return New(AuthError, message, underlying)
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(message string, underlying error) *AppError {
	return New(NotFoundError, message, underlying)
}

// NewValidationError creates a ValidationError.
func NewValidationError(message string, underlying error) *AppError {
	return New(ValidationError, message, underlying)
}

// NewBadRequestError creates a BadRequestError.
func NewBadRequestError(message string, underlying error) *AppError {
	return New(BadRequestError, message, underlying)
}

// NewConflictError creates a ConflictError.
func NewConflictError(message string, underlying error) *AppError {
	return New(ConflictError, message, underlying)
}

// NewUnchangedError creates an UnchangedError.
func NewUnchangedError(message string) *AppError {
	return New(UnchangedError, message, nil)
}

// NewUnavailableError creates an UnavailableError.
func NewUnavailableError(message string, underlying error) *AppError {
	return New(UnavailableError, message, underlying)
}

// NewInternalError creates an InternalError.
func NewInternalError(message string, underlying error) *AppError {
	return New(InternalError, message, underlying)
}

// NewMigrationError creates a MigrationError.
func NewMigrationError(message string, underlying error) *AppError {
	return New(MigrationError, message, underlying)
}

// ErrorResponse is the JSON envelope for API errors.
type ErrorResponse struct {
	Msg string `json:"msg" example:"Article not found"`
}

// ToResponse converts an AppError to its client-facing envelope. Only the
// message is exposed, never the underlying error.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Msg: e.Message}
}

// FromError extracts an *AppError from an error chain.
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func isType(err error, t ErrorType) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Type == t
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool { return isType(err, NotFoundError) }

// IsAuthError reports whether err is an AuthError.
func IsAuthError(err error) bool { return isType(err, AuthError) }

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool { return isType(err, ValidationError) }

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool { return isType(err, ConflictError) }

// IsUnchanged reports whether err is an UnchangedError.
func IsUnchanged(err error) bool { return isType(err, UnchangedError) }
