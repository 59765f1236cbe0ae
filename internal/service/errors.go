package service

import "fmt"

// ErrorKind classifies an expected service failure.
// The API layer maps each kind to an HTTP status code.
type ErrorKind string

// Possible error kinds.
const (
	// KindValidationFailed indicates one or more field rules were violated.
	// The message concatenates every violated rule.
	KindValidationFailed ErrorKind = "validation_failed"

	// KindNotFound indicates the referenced entity id does not exist.
	KindNotFound ErrorKind = "not_found"

	// KindForbidden indicates the entity exists but is owned by another user.
	KindForbidden ErrorKind = "forbidden"

	// KindConflict indicates a uniqueness violation, such as a duplicate
	// username or email at registration.
	KindConflict ErrorKind = "conflict"

	// KindUnauthenticated indicates credentials did not verify at login.
	KindUnauthenticated ErrorKind = "unauthenticated"

	// KindInternal indicates an unexpected fault, typically from the
	// persistence collaborator. The API layer renders it as an opaque
	// failure; the message is for logs, not clients.
	KindInternal ErrorKind = "internal"
)

// Error is the typed failure value carried by a Result.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// ValidationFailed creates a validation error with the joined rule messages.
func ValidationFailed(message string) *Error {
	return &Error{Kind: KindValidationFailed, Message: message}
}

// NotFound creates a not-found error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NotFoundf creates a not-found error with a formatted message.
func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Forbidden creates an ownership-violation error.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// Conflict creates a uniqueness-violation error.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Unauthenticated creates a credential-verification error.
func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

// Internal wraps an unexpected fault as a service error.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: err.Error()}
}
