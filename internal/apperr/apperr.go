// Package apperr defines the stable error taxonomy shared by the core and the
// HTTP boundary. Consumers match on Code, never on Message.
package apperr

import (
	"errors"
	"net/http"
)

const (
	CodeEmailTaken         = "EMAIL_TAKEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeWorkspaceNotFound  = "WORKSPACE_NOT_FOUND"
	CodeServiceNotFound    = "SERVICE_NOT_FOUND"
	CodeEndpointNotFound   = "ENDPOINT_NOT_FOUND"
	CodeSlugTaken          = "SLUG_TAKEN"
	CodeValidationError    = "VALIDATION_ERROR"
	CodeInternal           = "INTERNAL_ERROR"
)

// Error is a terminal failure for the current operation. The core never
// recovers from one locally; it propagates unmodified to the request boundary.
type Error struct {
	Code    string
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// Is makes two taxonomy errors equal when their codes match, so callers can
// use errors.Is against the sentinel constructors below.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

func ErrEmailTaken() *Error {
	return &Error{Code: CodeEmailTaken, Message: "Email address is already in use", Status: http.StatusConflict}
}

func ErrInvalidCredentials() *Error {
	return &Error{Code: CodeInvalidCredentials, Message: "Invalid email or password", Status: http.StatusUnauthorized}
}

func ErrUnauthorized() *Error {
	return &Error{Code: CodeUnauthorized, Message: "Authentication required", Status: http.StatusUnauthorized}
}

func ErrForbidden() *Error {
	return &Error{Code: CodeForbidden, Message: "You do not have access to this resource", Status: http.StatusForbidden}
}

func ErrUserNotFound() *Error {
	return &Error{Code: CodeUserNotFound, Message: "User not found", Status: http.StatusNotFound}
}

func ErrWorkspaceNotFound() *Error {
	return &Error{Code: CodeWorkspaceNotFound, Message: "Workspace not found", Status: http.StatusNotFound}
}

func ErrServiceNotFound() *Error {
	return &Error{Code: CodeServiceNotFound, Message: "Service not found", Status: http.StatusNotFound}
}

func ErrEndpointNotFound() *Error {
	return &Error{Code: CodeEndpointNotFound, Message: "Endpoint not found", Status: http.StatusNotFound}
}

func ErrSlugTaken() *Error {
	return &Error{Code: CodeSlugTaken, Message: "Workspace slug is already in use", Status: http.StatusConflict}
}

func Validation(message string) *Error {
	return &Error{Code: CodeValidationError, Message: message, Status: http.StatusBadRequest}
}
