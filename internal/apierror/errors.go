// Package apierror defines errors that are safe to show to API clients.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine readable error codes.
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeInvalidRequestBody  = "INVALID_REQUEST_BODY"
	CodeDuplicateEmail      = "DUPLICATE_EMAIL"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeMissingToken        = "MISSING_TOKEN"
	CodeInvalidToken        = "INVALID_TOKEN"
	CodeTokenExpired        = "TOKEN_EXPIRED"
	CodeUserNotFound        = "USER_NOT_FOUND"
	CodeArticleNotFound     = "ARTICLE_NOT_FOUND"
	CodeForbidden           = "FORBIDDEN"
	CodeRouteNotFound       = "NOT_FOUND"
	CodeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
)

// APIError is an error with an HTTP status and a client facing message.
type APIError struct {
	HTTPStatus int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// As extracts an APIError from the chain of err.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func NewErrValidation(format string, args ...any) *APIError {
	return &APIError{
		HTTPStatus: http.StatusBadRequest,
		Code:       CodeValidation,
		Message:    fmt.Sprintf(format, args...),
	}
}

func NewErrInvalidRequestBody(err error) *APIError {
	return &APIError{
		HTTPStatus: http.StatusBadRequest,
		Code:       CodeInvalidRequestBody,
		Message:    "invalid request body",
		Err:        err,
	}
}

func NewErrEmailIsTaken(email string) *APIError {
	return &APIError{
		HTTPStatus: http.StatusBadRequest,
		Code:       CodeDuplicateEmail,
		Message:    fmt.Sprintf("email %s is already taken", email),
	}
}

// NewErrInvalidCredentials is returned for both unknown emails and wrong
// passwords so callers cannot tell them apart.
func NewErrInvalidCredentials() *APIError {
	return &APIError{
		HTTPStatus: http.StatusUnauthorized,
		Code:       CodeInvalidCredentials,
		Message:    "invalid email or password",
	}
}

func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{
		HTTPStatus: http.StatusUnauthorized,
		Code:       CodeMissingToken,
		Message:    "authorization token is required",
	}
}

func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{
		HTTPStatus: http.StatusUnauthorized,
		Code:       CodeInvalidToken,
		Message:    "authorization token is invalid",
	}
}

func NewErrTokenExpired() *APIError {
	return &APIError{
		HTTPStatus: http.StatusUnauthorized,
		Code:       CodeTokenExpired,
		Message:    "authorization token has expired",
	}
}

func NewErrUserNotFound() *APIError {
	return &APIError{
		HTTPStatus: http.StatusUnauthorized,
		Code:       CodeUserNotFound,
		Message:    "user not found",
	}
}

func NewErrArticleNotFound(id string) *APIError {
	return &APIError{
		HTTPStatus: http.StatusNotFound,
		Code:       CodeArticleNotFound,
		Message:    fmt.Sprintf("article %s not found", id),
	}
}

func NewErrForbidden(err error) *APIError {
	return &APIError{
		HTTPStatus: http.StatusForbidden,
		Code:       CodeForbidden,
		Message:    "access to this article is forbidden",
		Err:        err,
	}
}

func NewErrRouteNotFound(path string) *APIError {
	return &APIError{
		HTTPStatus: http.StatusNotFound,
		Code:       CodeRouteNotFound,
		Message:    fmt.Sprintf("route %s not found", path),
	}
}

func NewErrMethodNotAllowed(method string) *APIError {
	return &APIError{
		HTTPStatus: http.StatusMethodNotAllowed,
		Code:       CodeMethodNotAllowed,
		Message:    fmt.Sprintf("method %s is not allowed", method),
	}
}

// NewErrInternalServerError hides err from the client but keeps it for logging.
func NewErrInternalServerError(err error) *APIError {
	return &APIError{
		HTTPStatus: http.StatusInternalServerError,
		Code:       CodeInternalServerError,
		Message:    "internal server error",
		Err:        err,
	}
}
