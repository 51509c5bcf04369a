package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes a failure. The set is closed: the pipeline produces
// nothing outside it and the resource APIs add nothing to it.
type ErrorCode string

const (
	// CodeAuthentication indicates a missing or rejected API key.
	CodeAuthentication ErrorCode = "AUTHENTICATION_ERROR"
	// CodeNotFound indicates the requested resource does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeRateLimit indicates the server throttled the request.
	CodeRateLimit ErrorCode = "RATE_LIMIT_EXCEEDED"
	// CodeValidation indicates the server rejected the request payload.
	CodeValidation ErrorCode = "VALIDATION_ERROR"
	// CodeConnection indicates a transport-level failure (DNS, connect, timeout).
	CodeConnection ErrorCode = "CONNECTION_ERROR"
	// CodeSerialization indicates a request body could not be encoded or a
	// response body could not be decoded.
	CodeSerialization ErrorCode = "SERIALIZATION_ERROR"
	// CodeAPI indicates a non-2xx response not covered by a more specific code.
	CodeAPI ErrorCode = "API_ERROR"
)

// Sentinels for errors.Is matching by code. They carry no message and are
// never returned directly.
var (
	ErrAuthentication = &Error{Code: CodeAuthentication}
	ErrNotFound       = &Error{Code: CodeNotFound}
	ErrRateLimit      = &Error{Code: CodeRateLimit}
	ErrValidation     = &Error{Code: CodeValidation}
	ErrConnection     = &Error{Code: CodeConnection}
	ErrSerialization  = &Error{Code: CodeSerialization}
	ErrAPI            = &Error{Code: CodeAPI}
)

// Error is the structured error type for all BlackRoad API failures.
//
// Message holds raw server body text verbatim for the response-derived kinds
// (not found, validation, generic API) so callers can inspect exactly what the
// server said. StatusCode is zero when the error did not come from an HTTP
// response (connection and serialization failures, construction-time
// authentication failures keep the conventional 401).
type Error struct {
	// Code categorizes the failure.
	Code ErrorCode

	// Message is the human-readable description; raw body text for
	// response-derived errors.
	Message string

	// StatusCode is the HTTP status that produced the error, 0 otherwise.
	StatusCode int

	// RetryAfter is the suggested wait in seconds; set for rate-limit
	// errors only.
	RetryAfter int

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("[%s] %s (status: %d)", e.Code, e.Message, e.StatusCode)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches by code, enabling errors.Is(err, ErrNotFound) style checks.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewAuthenticationError reports a missing or rejected API key.
func NewAuthenticationError(message string) *Error {
	return &Error{
		Code:       CodeAuthentication,
		Message:    message,
		StatusCode: 401,
	}
}

// NewNotFoundError reports a 404, carrying the raw response body.
func NewNotFoundError(body string) *Error {
	return &Error{
		Code:       CodeNotFound,
		Message:    body,
		StatusCode: 404,
	}
}

// NewRateLimitError reports a 429 with the suggested wait in seconds.
func NewRateLimitError(retryAfter int) *Error {
	return &Error{
		Code:       CodeRateLimit,
		Message:    "rate limit exceeded",
		StatusCode: 429,
		RetryAfter: retryAfter,
	}
}

// NewValidationError reports a 422, carrying the raw response body.
func NewValidationError(body string) *Error {
	return &Error{
		Code:       CodeValidation,
		Message:    body,
		StatusCode: 422,
	}
}

// NewConnectionError reports a transport-level failure.
func NewConnectionError(message string, cause error) *Error {
	return &Error{
		Code:    CodeConnection,
		Message: message,
		Cause:   cause,
	}
}

// NewSerializationError reports an encode or decode failure.
func NewSerializationError(message string, cause error) *Error {
	return &Error{
		Code:    CodeSerialization,
		Message: message,
		Cause:   cause,
	}
}

// NewAPIError reports a non-2xx response with no more specific mapping,
// carrying the raw response body.
func NewAPIError(statusCode int, body string) *Error {
	return &Error{
		Code:       CodeAPI,
		Message:    body,
		StatusCode: statusCode,
	}
}

// GetCode extracts the error code from any error, unwrapping as needed.
// Errors outside the taxonomy yield the empty code.
func GetCode(err error) ErrorCode {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}

// IsCode checks whether an error carries the specified code.
func IsCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
