package errors

import "errors"

// IsAuthentication reports whether err is an authentication failure.
func IsAuthentication(err error) bool {
	return IsCode(err, CodeAuthentication)
}

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool {
	return IsCode(err, CodeNotFound)
}

// IsRateLimit reports whether err is a rate-limit failure.
func IsRateLimit(err error) bool {
	return IsCode(err, CodeRateLimit)
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	return IsCode(err, CodeValidation)
}

// IsConnection reports whether err is a transport-level failure.
func IsConnection(err error) bool {
	return IsCode(err, CodeConnection)
}

// IsSerialization reports whether err is an encode or decode failure.
func IsSerialization(err error) bool {
	return IsCode(err, CodeSerialization)
}

// RetryAfter returns the suggested wait in seconds for rate-limit errors.
// The second return is false for every other error.
func RetryAfter(err error) (int, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Code == CodeRateLimit {
		return apiErr.RetryAfter, true
	}
	return 0, false
}
