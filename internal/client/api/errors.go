package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies every failure raised by this package. The set is fixed:
// callers switch on it instead of inspecting transport details.
type Code string

const (
	// CodeValidation marks malformed input, detected locally or by the
	// server. Carries per-field details when available.
	CodeValidation Code = "VALIDATION_ERROR"
	// CodeDuplicate marks an account that already exists.
	CodeDuplicate Code = "DUPLICATE_ERROR"
	// CodeConnection marks a failed pre-flight reachability probe.
	CodeConnection Code = "CONNECTION_ERROR"
	// CodeNetwork marks a request that was sent but got no response.
	CodeNetwork Code = "NETWORK_ERROR"
	// CodeRateLimit marks a 429 response.
	CodeRateLimit Code = "RATE_LIMIT_ERROR"
	// CodeService marks a 503 response (upstream temporarily unavailable).
	CodeService Code = "SERVICE_ERROR"
	// CodeServer marks any other non-2xx response.
	CodeServer Code = "SERVER_ERROR"
	// CodeInvalidResponse marks a 2xx response missing an expected field.
	CodeInvalidResponse Code = "INVALID_RESPONSE_ERROR"
	// CodeUnknown is the fallback classification.
	CodeUnknown Code = "UNKNOWN_ERROR"
)

// Error is the classified failure raised at the HTTP boundary. It is created
// once, here, and passed through the upper layers unwrapped.
type Error struct {
	Code    Code
	Message string
	Details map[string]string
	Status  int // HTTP status when a response was received, 0 otherwise
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// AsError unwraps err into *Error. Returns false for plain errors.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsCode reports whether err is an *Error carrying the given code.
func IsCode(err error, code Code) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Code == code
}

// classifyStatus maps an HTTP response status to a taxonomy code. Only
// non-2xx statuses are expected here.
func classifyStatus(status int) Code {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return CodeValidation
	case http.StatusConflict:
		return CodeDuplicate
	case http.StatusTooManyRequests:
		return CodeRateLimit
	case http.StatusServiceUnavailable:
		return CodeService
	default:
		return CodeServer
	}
}
