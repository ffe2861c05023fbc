// Package apperr defines the error taxonomy of the query pipeline and its
// mapping onto HTTP statuses and wire codes.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for propagation decisions and status mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUpstreamAuth
	KindUpstreamRateLimit
	KindQuotaExceeded
	KindTimeout
	KindUpstream
	KindNotFound
	KindGeneration
)

// Wire codes carried in error payloads.
const (
	CodeInvalidAirport        = "INVALID_AIRPORT"
	CodeUnsupportedAirport    = "UNSUPPORTED_AIRPORT"
	CodeInvalidQuestion       = "INVALID_QUESTION"
	CodeInvalidQuestionFormat = "INVALID_QUESTION_FORMAT"
	CodeInvalidDayParameter   = "INVALID_DAY_PARAMETER"
	CodeNoFlightData          = "NO_FLIGHT_DATA"
	CodeRateLimitExceeded     = "RATE_LIMIT_EXCEEDED"
	CodeFlightAPIError        = "FLIGHT_API_ERROR"
	CodeLLMAPIError           = "LLM_API_ERROR"
	CodeRequestTimeout        = "REQUEST_TIMEOUT"
	CodeLLMEmptyResponse      = "LLM_EMPTY_RESPONSE"
	CodeInternalError         = "INTERNAL_ERROR"
)

// Error is a typed pipeline error carrying a wire code and wrapped cause.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error onto the response status of the inbound API.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstreamRateLimit, KindQuotaExceeded:
		return http.StatusTooManyRequests
	case KindUpstreamAuth, KindUpstream:
		return http.StatusBadGateway
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Validation builds a 400 error with the given wire code.
func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

// UpstreamAuth marks an authentication failure against an upstream API.
// code distinguishes the flight API from the LLM API.
func UpstreamAuth(code, message string, err error) *Error {
	return &Error{Kind: KindUpstreamAuth, Code: code, Message: message, Err: err}
}

// UpstreamRateLimit marks upstream throttling.
func UpstreamRateLimit(message string, err error) *Error {
	return &Error{Kind: KindUpstreamRateLimit, Code: CodeRateLimitExceeded, Message: message, Err: err}
}

// QuotaExceeded marks an exhausted upstream quota.
func QuotaExceeded(message string, err error) *Error {
	return &Error{Kind: KindQuotaExceeded, Code: CodeRateLimitExceeded, Message: message, Err: err}
}

// Timeout marks an upstream call that hit its deadline.
func Timeout(message string, err error) *Error {
	return &Error{Kind: KindTimeout, Code: CodeRequestTimeout, Message: message, Err: err}
}

// Upstream marks any other upstream transport failure.
func Upstream(code, message string, err error) *Error {
	return &Error{Kind: KindUpstream, Code: code, Message: message, Err: err}
}

// NotFound marks an empty dataset for the requested scope.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Code: CodeNoFlightData, Message: message}
}

// Generation marks an empty LLM completion.
func Generation(message string) *Error {
	return &Error{Kind: KindGeneration, Code: CodeLLMEmptyResponse, Message: message}
}

// Internal wraps anything unanticipated.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternalError, Message: message, Err: err}
}

// From extracts the typed error from err, wrapping unknown errors as
// internal so callers always get a status and code.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("internal server error", err)
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
