package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"validation", Validation(CodeInvalidAirport, "bad"), http.StatusBadRequest},
		{"not found", NotFound("empty"), http.StatusNotFound},
		{"rate limit", UpstreamRateLimit("throttled", nil), http.StatusTooManyRequests},
		{"quota", QuotaExceeded("quota", nil), http.StatusTooManyRequests},
		{"auth", UpstreamAuth(CodeFlightAPIError, "denied", nil), http.StatusBadGateway},
		{"upstream", Upstream(CodeLLMAPIError, "boom", nil), http.StatusBadGateway},
		{"timeout", Timeout("slow", nil), http.StatusGatewayTimeout},
		{"generation", Generation("empty"), http.StatusInternalServerError},
		{"internal", Internal("oops", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.HTTPStatus(); got != tt.want {
				t.Errorf("Expected status %d, got %d", tt.want, got)
			}
		})
	}
}

func TestFromWrapsUnknownErrors(t *testing.T) {
	appErr := From(errors.New("surprise"))
	if appErr.Kind != KindInternal {
		t.Errorf("Expected KindInternal, got %v", appErr.Kind)
	}
	if appErr.Code != CodeInternalError {
		t.Errorf("Expected %s, got %s", CodeInternalError, appErr.Code)
	}
}

func TestFromKeepsTypedErrors(t *testing.T) {
	original := NotFound("no data")
	wrapped := fmt.Errorf("stage failed: %w", original)

	appErr := From(wrapped)
	if appErr != original {
		t.Errorf("Expected the original typed error back, got %v", appErr)
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("wrap: %w", Timeout("slow", nil))
	if !IsKind(err, KindTimeout) {
		t.Error("Expected IsKind to see through wrapping")
	}
	if IsKind(err, KindNotFound) {
		t.Error("Expected IsKind to reject a different kind")
	}
	if IsKind(errors.New("plain"), KindTimeout) {
		t.Error("Expected IsKind to reject untyped errors")
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := Upstream(CodeFlightAPIError, "request failed", errors.New("connection refused"))
	if got := err.Error(); got != "request failed: connection refused" {
		t.Errorf("Unexpected message %q", got)
	}
	if unwrapped := errors.Unwrap(err); unwrapped == nil || unwrapped.Error() != "connection refused" {
		t.Errorf("Unwrap() = %v", unwrapped)
	}
}
