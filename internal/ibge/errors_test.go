package ibge

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"
	"testing"
)

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		et   ErrorType
		want string
	}{
		{ErrTypeNetwork, "Network Error"},
		{ErrTypeTimeout, "Timeout"},
		{ErrTypeHTTP, "HTTP Error"},
		{ErrTypeParse, "Parse Error"},
		{ErrTypeCanceled, "Canceled"},
		{ErrorType(99), "ErrorType(99)"},
	}

	for _, tt := range tests {
		if got := tt.et.String(); got != tt.want {
			t.Errorf("ErrorType(%d).String() = %q, want %q", tt.et, got, tt.want)
		}
	}
}

func TestServiceError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewParseError("failed to parse JSON response", "http://x", cause)

	if !strings.Contains(err.Error(), "Parse Error: failed to parse JSON response") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the underlying cause")
	}

	plain := NewValidationError("invalid state code")
	if plain.Error() != "Validation Error: invalid state code" {
		t.Errorf("Error() = %q", plain.Error())
	}
}

func TestClassifyNetworkError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"canceled", &url.Error{Op: "Get", URL: "u", Err: context.Canceled}, ErrTypeCanceled},
		{"deadline", fmt.Errorf("wrapped: %w", context.DeadlineExceeded), ErrTypeTimeout},
		{"dns", &url.Error{Op: "Get", URL: "u", Err: &net.DNSError{Name: "servicodados.ibge.gov.br"}}, ErrTypeDNS},
		{"refused", &url.Error{Op: "Get", URL: "u", Err: &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}}, ErrTypeConnectionRefused},
		{"generic", errors.New("connection reset"), ErrTypeNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyNetworkError(tt.err, "http://x")
			if got.Type != tt.want {
				t.Errorf("Type = %v, want %v", got.Type, tt.want)
			}
			if got.Endpoint != "http://x" {
				t.Errorf("Endpoint = %q, want http://x", got.Endpoint)
			}
		})
	}

	if ClassifyNetworkError(nil, "") != nil {
		t.Error("ClassifyNetworkError(nil) should return nil")
	}
}

func TestIsHelpers_WrappedErrors(t *testing.T) {
	err := fmt.Errorf("fetch states: %w", NewHTTPError(500, "http://x"))

	if !IsHTTPError(err) {
		t.Error("IsHTTPError should see through wrapping")
	}
	if IsParseError(err) || IsNetworkError(err) || IsCanceled(err) {
		t.Error("HTTP error misclassified")
	}
	if IsHTTPError(errors.New("plain")) {
		t.Error("plain errors are not HTTP errors")
	}
}

func TestGetShortErrorMessage(t *testing.T) {
	if got := GetShortErrorMessage(NewHTTPError(503, "")); got != "Serviço retornou erro (HTTP 503)" {
		t.Errorf("got %q", got)
	}
	if got := GetShortErrorMessage(NewParseError("x", "", nil)); got != "Resposta do serviço em formato inesperado" {
		t.Errorf("got %q", got)
	}
	if got := GetShortErrorMessage(NewValidationError("invalid state code \"\"")); got != "invalid state code \"\"" {
		t.Errorf("got %q", got)
	}
	if got := GetShortErrorMessage(errors.New("other")); got != "other" {
		t.Errorf("got %q", got)
	}
}
