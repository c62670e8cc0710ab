package ibge

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates the request did not complete in time
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates the service refused the connection
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates the service hostname could not be resolved
	ErrTypeDNS
	// ErrTypeHTTP indicates a non-200 response
	ErrTypeHTTP
	// ErrTypeParse indicates a malformed or incomplete response body
	ErrTypeParse
	// ErrTypeValidation indicates an invalid request argument
	ErrTypeValidation
	// ErrTypeCanceled indicates the caller canceled the request
	ErrTypeCanceled
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeCanceled:
		return "Canceled"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// ServiceError represents an error that occurred while talking to the API
type ServiceError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Endpoint   string    // Request URL (if known)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError analyzes a transport error and returns a typed error
func ClassifyNetworkError(err error, endpoint string) *ServiceError {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return &ServiceError{Type: ErrTypeCanceled, Message: "Request canceled", Endpoint: endpoint, Err: err}
	}

	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return &ServiceError{Type: ErrTypeTimeout, Message: "Request timed out", Endpoint: endpoint, Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &ServiceError{
			Type:     ErrTypeDNS,
			Message:  fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Endpoint: endpoint,
			Err:      err,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return &ServiceError{Type: ErrTypeConnectionRefused, Message: "Service refused connection", Endpoint: endpoint, Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != err {
		return ClassifyNetworkError(urlErr.Err, endpoint)
	}

	return &ServiceError{Type: ErrTypeNetwork, Message: "Network error occurred", Endpoint: endpoint, Err: err}
}

// NewNetworkError creates a network-level error with automatic classification
func NewNetworkError(message, endpoint string, err error) *ServiceError {
	classified := ClassifyNetworkError(err, endpoint)
	if classified == nil {
		return &ServiceError{Type: ErrTypeNetwork, Message: message, Endpoint: endpoint}
	}
	classified.Message = message
	return classified
}

// NewHTTPError creates an HTTP-level error
func NewHTTPError(statusCode int, endpoint string) *ServiceError {
	return &ServiceError{
		Type:       ErrTypeHTTP,
		Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
		StatusCode: statusCode,
		Endpoint:   endpoint,
	}
}

// NewParseError creates a parsing error
func NewParseError(message, endpoint string, err error) *ServiceError {
	return &ServiceError{Type: ErrTypeParse, Message: message, Endpoint: endpoint, Err: err}
}

// NewValidationError creates a validation error
func NewValidationError(message string) *ServiceError {
	return &ServiceError{Type: ErrTypeValidation, Message: message}
}

func errorType(err error) (ErrorType, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Type, true
	}
	return 0, false
}

// IsNetworkError checks if an error is a network error (including timeout, connection refused and DNS)
func IsNetworkError(err error) bool {
	t, ok := errorType(err)
	return ok && (t == ErrTypeNetwork || t == ErrTypeTimeout || t == ErrTypeConnectionRefused || t == ErrTypeDNS)
}

// IsTimeout checks if an error is a timeout
func IsTimeout(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeTimeout
}

// IsHTTPError checks if an error is an HTTP error
func IsHTTPError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeHTTP
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeParse
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeValidation
}

// IsCanceled checks if the request was canceled by the caller
func IsCanceled(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeCanceled
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		return err.Error()
	}

	switch svcErr.Type {
	case ErrTypeTimeout:
		return "Serviço não respondeu a tempo"
	case ErrTypeConnectionRefused:
		return "Serviço recusou a conexão"
	case ErrTypeDNS:
		return "Não foi possível resolver o endereço do serviço"
	case ErrTypeNetwork:
		return "Erro de rede - verifique sua conexão"
	case ErrTypeHTTP:
		return fmt.Sprintf("Serviço retornou erro (HTTP %d)", svcErr.StatusCode)
	case ErrTypeParse:
		return "Resposta do serviço em formato inesperado"
	case ErrTypeCanceled:
		return "Requisição cancelada"
	default:
		return svcErr.Message
	}
}
