package restclient

import (
	"errors"
	"fmt"

	"github.com/restbase/restbase/codec"
)

// ErrorCode classifies REST client errors.
type ErrorCode int

const (
	// ErrCodeConfig indicates invalid client configuration or per-call options.
	ErrCodeConfig ErrorCode = iota
	// ErrCodeInvalidPath indicates a missing request path.
	ErrCodeInvalidPath
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout
	// ErrCodeConnection indicates a connection failure (refused, DNS, etc).
	ErrCodeConnection
	// ErrCodeRemote indicates a non-2xx response from the server.
	ErrCodeRemote
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeConfig:
		return "config"
	case ErrCodeInvalidPath:
		return "invalid_path"
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Error is a structured REST client error with classification. Remote
// errors carry the full final response so callers can inspect failure
// detail.
type Error struct {
	// StatusCode is the HTTP status code (0 for pre-network errors).
	StatusCode int
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Headers are the response headers (remote errors only).
	Headers map[string]string
	// Body is the raw response body (remote errors only).
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("restclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("restclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigError creates a configuration error.
func NewConfigError(msg string) *Error {
	return &Error{Code: ErrCodeConfig, Message: msg}
}

// NewInvalidPathError creates an invalid-path error.
func NewInvalidPathError(msg string) *Error {
	return &Error{Code: ErrCodeInvalidPath, Message: msg}
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{Code: ErrCodeTimeout, Message: err.Error(), Err: err}
}

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error {
	return &Error{Code: ErrCodeConnection, Message: err.Error(), Err: err}
}

// NewRemoteError creates a remote error carrying the full response.
func NewRemoteError(resp *Response) *Error {
	return &Error{
		StatusCode: resp.StatusCode,
		Code:       ErrCodeRemote,
		Message:    fmt.Sprintf("HTTP %d", resp.StatusCode),
		Headers:    resp.Headers,
		Body:       resp.Body,
	}
}

// IsConfig checks if an error is a configuration error.
func IsConfig(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConfig
}

// IsInvalidPath checks if an error is an invalid-path error.
func IsInvalidPath(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeInvalidPath
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConnection
}

// IsTransport checks if an error is a transport-level failure
// (timeout or connection).
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && (e.Code == ErrCodeTimeout || e.Code == ErrCodeConnection)
}

// IsRemote checks if an error is a non-2xx remote error.
func IsRemote(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeRemote
}

// IsSerialization checks if an error came from the request body serializer.
func IsSerialization(err error) bool {
	var e *codec.SerializationError
	return errors.As(err, &e)
}

// IsDeserialization checks if an error came from the response deserializer.
func IsDeserialization(err error) bool {
	var e *codec.DeserializationError
	return errors.As(err, &e)
}
