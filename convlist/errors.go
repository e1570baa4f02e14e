package convlist

import (
	"errors"
	"fmt"
)

// ErrRepeatedCursor is reported when conversations.list hands back a cursor
// it has already returned during the same listing.
var ErrRepeatedCursor = errors.New("server returned a cursor twice")

// TransportError is a failure to get a usable response at all: connection,
// timeout, non-JSON body or an HTTP error status without an API error body.
type TransportError struct {
	Method string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: transport error (status %d): %v", e.Method, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: transport error: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is an `ok: false` response. Code is the platform's error string,
// e.g. "invalid_auth" or "user_not_found".
type APIError struct {
	Method string
	Code   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Method, e.Code)
}

// DecodeError means the body was JSON but matched neither the success shape
// nor the error shape of the method.
type DecodeError struct {
	Method string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: unexpected response: %v", e.Method, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ConfigError is a missing or unusable credential file.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsTransportError checks if the error is a transport error.
func IsTransportError(err error) bool {
	var e *TransportError
	return errors.As(err, &e)
}

// IsAPIError checks if the error is an API-reported error.
func IsAPIError(err error) bool {
	var e *APIError
	return errors.As(err, &e)
}

// IsDecodeError checks if the error is a decode error.
func IsDecodeError(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}

// IsConfigError checks if the error is a configuration error.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}
