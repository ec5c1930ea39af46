package api

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport indicates a network failure or a non-success HTTP status
	ErrTransport = errors.New("transport error")

	// ErrDecode indicates that a response body could not be decoded
	ErrDecode = errors.New("decode error")
)

// StatusError описывает ответ сервера с кодом вне диапазона 2xx
type StatusError struct {
	Method     string
	URL        string
	Message    string
	StatusCode int
}

// Error implements error
func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: server error (%d): %s", e.Method, e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: request failed with status %d", e.Method, e.URL, e.StatusCode)
}

// Unwrap позволяет errors.Is(err, ErrTransport)
func (e *StatusError) Unwrap() error {
	return ErrTransport
}
