package provider

import (
	"errors"
	"fmt"
)

// ErrNoCompletion is returned when a completion response parses
// successfully but contains zero choices. It is a distinct condition
// rather than an empty success string, since an empty string would be
// indistinguishable from "no content generated".
var ErrNoCompletion = errors.New("provider: response contained no choices")

// TransportError indicates that the outbound request could not be
// completed at all: DNS failure, connection refused, timeout, or a TLS
// handshake failure. The wrapped error comes from the underlying HTTP
// client.
type TransportError struct {
	// URL is the endpoint the request was sent to.
	URL string
	// Err is the underlying transport failure.
	Err error
}

func (e *TransportError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("provider: request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError indicates that a response body could not be decoded into
// the expected shape (malformed JSON or a non-object payload).
type DecodeError struct {
	// Err is the underlying decoding failure.
	Err error
}

func (e *DecodeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("provider: decoding response body: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// APIError indicates that the remote service answered with a non-2xx
// status. Body holds a truncated copy of the response body for
// diagnostics.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("provider: http status %d: %s", e.StatusCode, e.Body)
}
