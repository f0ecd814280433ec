package davinci

import (
	"errors"

	"github.com/ncecere/davinci-go/provider"
)

// Package-level error values and types returned by the davinci package.
var (
	// ErrMissingModel is returned when a GenerateCompletion request
	// does not specify a CompletionModel.
	ErrMissingModel = errors.New("davinci: missing CompletionModel in request")

	// ErrNoCompletion is returned when a response parses successfully
	// but contains zero choices. It is re-exported from the provider
	// package so callers can use errors.Is against either name.
	ErrNoCompletion = provider.ErrNoCompletion
)

// Aliases to the provider-level error taxonomy. Callers distinguish
// the failure kinds with errors.As/errors.Is; converting an error to
// its display text is a caller-side convenience, not part of the
// contract.
type (
	// TransportError indicates the request could not be completed.
	TransportError = provider.TransportError
	// DecodeError indicates the response body was not decodable.
	DecodeError = provider.DecodeError
	// APIError indicates a non-2xx response from the remote service.
	APIError = provider.APIError
)

// InvalidArgumentError indicates that a function argument is invalid.
// It is intended for validation of davinci package helper arguments,
// such as call settings.
type InvalidArgumentError struct {
	// Parameter is the name of the invalid parameter.
	Parameter string
	// Value is the offending value.
	Value any
	// Message describes why the value is considered invalid.
	Message string
}

func (e *InvalidArgumentError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "davinci: invalid argument for parameter " + e.Parameter + ": " + e.Message
}
