// Package errs defines the typed failure values raised while a request
// is being processed.
//
// The taxonomy is deliberately small: a required parameter was absent
// (MissingParameter), a parameter was present but unparsable
// (InvalidParameter), or a request body could not be decoded into its
// target shape (Deserialization). Everything else that goes wrong in a
// handler body is an infrastructure failure from a collaborator call
// and carries no special type.
//
// None of these values ever reach a client. They propagate unmodified
// up to the dispatch wrapper, which logs them and collapses them into a
// bare status code.
package errs

import (
	"errors"
	"fmt"
)

// ParameterSource names where a request parameter was expected to be
// found. It is recorded on MissingParameter so logs can distinguish a
// missing header from a missing query or path parameter.
type ParameterSource string

const (
	SourcePath   ParameterSource = "path"
	SourceQuery  ParameterSource = "query"
	SourceHeader ParameterSource = "header"
	SourceClaim  ParameterSource = "claim"
)

// MissingParameter reports that a required path/query/header value was
// absent from the request envelope. An absent parameter map and an
// absent key inside a present map produce the identical failure.
type MissingParameter struct {
	Name   string
	Source ParameterSource
}

func (e *MissingParameter) Error() string {
	return fmt.Sprintf("missing %s parameter: %s", e.Source, e.Name)
}

// NewMissingParameter creates a MissingParameter failure for the given
// parameter name and source.
func NewMissingParameter(name string, source ParameterSource) *MissingParameter {
	return &MissingParameter{Name: name, Source: source}
}

// InvalidParameter reports that a parameter was present but its value
// did not parse against the expected closed form (e.g. an unknown state
// code, a non-numeric timestamp).
type InvalidParameter struct {
	Name   string
	Source ParameterSource
	Value  string
}

func (e *InvalidParameter) Error() string {
	return fmt.Sprintf("invalid %s parameter value: %s", e.Source, e.Name)
}

// NewInvalidParameter creates an InvalidParameter failure. The rejected
// value is kept for diagnostics only; it is never echoed to a client.
func NewInvalidParameter(name string, source ParameterSource, value string) *InvalidParameter {
	return &InvalidParameter{Name: name, Source: source, Value: value}
}

// Deserialization reports that a request body was absent, malformed, or
// structurally incompatible with the target payload type. Cause holds
// the underlying decode or validation error for logging.
type Deserialization struct {
	Cause error
}

func (e *Deserialization) Error() string {
	if e.Cause != nil {
		return "request body deserialization failed: " + e.Cause.Error()
	}
	return "request body deserialization failed"
}

// Unwrap exposes the underlying decode error to errors.Is/As chains.
func (e *Deserialization) Unwrap() error {
	return e.Cause
}

// NewDeserialization wraps a decode or validation failure.
func NewDeserialization(cause error) *Deserialization {
	return &Deserialization{Cause: cause}
}

// IsRequestError reports whether err belongs to the request-failure
// taxonomy, as opposed to an infrastructure failure from a collaborator.
func IsRequestError(err error) bool {
	var missing *MissingParameter
	var invalid *InvalidParameter
	var deser *Deserialization
	return errors.As(err, &missing) || errors.As(err, &invalid) || errors.As(err, &deser)
}
