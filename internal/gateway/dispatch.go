package gateway

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Process is the uniform execution envelope for response-returning
// handler bodies. It invokes body and returns its result unchanged on
// success. On any failure, including a panic inside the body, it
// records the failure with full detail and returns a bare 400 with no
// body, leaking nothing about the cause.
//
// This is the single failure translation point: no other component
// catches or reinterprets errors on the way up.
func Process(logger *zerolog.Logger, body func() (Response, error)) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			logFailure(logger, errors.Errorf("handler panic: %v", r))
			resp = StatusResponse(http.StatusBadRequest)
		}
	}()

	resp, err := body()
	if err != nil {
		logFailure(logger, err)
		return StatusResponse(http.StatusBadRequest)
	}
	return resp
}

// ProcessDecision is the twin envelope for authorization bodies. On
// failure it returns nil, the explicit "no decision" result, and never
// lets the failure escape or default to allow.
func ProcessDecision(logger *zerolog.Logger, body func() (*Decision, error)) (decision *Decision) {
	defer func() {
		if r := recover(); r != nil {
			logFailure(logger, errors.Errorf("authorizer panic: %v", r))
			decision = nil
		}
	}()

	decision, err := body()
	if err != nil {
		logFailure(logger, err)
		return nil
	}
	return decision
}

// logFailure records the failure message with a stack, and the wrapped
// cause separately when one exists, mirroring how the platform logs
// inner exceptions.
func logFailure(logger *zerolog.Logger, err error) {
	logger.Error().
		Stack().
		Err(errors.WithStack(err)).
		Str("error_type", fmt.Sprintf("%T", err)).
		Msg("request processing failed")

	if cause := stderrors.Unwrap(err); cause != nil {
		logger.Error().
			Err(cause).
			Msg("caused by")
	}
}
