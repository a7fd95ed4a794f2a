package gateway

import (
	"github.com/fleetlink/connectedcar/internal/domain"
	"github.com/fleetlink/connectedcar/internal/errs"
)

// Header, path and query parameter names recognized across the API.
// Handlers never use string literals for these.
const (
	HeaderXVin = "X-Vin"
	HeaderXPin = "X-Pin"

	PathDealerID        = "dealerId"
	PathUsername        = "username"
	PathServiceDateHour = "serviceDateHour"
	PathAppointmentID   = "appointmentId"
	PathVin             = "vin"
	PathTimestamp       = "timestamp"

	QueryStateCode  = "stateCode"
	QueryStartDate  = "startDate"
	QueryEndDate    = "endDate"
	QueryLastname   = "lastname"
	QueryPartialVin = "partialVin"
)

// UsernameClaim is the identity claim consulted for the caller's
// username.
const UsernameClaim = "username"

// HeaderValue returns a required header from the envelope. Lookup is
// case-sensitive on the key exactly as the transport provided it.
func HeaderValue(req *Request, name string) (string, error) {
	if req.Headers == nil {
		return "", errs.NewMissingParameter(name, errs.SourceHeader)
	}
	v, ok := req.Headers[name]
	if !ok {
		return "", errs.NewMissingParameter(name, errs.SourceHeader)
	}
	return v, nil
}

// QueryParam returns a required query parameter from the envelope.
func QueryParam(req *Request, name string) (string, error) {
	if req.QueryParams == nil {
		return "", errs.NewMissingParameter(name, errs.SourceQuery)
	}
	v, ok := req.QueryParams[name]
	if !ok {
		return "", errs.NewMissingParameter(name, errs.SourceQuery)
	}
	return v, nil
}

// PathParam returns a required path parameter from the envelope.
func PathParam(req *Request, name string) (string, error) {
	if req.PathParams == nil {
		return "", errs.NewMissingParameter(name, errs.SourcePath)
	}
	v, ok := req.PathParams[name]
	if !ok {
		return "", errs.NewMissingParameter(name, errs.SourcePath)
	}
	return v, nil
}

// StateCode reads the required stateCode query parameter and resolves
// it against the closed jurisdiction set. A missing parameter and an
// unresolvable value are distinct failures; neither ever degrades to
// the Unknown sentinel.
func StateCode(req *Request) (domain.StateCode, error) {
	raw, err := QueryParam(req, QueryStateCode)
	if err != nil {
		return domain.StateCodeUnknown, err
	}
	code, ok := domain.ParseStateCode(raw)
	if !ok || code == domain.StateCodeUnknown {
		return domain.StateCodeUnknown, errs.NewInvalidParameter(QueryStateCode, errs.SourceQuery, raw)
	}
	return code, nil
}

// Username returns the caller's username claim. The second return value
// is false when no claims were asserted or the claim is absent. That is
// an explicit "no identity" result, not an error; callers decide whether
// anonymous access is acceptable.
func Username(req *Request) (string, bool) {
	return req.Claims.Get(UsernameClaim)
}

// RequireUsername returns the caller's username claim, failing when the
// request is anonymous. Used by every customer channel operation, which
// cannot proceed without an identity.
func RequireUsername(req *Request) (string, error) {
	username, ok := Username(req)
	if !ok {
		return "", errs.NewMissingParameter(UsernameClaim, errs.SourceClaim)
	}
	return username, nil
}
