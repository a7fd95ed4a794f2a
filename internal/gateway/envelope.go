// Package gateway contains the request-processing core shared by every
// handler: the request/response envelopes exchanged with the transport,
// the parameter extractor, the JSON codec, the dispatch wrapper that
// normalizes failures, and the access decision produced by the vehicle
// authorizer.
//
// The envelope deliberately mirrors what an API-gateway transport
// delivers (parameter maps, raw body, pre-verified identity claims)
// rather than the transport's own request type, so the whole core is
// testable without an HTTP server and indifferent to the router in
// front of it.
package gateway

import "net/http"

// ContentTypeJSON is the only content type the facade produces.
const ContentTypeJSON = "application/json"

// Claims holds identity attributes asserted and verified by the
// upstream authentication step. The facade trusts them as-is. A nil
// *Claims on the Request means no identity was asserted at all, which
// is distinct from an empty claim set.
type Claims struct {
	Values map[string]string
}

// Get returns a claim value and whether the claim is present. A nil
// receiver behaves like an empty claim set.
func (c *Claims) Get(key string) (string, bool) {
	if c == nil || c.Values == nil {
		return "", false
	}
	v, ok := c.Values[key]
	return v, ok
}

// Request is the inbound envelope, constructed once per call by the
// transport adapter and read-only to the core. Any of the maps may be
// nil; the extractor treats a nil map and a missing key identically.
type Request struct {
	PathParams  map[string]string
	QueryParams map[string]string
	Headers     map[string]string
	Body        *string
	Claims      *Claims
}

// Response is the outbound envelope. Headers is nil unless there is a
// body (which requires a Content-Type) or a Location to report.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

// StatusResponse builds a response with a status code and nothing else.
func StatusResponse(code int) Response {
	return Response{StatusCode: code}
}

// JSONResponse builds a 200-style response carrying a JSON body with
// its mandatory Content-Type header.
func JSONResponse(code int, body string) Response {
	return Response{
		StatusCode: code,
		Headers:    map[string]string{"Content-Type": ContentTypeJSON},
		Body:       body,
	}
}

// CreatedResponse builds the uniform creation response: 201 with a
// Location header pointing at the canonical path of the new resource
// and no body.
func CreatedResponse(location string) Response {
	return Response{
		StatusCode: http.StatusCreated,
		Headers:    map[string]string{"Location": location},
	}
}
