// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// identity claim propagation, vehicle channel authorization,
// request logging, CORS, and panic recovery
package middleware
