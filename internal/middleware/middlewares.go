package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/fleetlink/connectedcar/internal/server"
)

// Middlewares is a lightweight container that groups all middleware
// components used by the HTTP server: build once during startup, reuse
// everywhere during router setup.
type Middlewares struct {
	// Global holds common middleware used across the whole API:
	// CORS, request logging, recovery, secure headers, and the global
	// error handler.
	Global *GlobalMiddlewares

	// Identity decodes forwarded identity claims into the request
	// scope for the customer channel.
	Identity *IdentityMiddleware

	// VehicleAuth runs the pin-based vehicle authorizer on the vehicle
	// channel and enforces its decision.
	VehicleAuth *VehicleAuthMiddleware

	// ContextEnhancer enriches each request with a request-scoped
	// logger (request_id, method, path, ip, optional identity & trace
	// metadata).
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic middleware and helpers to attach
	// custom attributes and notice errors on transactions.
	Tracing *TracingMiddleware
}

// NewMiddlewares constructs all middleware components using the
// application container. The vehicle authorizer is passed in by the
// caller because it lives with the handlers, not here.
//
// When New Relic is not configured, nrApp is nil and the tracing
// middleware degrades into a no-op.
func NewMiddlewares(s *server.Server, authorizer VehicleAuthorizer) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Identity:        NewIdentityMiddleware(s),
		VehicleAuth:     NewVehicleAuthMiddleware(s, authorizer),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
	}
}
