// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetlink/connectedcar/internal/handler"
	"github.com/fleetlink/connectedcar/internal/middleware"
)

// New builds the Echo instance with the full middleware chain and all
// route groups registered.
//
// Middleware order matters: recovery and headers first, then request
// id, then the New Relic transaction (so everything after it can see
// the transaction in context), then identity decoding, then the
// context enhancer (so the request logger carries identity and trace
// fields), then tracing attributes and the request log line.
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(
		m.Global.Recover(),
		m.Global.Secure(),
		m.Global.CORS(),
		middleware.RequestID(),
		m.Tracing.NewRelicMiddleware(),
		m.Identity.DecodeClaims(),
		m.ContextEnhancer.EnhanceContext(),
		m.Tracing.EnhanceTracing(),
		m.Global.RequestLogger(),
	)

	registerSystemRoutes(e, h)
	registerAdminRoutes(e, h)
	registerCustomerRoutes(e, h)
	registerVehicleRoutes(e, h, m)

	return e
}
