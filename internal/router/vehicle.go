package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetlink/connectedcar/internal/handler"
	"github.com/fleetlink/connectedcar/internal/middleware"
)

// registerVehicleRoutes wires the vehicle channel behind the pin
// authorizer. No route in this group runs without an Allow decision.
func registerVehicleRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	vehicle := r.Group("/vehicle", m.VehicleAuth.Authorize())

	vehicle.POST("/events", handler.Envelope(h.Vehicle.CreateEvent))
	vehicle.GET("/events", handler.Envelope(h.Vehicle.GetEvents))
	vehicle.GET("/events/:timestamp", handler.Envelope(h.Vehicle.GetEvent))
}
