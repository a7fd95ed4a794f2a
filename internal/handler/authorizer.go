package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetlink/connectedcar/internal/gateway"
	"github.com/fleetlink/connectedcar/internal/middleware"
	"github.com/fleetlink/connectedcar/internal/server"
	"github.com/fleetlink/connectedcar/internal/service"
)

// AuthorizerHandler evaluates vehicle channel credentials. It is not a
// routed endpoint: the vehicle auth middleware calls it once per
// request before anything else on that channel runs.
type AuthorizerHandler struct {
	Handler
	vehicles service.VehicleService
}

func NewAuthorizerHandler(s *server.Server, vehicles service.VehicleService) *AuthorizerHandler {
	return &AuthorizerHandler{
		Handler:  NewHandler(s),
		vehicles: vehicles,
	}
}

// Authorize checks the presented X-Vin/X-Pin pair against the vehicle
// service and produces a decision scoped to exactly that VIN.
//
// The three outcomes are deliberately distinct:
//
//   - missing headers or a pin-check failure -> nil, no decision
//   - pin rejected                           -> explicit Deny
//   - pin accepted                           -> Allow for this VIN only
func (h *AuthorizerHandler) Authorize(c echo.Context, req *gateway.Request) *gateway.Decision {
	logger := middleware.GetLogger(c)
	ctx := c.Request().Context()

	return gateway.ProcessDecision(logger, func() (*gateway.Decision, error) {
		vin, err := gateway.HeaderValue(req, gateway.HeaderXVin)
		if err != nil {
			return nil, err
		}
		pin, err := gateway.HeaderValue(req, gateway.HeaderXPin)
		if err != nil {
			return nil, err
		}

		valid, err := h.vehicles.ValidatePin(ctx, vin, pin)
		if err != nil {
			return nil, err
		}
		if !valid {
			return gateway.DenyVehicle(vin), nil
		}
		return gateway.AllowVehicle(vin), nil
	})
}
