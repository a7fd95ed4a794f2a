package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetlink/connectedcar/internal/gateway"
	"github.com/fleetlink/connectedcar/internal/server"
)

// VehiclePrincipalKey is the Echo context key holding the VIN the
// authorizer granted for this request.
const VehiclePrincipalKey = "vehicle_principal"

// VehicleAuthorizer evaluates the vehicle channel credentials carried
// on a request envelope. A nil decision means the credentials could not
// be evaluated at all.
type VehicleAuthorizer interface {
	Authorize(c echo.Context, req *gateway.Request) *gateway.Decision
}

// VehicleAuthMiddleware guards the vehicle channel. Every request runs
// through the authorizer; nothing downstream sees a request the
// authorizer did not explicitly allow.
type VehicleAuthMiddleware struct {
	server     *server.Server
	authorizer VehicleAuthorizer
}

func NewVehicleAuthMiddleware(s *server.Server, authorizer VehicleAuthorizer) *VehicleAuthMiddleware {
	return &VehicleAuthMiddleware{server: s, authorizer: authorizer}
}

// Authorize returns the Echo middleware enforcing the access decision:
//
//   - no decision (nil)  -> 401, the credentials never got evaluated
//   - explicit deny      -> 403
//   - allow              -> principal VIN stored for the handlers
//
// Responses carry no body either way.
func (vm *VehicleAuthMiddleware) Authorize() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			headers := map[string]string{}
			for name := range c.Request().Header {
				headers[name] = c.Request().Header.Get(name)
			}

			decision := vm.authorizer.Authorize(c, &gateway.Request{Headers: headers})
			if decision == nil {
				return c.NoContent(http.StatusUnauthorized)
			}
			if !decision.Allows(headers[gateway.HeaderXVin]) {
				GetLogger(c).Warn().
					Str("principal", decision.Principal).
					Str("effect", decision.Effect.String()).
					Msg("vehicle channel access denied")
				return c.NoContent(http.StatusForbidden)
			}

			c.Set(VehiclePrincipalKey, decision.Principal)
			return next(c)
		}
	}
}

// GetVehiclePrincipal returns the VIN granted by the authorizer, or ""
// outside the vehicle channel.
func GetVehiclePrincipal(c echo.Context) string {
	if vin, ok := c.Get(VehiclePrincipalKey).(string); ok {
		return vin
	}
	return ""
}
