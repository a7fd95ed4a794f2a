package middleware

import (
	"encoding/base64"
	"encoding/json"

	"github.com/labstack/echo/v4"

	"github.com/fleetlink/connectedcar/internal/gateway"
	"github.com/fleetlink/connectedcar/internal/server"
)

const (
	// ClaimsHeader carries identity claims verified by the upstream
	// authentication layer, as base64-encoded JSON. The facade trusts
	// the header as-is: token validation happened before the request
	// got here.
	ClaimsHeader = "X-Identity-Claims"

	// ClaimsKey is the Echo context key for the decoded claim set.
	ClaimsKey = "identity_claims"
)

// IdentityMiddleware decodes forwarded identity claims into the request
// scope. Requests without the header, or with a header that does not
// decode, proceed anonymously; endpoints that need an identity reject
// them individually.
type IdentityMiddleware struct {
	server *server.Server
}

func NewIdentityMiddleware(s *server.Server) *IdentityMiddleware {
	return &IdentityMiddleware{server: s}
}

// DecodeClaims returns an Echo middleware that parses the claims
// header and stores a *gateway.Claims under ClaimsKey. Absent or
// malformed claims leave the key unset.
func (im *IdentityMiddleware) DecodeClaims() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(ClaimsHeader)
			if raw == "" {
				return next(c)
			}

			decoded, err := base64.StdEncoding.DecodeString(raw)
			if err != nil {
				GetLogger(c).Warn().Err(err).Msg("discarding undecodable claims header")
				return next(c)
			}

			var values map[string]string
			if err := json.Unmarshal(decoded, &values); err != nil {
				GetLogger(c).Warn().Err(err).Msg("discarding unparsable claims header")
				return next(c)
			}

			c.Set(ClaimsKey, &gateway.Claims{Values: values})
			return next(c)
		}
	}
}

// GetClaims retrieves the decoded claim set from Echo context. A nil
// return means the request is anonymous.
func GetClaims(c echo.Context) *gateway.Claims {
	if claims, ok := c.Get(ClaimsKey).(*gateway.Claims); ok {
		return claims
	}
	return nil
}

// GetUsername returns the caller's username claim, or "" when the
// request is anonymous.
func GetUsername(c echo.Context) string {
	username, _ := GetClaims(c).Get(gateway.UsernameClaim)
	return username
}
