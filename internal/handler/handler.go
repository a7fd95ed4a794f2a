// Package handler is the first layer. The first entry point for
// business logic after the router.
//
// Every endpoint is an envelope operation: it receives the transport
// request reduced to a gateway.Request, and produces a gateway.Response
// through the single dispatch wrapper that turns any failure into a
// bare 400. Handlers call the platform service ports and orchestrators;
// they never talk to the transport directly.
package handler

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/fleetlink/connectedcar/internal/gateway"
	"github.com/fleetlink/connectedcar/internal/middleware"
	"github.com/fleetlink/connectedcar/internal/server"
)

// Handler is the base handler type that holds shared application
// dependencies. It is embedded by concrete handlers so they can access
// shared resources via *server.Server (config, logger, etc.).
type Handler struct {
	server *server.Server
	codec  *gateway.Codec
}

// NewHandler constructs a base Handler. Returned by value: the struct
// only contains pointers, so copies share the same dependencies.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s, codec: gateway.NewCodec()}
}

// jsonOK serializes a result through the shared codec into the
// standard 200 response.
func (h Handler) jsonOK(v any) (gateway.Response, error) {
	body, err := h.codec.Encode(v)
	if err != nil {
		return gateway.Response{}, err
	}
	return gateway.JSONResponse(http.StatusOK, body), nil
}

// listOK serializes a collection into the standard 200 response. A nil
// slice renders as the empty array: a listing with no matches is still
// an array body.
func listOK[T any](h Handler, items []T) (gateway.Response, error) {
	if items == nil {
		items = []T{}
	}
	return h.jsonOK(items)
}

// EnvelopeFunc is a typed endpoint operation: it receives the request
// envelope and returns a response envelope or an error. Errors never
// reach the transport; the dispatch wrapper translates them.
type EnvelopeFunc func(ctx context.Context, req *gateway.Request) (gateway.Response, error)

// Envelope is the shared execution pipeline for all endpoints. It
// eliminates endpoint boilerplate by centralizing:
//
//   - envelope construction from the Echo request
//   - dispatch wrapping (failure -> bare 400)
//   - timing + New Relic handler attributes
//   - response writing
func Envelope(fn EnvelopeFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
			txn.AddAttribute("handler.name", c.Path())
		}

		req := BindRequest(c)
		logger := middleware.GetLogger(c)

		resp := gateway.Process(logger, func() (gateway.Response, error) {
			return fn(c.Request().Context(), req)
		})

		logger.Debug().
			Int("status", resp.StatusCode).
			Dur("duration", time.Since(start)).
			Msg("request handled")

		return WriteResponse(c, resp)
	}
}

// BindRequest reduces the Echo request to the transport-agnostic
// envelope. Multi-valued query params and headers collapse to their
// first value; an empty body becomes nil rather than an empty string.
func BindRequest(c echo.Context) *gateway.Request {
	req := &gateway.Request{
		Claims: middleware.GetClaims(c),
	}

	names := c.ParamNames()
	if len(names) > 0 {
		req.PathParams = make(map[string]string, len(names))
		for i, name := range names {
			req.PathParams[name] = c.ParamValues()[i]
		}
	}

	if query := c.QueryParams(); len(query) > 0 {
		req.QueryParams = make(map[string]string, len(query))
		for name := range query {
			req.QueryParams[name] = query.Get(name)
		}
	}

	if headers := c.Request().Header; len(headers) > 0 {
		req.Headers = make(map[string]string, len(headers))
		for name := range headers {
			req.Headers[name] = headers.Get(name)
		}
	}

	if c.Request().Body != nil {
		if raw, err := io.ReadAll(c.Request().Body); err == nil && len(raw) > 0 {
			body := string(raw)
			req.Body = &body
		}
	}

	return req
}

// WriteResponse writes a response envelope back through Echo.
func WriteResponse(c echo.Context, resp gateway.Response) error {
	for name, value := range resp.Headers {
		c.Response().Header().Set(name, value)
	}
	if resp.Body == "" {
		return c.NoContent(resp.StatusCode)
	}
	// Content-Type was set from the envelope headers above.
	c.Response().WriteHeader(resp.StatusCode)
	_, err := c.Response().Write([]byte(resp.Body))
	return err
}
