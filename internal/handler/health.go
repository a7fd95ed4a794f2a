package handler

// HealthHandler exposes a "system" endpoint that external systems can
// use to verify the service is alive and its platform dependencies are
// reachable. The facade owns no storage, so its dependencies are the
// platform services it fronts.

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fleetlink/connectedcar/internal/middleware"
	"github.com/fleetlink/connectedcar/internal/server"
)

// HealthHandler embeds the base Handler to reuse shared server
// dependencies.
type HealthHandler struct {
	Handler
	probe *http.Client
}

// NewHealthHandler constructs a HealthHandler with access to shared app
// dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		probe:   &http.Client{Timeout: s.Config.Observability.HealthChecks.Timeout},
	}
}

// serviceURLs maps the configured check names onto platform service
// base URLs.
func (h *HealthHandler) serviceURLs() map[string]string {
	services := h.server.Config.Services
	return map[string]string{
		"dealer":      services.DealerURL,
		"customer":    services.CustomerURL,
		"vehicle":     services.VehicleURL,
		"appointment": services.AppointmentURL,
	}
}

// CheckHealth returns system health status and per-dependency checks.
// 200 when every configured platform service answers, 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      make(map[string]interface{}),
	}

	checks := response["checks"].(map[string]interface{})
	isHealthy := true

	urls := h.serviceURLs()
	for _, name := range h.server.Config.Observability.HealthChecks.Checks {
		baseURL, known := urls[name]
		if !known {
			continue
		}

		checkStart := time.Now()
		err := h.ping(c.Request().Context(), baseURL)
		if err != nil {
			checks[name] = map[string]interface{}{
				"status":        "unhealthy",
				"response_time": time.Since(checkStart).String(),
				"error":         err.Error(),
			}
			isHealthy = false

			logger.Error().
				Err(err).
				Str("check", name).
				Dur("response_time", time.Since(checkStart)).
				Msg("platform service health check failed")

			if h.server.LoggerService != nil && h.server.LoggerService.GetApplication() != nil {
				h.server.LoggerService.GetApplication().RecordCustomEvent(
					"HealthCheckError",
					map[string]interface{}{
						"check_type":       name,
						"operation":        "health_check",
						"response_time_ms": time.Since(checkStart).Milliseconds(),
						"error_message":    err.Error(),
					},
				)
			}
		} else {
			checks[name] = map[string]interface{}{
				"status":        "healthy",
				"response_time": time.Since(checkStart).String(),
			}
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}

// ping issues a lightweight GET against the service root. Any HTTP
// answer counts as reachable; only transport failures are unhealthy.
func (h *HealthHandler) ping(ctx context.Context, baseURL string) error {
	ctx, cancel := context.WithTimeout(ctx, h.server.Config.Observability.HealthChecks.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := h.probe.Do(req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}
